// Copyright (c) 2025 Orafly Authors. All rights reserved.

package selection

import (
	"fmt"
	"strings"

	"github.com/orafly/orafly/internal/ide"
)

// Parse converts command-line object specs of the form KIND:OWNER.NAME into
// selected objects. Unquoted identifiers are upper-cased the way Oracle
// folds them; double-quoted identifiers keep their case. The kind is not
// checked against the supported set here, the export loop skips and
// reports unsupported kinds itself.
func Parse(args []string) ([]ide.SelectedObject, error) {
	objects := make([]ide.SelectedObject, 0, len(args))
	for _, arg := range args {
		obj, err := parseOne(arg)
		if err != nil {
			return nil, err
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

func parseOne(spec string) (ide.SelectedObject, error) {
	kind, rest, ok := strings.Cut(spec, ":")
	if !ok {
		return ide.SelectedObject{}, fmt.Errorf("invalid object spec %q, want KIND:OWNER.NAME", spec)
	}
	owner, name, ok := strings.Cut(rest, ".")
	if !ok {
		return ide.SelectedObject{}, fmt.Errorf("invalid object spec %q, want KIND:OWNER.NAME", spec)
	}

	kind = strings.ToUpper(strings.TrimSpace(kind))
	owner = normalizeIdent(strings.TrimSpace(owner))
	name = normalizeIdent(strings.TrimSpace(name))
	if kind == "" || owner == "" || name == "" {
		return ide.SelectedObject{}, fmt.Errorf("invalid object spec %q, empty component", spec)
	}

	return ide.SelectedObject{
		ObjectType:  kind,
		ObjectOwner: owner,
		ObjectName:  name,
	}, nil
}

func normalizeIdent(ident string) string {
	if len(ident) >= 2 && strings.HasPrefix(ident, `"`) && strings.HasSuffix(ident, `"`) {
		return strings.Trim(ident, `"`)
	}
	return strings.ToUpper(ident)
}

// Cursor hands out a parsed selection one object at a time, the way an IDE
// object browser does: FirstSelectedObject rewinds, NextSelectedObject
// advances, and once exhausted Next keeps reporting false.
type Cursor struct {
	objects []ide.SelectedObject
	pos     int
}

func NewCursor(objects []ide.SelectedObject) *Cursor {
	return &Cursor{objects: objects}
}

func (c *Cursor) FirstSelectedObject() (ide.SelectedObject, bool) {
	c.pos = 0
	if len(c.objects) == 0 {
		return ide.SelectedObject{}, false
	}
	return c.objects[0], true
}

func (c *Cursor) NextSelectedObject() (ide.SelectedObject, bool) {
	if c.pos+1 < len(c.objects) {
		c.pos++
		return c.objects[c.pos], true
	}
	c.pos = len(c.objects)
	return ide.SelectedObject{}, false
}
