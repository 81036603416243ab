// Copyright (c) 2025 Orafly Authors. All rights reserved.

package ddl

import (
	"fmt"
	"strings"

	"github.com/umisama/go-regexpcache"
)

// Schema object kinds this tool knows how to export. PACKAGE and TYPE have
// companion body kinds that are fetched separately and never selected
// directly.
const (
	KindFunction  = "FUNCTION"
	KindProcedure = "PROCEDURE"
	KindPackage   = "PACKAGE"
	KindType      = "TYPE"
	KindView      = "VIEW"
	KindTrigger   = "TRIGGER"

	KindPackageBody = "PACKAGE BODY"
	KindTypeBody    = "TYPE BODY"
)

// Supported reports whether objectType can be exported as a repeatable
// migration.
func Supported(objectType string) bool {
	switch objectType {
	case KindFunction, KindProcedure, KindPackage, KindType, KindView, KindTrigger:
		return true
	}
	return false
}

// BodyKind returns the companion body kind of objectType, or "" when the
// kind has no separate body.
func BodyKind(objectType string) string {
	switch objectType {
	case KindPackage:
		return KindPackageBody
	case KindType:
		return KindTypeBody
	}
	return ""
}

// headerPattern matches the first line of a "create or replace" DDL header.
// `.` does not cross line breaks, so only the header line is rewritten; the
// `\s*` runs may swallow a line break between header tokens, which is why
// the trigger branch below restores one.
const headerPattern = `(?i)create or replace (editionable|noneditionable)?\s*(package|type|view|trigger|function|procedure)\s*(body )?[a-z0-9_$"]+\s*(\([a-z0-9._$", ]+\))?\s*(force )?(is|as)?(.*)`

// Normalize rewrites the header of ddl into canonical
// "create or replace [editionable] <kind> OWNER.NAME ..." form. The name in
// the stored source is replaced with the owner-qualified name passed in,
// views gain "force", types gain "force" before is/as, and triggers get a
// line break where is/as would sit. Only the first header match is
// rewritten; everything before and after it passes through untouched. Input
// without a recognizable header is returned unchanged, which keeps grants,
// comments and other non-DDL selections exportable as-is.
func Normalize(ddl, objectType, owner, name string) string {
	m := regexpcache.MustCompile(headerPattern).FindStringSubmatchIndex(ddl)
	if m == nil {
		return ddl
	}

	group := func(i int) string {
		if m[2*i] < 0 {
			return ""
		}
		return ddl[m[2*i]:m[2*i+1]]
	}

	editionable := ""
	switch strings.ToLower(group(1)) {
	case "editionable":
		editionable = "editionable "
	case "noneditionable":
		editionable = "noneditionable "
	}

	forceView := ""
	if objectType == KindView {
		forceView = "force "
	}

	forceType := ""
	if objectType == KindType {
		forceType = "force "
	}

	// Triggers have no is/as keyword, so the header line break restored
	// here is the one the pattern's whitespace runs consumed.
	isOrAs := strings.ToLower(group(6))
	if objectType == KindTrigger {
		isOrAs = "\n"
	}

	header := fmt.Sprintf("create or replace %s%s%s %s%s.%s%s %s%s%s",
		editionable,
		forceView,
		strings.ToLower(group(2)),
		strings.ToLower(group(3)), // "body " keeps its own trailing space
		owner,
		name,
		group(4),
		forceType,
		isOrAs,
		group(7),
	)

	return ddl[:m[0]] + header + ddl[m[1]:]
}
