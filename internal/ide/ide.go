// Copyright (c) 2025 Orafly Authors. All rights reserved.

package ide

import (
	"fmt"
	"strings"
)

// SelectedObject identifies one schema object picked by the user.
type SelectedObject struct {
	ObjectType  string
	ObjectOwner string
	ObjectName  string
	SubObject   string
}

func (o SelectedObject) String() string {
	return fmt.Sprintf("(object_type: %s, object_owner: %s, object_name: %s, sub_object: %s)",
		o.ObjectType, o.ObjectOwner, o.ObjectName, o.SubObject)
}

// Severity classifies a notification shown to the user.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityError
)

// Callbacks is the capability table a host environment provides. Every
// field is required; New rejects a table with missing entries so a partial
// host fails at startup instead of panicking mid-export.
type Callbacks struct {
	// GetSelectedText returns the text the user currently has selected.
	GetSelectedText func() string

	// GetObjectSource returns the stored source of a schema object, or a
	// "source not available" placeholder when the object has none.
	GetObjectSource func(objectType, owner, name string) string

	// FirstSelectedObject and NextSelectedObject iterate the user's object
	// selection. NextSelectedObject keeps reporting false once exhausted.
	FirstSelectedObject func() (SelectedObject, bool)
	NextSelectedObject  func() (SelectedObject, bool)

	// SaveFileDialog asks the user for an output base name.
	SaveFileDialog func() (string, error)

	// SaveFolderDialog asks the user for an output folder.
	SaveFolderDialog func() string

	// Notify surfaces a message to the user.
	Notify func(message, caption string, severity Severity)
}

// Host wraps a complete capability table.
type Host struct {
	cb Callbacks
}

// New validates the capability table and returns a Host. The error lists
// every missing capability by name.
func New(cb Callbacks) (*Host, error) {
	var missing []string
	if cb.GetSelectedText == nil {
		missing = append(missing, "GetSelectedText")
	}
	if cb.GetObjectSource == nil {
		missing = append(missing, "GetObjectSource")
	}
	if cb.FirstSelectedObject == nil {
		missing = append(missing, "FirstSelectedObject")
	}
	if cb.NextSelectedObject == nil {
		missing = append(missing, "NextSelectedObject")
	}
	if cb.SaveFileDialog == nil {
		missing = append(missing, "SaveFileDialog")
	}
	if cb.SaveFolderDialog == nil {
		missing = append(missing, "SaveFolderDialog")
	}
	if cb.Notify == nil {
		missing = append(missing, "Notify")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("host callbacks missing: %s", strings.Join(missing, ", "))
	}

	return &Host{cb: cb}, nil
}

func (h *Host) GetSelectedText() string {
	return h.cb.GetSelectedText()
}

func (h *Host) GetObjectSource(objectType, owner, name string) string {
	return h.cb.GetObjectSource(objectType, owner, name)
}

func (h *Host) FirstSelectedObject() (SelectedObject, bool) {
	return h.cb.FirstSelectedObject()
}

func (h *Host) NextSelectedObject() (SelectedObject, bool) {
	return h.cb.NextSelectedObject()
}

func (h *Host) SaveFileDialog() (string, error) {
	return h.cb.SaveFileDialog()
}

func (h *Host) SaveFolderDialog() string {
	return h.cb.SaveFolderDialog()
}

func (h *Host) Notify(message, caption string, severity Severity) {
	h.cb.Notify(message, caption, severity)
}
