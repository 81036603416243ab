// Copyright (c) 2025 Orafly Authors. All rights reserved.

package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/orafly/orafly/internal/export"
	"github.com/orafly/orafly/internal/ide"
	"github.com/orafly/orafly/internal/selection"
)

// hostEnv adapts the terminal to the capability table an IDE provides: the
// parsed argument list stands in for the object browser selection, flags
// stand in for the save dialogs, and notifications go to the console.
type hostEnv struct {
	text     string
	source   func(objectType, owner, name string) string
	cursor   *selection.Cursor
	fileName string
	folder   string
	out      io.Writer
	errOut   io.Writer
}

// noSource is the object source of a host without a database connection.
// Versioned exports run off the selected text and never fetch source.
func noSource(objectType, owner, name string) string {
	return ""
}

func (env *hostEnv) newHost() (*ide.Host, error) {
	return ide.New(ide.Callbacks{
		GetSelectedText:     func() string { return env.text },
		GetObjectSource:     env.source,
		FirstSelectedObject: env.cursor.FirstSelectedObject,
		NextSelectedObject:  env.cursor.NextSelectedObject,
		SaveFileDialog:      env.saveFileDialog,
		SaveFolderDialog:    func() string { return env.folder },
		Notify:              env.notify,
	})
}

// saveFileDialog answers the save dialog with the name given on the command
// line. An empty name reports the same condition as a dialog confirmed with
// an empty input field.
func (env *hostEnv) saveFileDialog() (string, error) {
	if env.fileName == "" {
		return "", export.ErrEmptyName
	}
	return filepath.Join(env.folder, env.fileName), nil
}

func (env *hostEnv) notify(message, caption string, severity ide.Severity) {
	out := env.out
	if severity == ide.SeverityError {
		out = env.errOut
	}
	fmt.Fprintf(out, "%s: %s\n", caption, message)
}
