// Copyright (c) 2025 Orafly Authors. All rights reserved.

package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/orafly/orafly/internal/config"
	"github.com/orafly/orafly/internal/ddl"
	"github.com/orafly/orafly/internal/flyway"
	"github.com/orafly/orafly/internal/ide"
)

// Host is the slice of the capability table the exporter consumes.
type Host interface {
	GetObjectSource(objectType, owner, name string) string
	Notify(message, caption string, severity ide.Severity)
}

// Selection iterates the objects the user picked for export.
type Selection interface {
	FirstSelectedObject() (ide.SelectedObject, bool)
	NextSelectedObject() (ide.SelectedObject, bool)
}

// SaveNameFunc asks the user for an output base name. Implementations
// return ErrCancelled when the user backs out and ErrEmptyName when they
// confirm an empty name.
type SaveNameFunc func() (string, error)

// Exporter writes schema objects and selected text as Flyway migration
// files. All collaborators are injected; an Exporter holds no state beyond
// them and is safe for reuse across exports.
type Exporter struct {
	host   Host
	cfg    *config.Config
	logger *zap.Logger
	clock  clockwork.Clock
}

func New(host Host, cfg *config.Config, logger *zap.Logger, clock clockwork.Clock) *Exporter {
	return &Exporter{
		host:   host,
		cfg:    cfg,
		logger: logger,
		clock:  clock,
	}
}

// ExportVersioned writes selectedText verbatim to a versioned migration
// file named after the base name the saveAs collaborator supplies.
// Failures are surfaced to the user through the host notification and
// returned; a cancelled dialog is success.
func (e *Exporter) ExportVersioned(selectedText string, saveAs SaveNameFunc) error {
	if err := e.exportVersioned(selectedText, saveAs); err != nil {
		e.host.Notify(err.Error(), "Error", ide.SeverityError)
		return err
	}
	return nil
}

func (e *Exporter) exportVersioned(selectedText string, saveAs SaveNameFunc) error {
	// Bail out before the dialog if the selection is empty.
	if len(selectedText) == 0 {
		return ErrEmptySelection
	}

	basename, err := saveAs()
	switch {
	case errors.Is(err, ErrCancelled):
		return nil
	case errors.Is(err, ErrEmptyName):
		return ErrEmptyFileName
	case err != nil:
		return fmt.Errorf("I/O error: %w", err)
	}

	// A directory component in the base name selects the output folder;
	// the version prefix applies to the file part only.
	dir, base := filepath.Split(basename)
	name := flyway.VersionedFileName(e.cfg, e.clock.Now().UTC(), base)

	if err := writeMigration(filepath.Join(dir, name), selectedText); err != nil {
		return fmt.Errorf("I/O error: %w", err)
	}
	return nil
}

// ExportRepeatable exports every object in sel as a repeatable migration
// into folder. With alsoVersioned set, each object additionally gets a
// versioned copy of the same content; that combination is rejected up
// front for multi-object selections. Per-object failures are logged and
// skipped, and the returned count holds only objects whose files were all
// written.
func (e *Exporter) ExportRepeatable(sel Selection, folder string, alsoVersioned bool) int {
	first, ok := sel.FirstSelectedObject()
	if !ok {
		e.host.Notify("Please select an object in the object browser first!",
			"Nothing selected", ide.SeverityInfo)
		return 0
	}

	// Versioned companions are limited to single-object selections.
	if alsoVersioned {
		if _, more := sel.NextSelectedObject(); more {
			e.host.Notify("Exporting multiple selected objects as versioned and repeatable migrations is not supported!",
				"Information", ide.SeverityInfo)
			return 0
		}
	}

	exported := 0

	e.logger.Debug("Selected object", zap.String("object", first.String()))
	if err := e.exportOne(first, folder, alsoVersioned); err != nil {
		e.logger.Warn("Object not exported",
			zap.String("object", first.String()),
			zap.Error(err))
	} else {
		exported++
	}

	for {
		obj, ok := sel.NextSelectedObject()
		if !ok {
			break
		}
		e.logger.Debug("Selected object", zap.String("object", obj.String()))
		if err := e.exportOne(obj, folder, alsoVersioned); err != nil {
			e.logger.Warn("Object not exported",
				zap.String("object", obj.String()),
				zap.Error(err))
			continue
		}
		exported++
	}

	caption := "Repeatable migration"
	if exported > 0 {
		e.host.Notify(fmt.Sprintf("Successfully exported %d objects as repeatable migration(s).", exported),
			caption, ide.SeverityInfo)
	} else {
		e.host.Notify("No repeatable migrations were created!\nPlease make sure you have selected one or more supported\nobject types.",
			caption, ide.SeverityError)
	}

	return exported
}

// exportOne writes the migration files for a single selected object.
func (e *Exporter) exportOne(obj ide.SelectedObject, folder string, alsoVersioned bool) error {
	if !ddl.Supported(obj.ObjectType) {
		return fmt.Errorf("%s is %w", obj.ObjectType, ErrUnsupportedObjectType)
	}

	source := ddl.AssembleSource(e.host.GetObjectSource,
		obj.ObjectType, obj.ObjectOwner, obj.ObjectName)
	e.logger.Debug("Final DDL",
		zap.String("object", obj.ObjectName),
		zap.String("ddl", source))

	basename := strings.ToUpper(obj.ObjectName)

	if alsoVersioned {
		name := flyway.VersionedFileName(e.cfg, e.clock.Now().UTC(), basename)
		if err := writeMigration(filepath.Join(folder, name), source); err != nil {
			return err
		}
	}

	return writeMigration(filepath.Join(folder, flyway.RepeatableFileName(basename)), source)
}

// writeMigration writes content to path, creating or truncating the file.
func writeMigration(path, content string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create migration file: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(content); err != nil {
		return fmt.Errorf("failed to write migration file: %w", err)
	}

	return nil
}
