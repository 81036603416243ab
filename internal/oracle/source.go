// Copyright (c) 2025 Orafly Authors. All rights reserved.

package oracle

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/orafly/orafly/internal/ddl"
)

const (
	storedSourceQuery = `SELECT text FROM all_source WHERE owner = :1 AND name = :2 AND type = :3 ORDER BY line`
	viewSourceQuery   = `SELECT text FROM all_views WHERE owner = :1 AND view_name = :2`
)

// Source reads schema object source out of the Oracle data dictionary.
// Owner and object names are matched verbatim against the dictionary, so
// callers pass them in dictionary case.
type Source struct {
	client *Client
	logger *zap.Logger
}

func NewSource(client *Client, logger *zap.Logger) *Source {
	return &Source{
		client: client,
		logger: logger,
	}
}

// Fetch returns the stored source of one schema object, prefixed with
// "create or replace" the way an IDE source view shows it. A missing
// package or type body yields the placeholder comment the assembler
// detects instead of an error.
func (s *Source) Fetch(ctx context.Context, objectType, owner, name string) (string, error) {
	switch objectType {
	case ddl.KindView:
		return s.fetchView(ctx, owner, name)
	case ddl.KindFunction, ddl.KindProcedure, ddl.KindPackage, ddl.KindPackageBody,
		ddl.KindType, ddl.KindTypeBody, ddl.KindTrigger:
		return s.fetchStored(ctx, objectType, owner, name)
	}
	return "", fmt.Errorf("cannot fetch source of object type %s", objectType)
}

// ObjectSource adapts Fetch to the host callback signature, which has no
// error channel. Failures are logged and reported as empty source, which
// the export path treats as an object without usable DDL.
func (s *Source) ObjectSource(objectType, owner, name string) string {
	ctx, cancel := s.client.context()
	defer cancel()

	source, err := s.Fetch(ctx, objectType, owner, name)
	if err != nil {
		s.logger.Warn("Failed to fetch object source",
			zap.String("object_type", objectType),
			zap.String("owner", owner),
			zap.String("name", name),
			zap.Error(err))
		return ""
	}
	return source
}

// fetchStored concatenates the all_source lines of the object. The
// dictionary stores the statement without its "create or replace" header,
// so one is prepended to the first line.
func (s *Source) fetchStored(ctx context.Context, objectType, owner, name string) (string, error) {
	rows, err := s.client.db.QueryContext(ctx, storedSourceQuery, owner, name, objectType)
	if err != nil {
		return "", fmt.Errorf("querying all_source: %w", err)
	}
	defer rows.Close()

	var b strings.Builder
	lines := 0
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return "", fmt.Errorf("scanning all_source: %w", err)
		}
		b.WriteString(text)
		if !strings.HasSuffix(text, "\n") {
			b.WriteString("\n")
		}
		lines++
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("reading all_source: %w", err)
	}

	if lines == 0 {
		switch objectType {
		case ddl.KindPackageBody, ddl.KindTypeBody:
			return ddl.MissingBodyComment(objectType, name), nil
		}
		return "", fmt.Errorf("no source found for %s %s.%s", objectType, owner, name)
	}

	return "create or replace " + b.String(), nil
}

// fetchView rebuilds the full view DDL from the all_views query text, which
// the dictionary stores without header or terminator.
func (s *Source) fetchView(ctx context.Context, owner, name string) (string, error) {
	var text string
	err := s.client.db.QueryRowContext(ctx, viewSourceQuery, owner, name).Scan(&text)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("no source found for VIEW %s.%s", owner, name)
	}
	if err != nil {
		return "", fmt.Errorf("querying all_views: %w", err)
	}

	return "create or replace view " + strings.ToLower(name) + " as\n" +
		strings.TrimRight(text, " \t\n") + ";\n", nil
}
