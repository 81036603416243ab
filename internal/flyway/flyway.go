// Copyright (c) 2025 Orafly Authors. All rights reserved.

package flyway

import (
	"strings"
	"time"

	"github.com/orafly/orafly/internal/config"
)

// Timestamp layouts for versioned migration prefixes. The millisecond
// variant exists so two developers creating migrations within the same
// second do not collide.
const (
	versionLayout       = "2006_01_02_15_04_05"
	versionMillisLayout = "2006_01_02_15_04_05.000"
)

// VersionedFileName builds a Flyway versioned migration file name,
// V<timestamp>__<basename>.sql. Any number of trailing ".sql" suffixes is
// stripped from basename first, so re-exporting a generated file never
// yields names ending in ".sql.sql". The timestamp is formatted as given;
// callers pass UTC.
func VersionedFileName(cfg *config.Config, timestamp time.Time, basename string) string {
	layout := versionLayout
	if cfg.MillisecondPrecision {
		layout = versionMillisLayout
	}

	for strings.HasSuffix(basename, ".sql") {
		basename = strings.TrimSuffix(basename, ".sql")
	}

	return "V" + timestamp.Format(layout) + "__" + basename + ".sql"
}

// RepeatableFileName builds a Flyway repeatable migration file name,
// R__<NAME>.sql with the object name uppercased.
func RepeatableFileName(objectName string) string {
	return "R__" + strings.ToUpper(objectName) + ".sql"
}
