// Copyright (c) 2025 Orafly Authors. All rights reserved.

package ddl

import (
	"strings"

	"github.com/umisama/go-regexpcache"
)

// FetchFunc returns the stored source of a schema object. Implementations
// return the sentinel comment matched by missingBodyPattern when a body
// does not exist.
type FetchFunc func(objectType, owner, name string) string

// missingBodyPattern matches the placeholder comment the source backend
// emits for a package or type whose body does not exist.
const missingBodyPattern = `/\* Source of (TYPE|PACKAGE) BODY [A-Za-z0-9$_"]+ is not available \*/`

// AssembleSource fetches and normalizes the complete source of one schema
// object. Packages and types are assembled as spec plus body, each
// terminated with a "/" execution marker line; a missing body collapses the
// result to the spec alone. All other supported kinds are fetched once and
// returned normalized.
// TODO: functions and procedures need a trailing "/" line before migration
// runners can execute their files stand-alone.
func AssembleSource(fetch FetchFunc, objectType, owner, name string) string {
	switch objectType {
	case KindPackage, KindType:
		spec := Normalize(fetch(objectType, owner, name), objectType, owner, name)

		bodyKind := BodyKind(objectType)
		body := Normalize(fetch(bodyKind, owner, name), bodyKind, owner, name)

		if regexpcache.MustCompile(missingBodyPattern).MatchString(strings.TrimSpace(body)) {
			return strings.TrimSpace(spec) + "\n/\n"
		}
		return strings.TrimSpace(spec) + "\n/\n" + strings.TrimSpace(body) + "\n/\n"
	default:
		return Normalize(fetch(objectType, owner, name), objectType, owner, name)
	}
}

// MissingBodyComment returns the placeholder emitted when the body of a
// package or type is not available, in the exact shape AssembleSource
// detects.
func MissingBodyComment(bodyKind, name string) string {
	return "/* Source of " + bodyKind + " " + name + " is not available */"
}
