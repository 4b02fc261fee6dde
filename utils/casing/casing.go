// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package casing converts identifiers and phrases between naming conventions.
//
// Word boundaries are found at spaces, underscores, hyphens, periods and
// lower to upper case transitions, so every function accepts input in any of
// the supported conventions.
package casing

import (
	"github.com/iancoleman/strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToCamel converts [s] to UpperCamelCase.
func ToCamel(s string) string {
	return strcase.ToCamel(s)
}

// ToLowerCamel converts [s] to lowerCamelCase.
func ToLowerCamel(s string) string {
	return strcase.ToLowerCamel(s)
}

// ToSnake converts [s] to snake_case.
func ToSnake(s string) string {
	return strcase.ToSnake(s)
}

// ToScreamingSnake converts [s] to SCREAMING_SNAKE_CASE.
func ToScreamingSnake(s string) string {
	return strcase.ToScreamingSnake(s)
}

// ToKebab converts [s] to kebab-case.
func ToKebab(s string) string {
	return strcase.ToKebab(s)
}

// ToTitle converts [s] to space separated Title Case.
//
// A new caser is built on every call as a cases.Caser is not safe for
// concurrent use.
func ToTitle(s string) string {
	return cases.Title(language.English).String(strcase.ToDelimited(s, ' '))
}
