//go:build property
// +build property

package validation

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestNamingGrammarProperties exercises the naming grammars with generated
// inputs: everything the grammar produces must validate, and single-rule
// mutations must not.
func TestNamingGrammarProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	trainGen := gen.RegexMatch(`^[A-Z][a-zA-Z0-9]{0,7}(-[A-Z][a-zA-Z0-9]{0,7}){0,3}$`)
	snakeGen := gen.RegexMatch(`^[a-z][a-z0-9]{0,7}(_[a-z0-9]{1,8}){0,3}$`)

	properties.Property("train-case grammar is accepted", prop.ForAll(
		func(name string) bool {
			return ValidateProjectName(name) == nil
		},
		trainGen,
	))

	properties.Property("snake_case grammar is accepted", prop.ForAll(
		func(name string) bool {
			return ValidatePackageName(name) == nil
		},
		snakeGen,
	))

	properties.Property("lowercasing the first letter breaks train-case", prop.ForAll(
		func(name string) bool {
			mutated := strings.ToLower(name[:1]) + name[1:]
			return ValidateProjectName(mutated) != nil
		},
		trainGen,
	))

	properties.Property("trailing hyphen breaks train-case", prop.ForAll(
		func(name string) bool {
			return ValidateProjectName(name+"-") != nil
		},
		trainGen,
	))

	properties.Property("doubling a separator breaks train-case", prop.ForAll(
		func(name string) bool {
			if !strings.Contains(name, "-") {
				return true
			}
			mutated := strings.Replace(name, "-", "--", 1)
			return ValidateProjectName(mutated) != nil
		},
		trainGen,
	))

	properties.Property("uppercasing breaks snake_case", prop.ForAll(
		func(name string) bool {
			return ValidatePackageName(strings.ToUpper(name)) != nil
		},
		snakeGen,
	))

	properties.Property("leading underscore breaks snake_case", prop.ForAll(
		func(name string) bool {
			return ValidatePackageName("_"+name) != nil
		},
		snakeGen,
	))

	properties.Property("leading digit breaks snake_case", prop.ForAll(
		func(name string) bool {
			return ValidatePackageName("4"+name) != nil
		},
		snakeGen,
	))

	properties.TestingRun(t)
}
