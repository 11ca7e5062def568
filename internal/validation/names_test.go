package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProjectName(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		suggestion  string
	}{
		// Valid Train-Case
		{name: "single word", input: "Project"},
		{name: "two words", input: "My-Project"},
		{name: "single letter words", input: "A-B-C"},
		{name: "digits inside words", input: "Data2-Science"},
		{name: "mixed case inside word", input: "SkLearn-Helpers"},

		// Violations
		{
			name:        "lowercase start",
			input:       "my-project",
			expectError: true,
			suggestion:  "My-Project",
		},
		{
			name:        "lowercase second word",
			input:       "My-project",
			expectError: true,
			suggestion:  "My-Project",
		},
		{
			name:        "empty",
			input:       "",
			expectError: true,
		},
		{
			name:        "double hyphen",
			input:       "My--Project",
			expectError: true,
			suggestion:  "My-Project",
		},
		{
			name:        "trailing hyphen",
			input:       "My-Project-",
			expectError: true,
			suggestion:  "My-Project",
		},
		{
			name:        "leading hyphen",
			input:       "-My-Project",
			expectError: true,
			suggestion:  "My-Project",
		},
		{
			name:        "contains space",
			input:       "My Project",
			expectError: true,
			suggestion:  "My-Project",
		},
		{
			name:        "underscore separator",
			input:       "My_Project",
			expectError: true,
			suggestion:  "My-Project",
		},
		{
			name:        "word starts with digit",
			input:       "2Fast-2Furious",
			expectError: true,
		},
		{
			name:        "special character",
			input:       "My-Pro$ject",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProjectName(tt.input)
			if !tt.expectError {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var nErr *NamingError
			require.ErrorAs(t, err, &nErr)
			assert.Equal(t, KindProjectName, nErr.Kind)
			assert.Equal(t, tt.input, nErr.Name)
			assert.NotEmpty(t, nErr.Reason)
			assert.Equal(t, tt.suggestion, nErr.Suggestion)
		})
	}
}

func TestValidatePackageName(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		suggestion  string
	}{
		// Valid snake_case
		{name: "single word", input: "package"},
		{name: "two words", input: "my_package"},
		{name: "single letter", input: "a"},
		{name: "digits inside", input: "pkg2"},
		{name: "digit-leading later segment", input: "my_2pkg"},

		// Violations
		{
			name:        "uppercase letters",
			input:       "My_Package",
			expectError: true,
			suggestion:  "my_package",
		},
		{
			name:        "hyphen separator",
			input:       "my-package",
			expectError: true,
			suggestion:  "my_package",
		},
		{
			name:        "leading digit",
			input:       "2pkg",
			expectError: true,
		},
		{
			name:        "leading underscore",
			input:       "_pkg",
			expectError: true,
			suggestion:  "pkg",
		},
		{
			name:        "trailing underscore",
			input:       "pkg_",
			expectError: true,
			suggestion:  "pkg",
		},
		{
			name:        "double underscore",
			input:       "my__pkg",
			expectError: true,
			suggestion:  "my_pkg",
		},
		{
			name:        "empty",
			input:       "",
			expectError: true,
		},
		{
			name:        "contains space",
			input:       "my pkg",
			expectError: true,
			suggestion:  "my_pkg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePackageName(tt.input)
			if !tt.expectError {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var nErr *NamingError
			require.ErrorAs(t, err, &nErr)
			assert.Equal(t, KindPackageName, nErr.Kind)
			assert.Equal(t, tt.input, nErr.Name)
			assert.NotEmpty(t, nErr.Reason)
			assert.Equal(t, tt.suggestion, nErr.Suggestion)
		})
	}
}

func TestNamingErrorMessage(t *testing.T) {
	err := ValidatePackageName("My_Package")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package name")
	assert.Contains(t, err.Error(), `"My_Package"`)
	assert.Contains(t, err.Error(), "uppercase letters are not allowed")
	assert.Contains(t, err.Error(), `did you mean "my_package"?`)

	// A plain error, not a NamingError, should not match ErrorAs.
	var nErr *NamingError
	assert.False(t, errors.As(errors.New("boom"), &nErr))
}
