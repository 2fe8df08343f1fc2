package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"robdd/internal/ast"
)

func TestParseFailureFormatting(t *testing.T) {
	source := `a & & b`
	reporter := NewErrorReporter("formula", source)

	err := ParseFailure(errors.New(`1:5: unexpected token "&"`))
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "error["+ErrorParse+"]")
	assert.Contains(t, formatted, "check operator precedence")
}

func TestInvariantViolationFormatting(t *testing.T) {
	reporter := NewErrorReporter("formula", "")

	err := InvariantViolation("child of leaf handle %v requested", 0)
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "error["+ErrorInvariantViolation+"]")
	assert.Contains(t, formatted, "child of leaf handle 0 requested")
}

func TestResourceExhaustedFormatting(t *testing.T) {
	reporter := NewErrorReporter("formula", "")

	err := ResourceExhausted(1000)
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "error["+ErrorResourceExhaustion+"]")
	assert.Contains(t, formatted, "1000-node limit")
}

func TestErrorMarkerCreation(t *testing.T) {
	source := `a & & b`
	reporter := NewErrorReporter("formula", source)

	marker := reporter.createMarker(5, 1, Error)

	spaces := strings.Count(marker, " ")
	assert.Equal(t, 4, spaces)
	carets := strings.Count(marker, "^")
	assert.Equal(t, 1, carets)
}

func TestErrorLevels(t *testing.T) {
	reporter := NewErrorReporter("formula", "test")
	pos := ast.Position{Line: 1, Column: 1}

	errorFormatted := reporter.FormatError(CompilerError{Level: Error, Message: "test error", Position: pos})
	warningFormatted := reporter.FormatError(CompilerError{Level: Warning, Message: "test warning", Position: pos})

	assert.Contains(t, errorFormatted, "error:")
	assert.Contains(t, warningFormatted, "warning:")
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "Parser", GetErrorCategory(ErrorParse))
	assert.Equal(t, "Invariant Violation", GetErrorCategory(ErrorInvariantViolation))
	assert.Equal(t, "Resource Exhaustion", GetErrorCategory(ErrorResourceExhaustion))
	assert.Equal(t, "Unknown", GetErrorCategory("E9999"))
}
