package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	cerrors "robdd/internal/errors"
)

// ConvertParseError turns a parse failure into the single LSP diagnostic
// for a formula document (a document holds exactly one formula, so there
// is never more than one diagnostic to publish at a time).
func ConvertParseError(err *cerrors.CompilerError) []protocol.Diagnostic {
	length := err.Length
	if length <= 0 {
		length = 1
	}
	line := uint32(0)
	if err.Position.Line > 0 {
		line = uint32(err.Position.Line - 1)
	}
	column := uint32(0)
	if err.Position.Column > 0 {
		column = uint32(err.Position.Column - 1)
	}

	return []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: column},
			End:   protocol.Position{Line: line, Character: column + uint32(length)},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("robdd-parser"),
		Message:  err.Code + ": " + err.Message,
	}}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
