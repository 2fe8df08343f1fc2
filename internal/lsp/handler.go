// Package lsp implements a minimal diagnostics-only language server for
// the formula language: it republishes parse diagnostics for a document
// on open/change and clears them on a successful parse. There is no
// completion or semantic-token support — the language has no symbols
// beyond formula variables, already covered by diagnostics.
package lsp

import (
	"log"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"robdd/internal/parser"
)

// FormulaHandler implements the LSP server handlers for the formula
// language. It only ever parses a document to compute diagnostics; it
// never constructs a robdd.Store, so there is nothing shared across
// documents beyond the content map below.
type FormulaHandler struct {
	mu      sync.RWMutex
	content map[string]string
}

// NewFormulaHandler creates and returns a new FormulaHandler instance.
func NewFormulaHandler() *FormulaHandler {
	return &FormulaHandler{content: make(map[string]string)}
}

// Initialize responds to the client's initialize request and advertises
// full-document sync with no other capabilities.
func (h *FormulaHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("robdd-lsp Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
		},
	}, nil
}

// Initialized is called once the client has received the server's
// capabilities.
func (h *FormulaHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("robdd-lsp Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request.
func (h *FormulaHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("robdd-lsp Shutdown")
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor.
func (h *FormulaHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	h.setContent(uri, params.TextDocument.Text)
	h.publish(ctx, uri)
	return nil
}

// TextDocumentDidChange handles file change notifications from the
// editor. The server advertises full-document sync, so the last content
// change carries the entire new document body.
func (h *FormulaHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	if len(params.ContentChanges) > 0 {
		if change, ok := params.ContentChanges[len(params.ContentChanges)-1].(protocol.TextDocumentContentChangeEventWhole); ok {
			h.setContent(uri, change.Text)
		}
	}
	h.publish(ctx, uri)
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor.
func (h *FormulaHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	h.mu.Lock()
	delete(h.content, uri)
	h.mu.Unlock()
	return nil
}

func (h *FormulaHandler) setContent(uri protocol.DocumentUri, text string) {
	h.mu.Lock()
	h.content[uri] = text
	h.mu.Unlock()
}

func (h *FormulaHandler) publish(ctx *glsp.Context, uri protocol.DocumentUri) {
	h.mu.RLock()
	text := h.content[uri]
	h.mu.RUnlock()

	diagnostics := h.DiagnosticsFor(text)
	sendDiagnosticNotification(ctx, uri, diagnostics)
}

// DiagnosticsFor parses text as a single formula and returns the parse
// diagnostics, or an empty slice on success (which clears any previously
// published diagnostic for this document).
func (h *FormulaHandler) DiagnosticsFor(text string) []protocol.Diagnostic {
	_, perr := parser.ParseSource("document", text)
	if perr != nil {
		return ConvertParseError(perr)
	}
	return []protocol.Diagnostic{}
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
