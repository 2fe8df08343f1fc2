// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"robdd/internal/lsp"
)

const lsName = "robdd"

var version = "0.0.1"

func main() {
	commonlog.Configure(1, nil)

	formulaHandler := lsp.NewFormulaHandler()

	handler := protocol.Handler{
		Initialize:            formulaHandler.Initialize,
		Initialized:           formulaHandler.Initialized,
		Shutdown:              formulaHandler.Shutdown,
		TextDocumentDidOpen:   formulaHandler.TextDocumentDidOpen,
		TextDocumentDidClose:  formulaHandler.TextDocumentDidClose,
		TextDocumentDidChange: formulaHandler.TextDocumentDidChange,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting robdd LSP server...")

	if err := s.RunStdio(); err != nil {
		log.Println("Error starting robdd LSP server:", err)
		os.Exit(1)
	}
}
