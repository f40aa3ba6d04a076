// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"ydc/internal/lsp"
)

const lsName = "ydc" // Name identifier for the language server

var (
	version = "0.0.1"        // Server version
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	// Create a new instance of the YdcHandler (the dialect-specific handler)
	ydcHandler := lsp.NewYdcHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:                     ydcHandler.Initialize,
		Initialized:                    ydcHandler.Initialized,
		Shutdown:                       ydcHandler.Shutdown,
		SetTrace:                       ydcHandler.SetTrace,
		TextDocumentDidOpen:            ydcHandler.TextDocumentDidOpen,
		TextDocumentDidClose:           ydcHandler.TextDocumentDidClose,
		TextDocumentDidChange:          ydcHandler.TextDocumentDidChange,
		TextDocumentCompletion:         ydcHandler.TextDocumentCompletion,
		TextDocumentSemanticTokensFull: ydcHandler.TextDocumentSemanticTokensFull,
	}

	// Create a new GLSP (Go Language Server Protocol) server instance
	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting ydc LSP server...")

	// Start the server over standard input/output (used by most editors for LSP)
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting ydc LSP server:", err)
		os.Exit(1)
	}
}
