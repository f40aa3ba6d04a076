package lsp

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"ydc/internal/parser"
)

// Define the set of supported semantic token types (as required by the LSP spec)
var SemanticTokenTypes = []string{
	"keyword",
	"function",
	"variable",
	"number",
	"string",
	"operator",
	"macro",
}

// Define the set of supported semantic token modifiers
var SemanticTokenModifiers = []string{
	"declaration",
	"definition",
	"readonly",
}

// YdcHandler implements the LSP server handlers for the reversed C dialect
type YdcHandler struct {
	mu      sync.RWMutex
	content map[string]string
}

// NewYdcHandler creates and returns a new YdcHandler instance
func NewYdcHandler() *YdcHandler {
	return &YdcHandler{
		content: make(map[string]string),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *YdcHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true), // notify on open/close events
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			CompletionProvider: &protocol.CompletionOptions{
				ResolveProvider: ptrBool(false), // no additional detail resolution yet
			},
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true), // support full-document semantic token requests
			},
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *YdcHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("ydc LSP Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *YdcHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("ydc LSP Shutdown")
	return nil
}

// SetTrace handles trace level changes from the client
func (h *YdcHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *YdcHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.Lock()
	h.content[path] = params.TextDocument.Text
	h.mu.Unlock()

	h.publishDiagnostics(ctx, params.TextDocument.URI, path, params.TextDocument.Text)
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *YdcHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)

	return nil
}

// TextDocumentDidChange handles file change notifications from the editor.
// The server requested full-document sync, so the last whole-document change
// wins.
func (h *YdcHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	var content string
	found := false
	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEvent:
			content = c.Text
			found = true
		case protocol.TextDocumentContentChangeEventWhole:
			content = c.Text
			found = true
		}
	}
	if !found {
		return nil
	}

	h.mu.Lock()
	h.content[path] = content
	h.mu.Unlock()

	h.publishDiagnostics(ctx, params.TextDocument.URI, path, content)
	return nil
}

// TextDocumentCompletion offers the dialect's keywords
func (h *YdcHandler) TextDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (interface{}, error) {
	var items []protocol.CompletionItem
	for keyword := range parser.KEYWORDS {
		kind := protocol.CompletionItemKindKeyword
		items = append(items, protocol.CompletionItem{
			Label: keyword,
			Kind:  &kind,
		})
	}
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *YdcHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	log.Println("TextDocumentSemanticTokensFull called for:", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	content, err := h.documentContent(path)
	if err != nil {
		return nil, err
	}

	scanner := parser.NewScanner(content)
	tokens := collectSemanticTokens(scanner.ScanTokens())

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(tokens),
	}, nil
}

// documentContent returns the tracked editor content, falling back to disk
// for documents the editor never opened.
func (h *YdcHandler) documentContent(path string) (string, error) {
	h.mu.RLock()
	content, ok := h.content[path]
	h.mu.RUnlock()
	if ok {
		return content, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return string(raw), nil
}

func (h *YdcHandler) publishDiagnostics(ctx *glsp.Context, uri protocol.DocumentUri, path, content string) {
	_, parseErrors, scanErrors := parser.TranspileSource(path, content)

	diagnostics := append(ConvertScanErrors(scanErrors), ConvertParseErrors(parseErrors)...)
	if diagnostics == nil {
		// An explicit empty list clears stale squiggles in the editor.
		diagnostics = []protocol.Diagnostic{}
	}
	sendDiagnosticNotification(ctx, uri, diagnostics)
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	// Normalize to platform-specific separators
	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	diagnosticsJSON, err := json.MarshalIndent(diagnostics, "", "  ")
	if err != nil {
		fmt.Println("Failed to marshal diagnostics:", err)
		return
	}

	log.Println("Sending diagnostics:", string(diagnosticsJSON))

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
