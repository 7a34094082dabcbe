package registry

// ClientCapabilities is the capability set the host client advertises to
// a server during initialization.
type ClientCapabilities struct {
	Workspace    *WorkspaceClientCapabilities    `json:"workspace,omitempty"`
	TextDocument *TextDocumentClientCapabilities `json:"textDocument,omitempty"`
}

// WorkspaceClientCapabilities describes workspace-level capabilities.
type WorkspaceClientCapabilities struct {
	ApplyEdit        bool `json:"applyEdit,omitempty"`
	WorkspaceFolders bool `json:"workspaceFolders,omitempty"`
	Configuration    bool `json:"configuration,omitempty"`
}

// TextDocumentClientCapabilities describes per-document capabilities.
type TextDocumentClientCapabilities struct {
	Synchronization    *TextDocumentSyncClientCapabilities   `json:"synchronization,omitempty"`
	Completion         *CompletionClientCapabilities         `json:"completion,omitempty"`
	Hover              *HoverClientCapabilities              `json:"hover,omitempty"`
	FoldingRange       *FoldingRangeClientCapabilities       `json:"foldingRange,omitempty"`
	PublishDiagnostics *PublishDiagnosticsClientCapabilities `json:"publishDiagnostics,omitempty"`
	DocumentSymbol     *DocumentSymbolClientCapabilities     `json:"documentSymbol,omitempty"`
	Formatting         *DocumentFormattingClientCapabilities `json:"formatting,omitempty"`
	CodeAction         *CodeActionClientCapabilities         `json:"codeAction,omitempty"`
}

// TextDocumentSyncClientCapabilities describes document sync support.
type TextDocumentSyncClientCapabilities struct {
	DidSave  bool `json:"didSave,omitempty"`
	WillSave bool `json:"willSave,omitempty"`
}

// CompletionClientCapabilities describes completion support.
type CompletionClientCapabilities struct {
	ContextSupport bool                        `json:"contextSupport,omitempty"`
	CompletionItem *CompletionItemCapabilities `json:"completionItem,omitempty"`
}

// CompletionItemCapabilities describes completion item support.
type CompletionItemCapabilities struct {
	SnippetSupport      bool     `json:"snippetSupport,omitempty"`
	DeprecatedSupport   bool     `json:"deprecatedSupport,omitempty"`
	DocumentationFormat []string `json:"documentationFormat,omitempty"`
}

// HoverClientCapabilities describes hover support.
type HoverClientCapabilities struct {
	ContentFormat []string `json:"contentFormat,omitempty"`
}

// FoldingRangeClientCapabilities describes folding range support.
type FoldingRangeClientCapabilities struct {
	LineFoldingOnly bool `json:"lineFoldingOnly,omitempty"`
	RangeLimit      int  `json:"rangeLimit,omitempty"`
}

// PublishDiagnosticsClientCapabilities describes diagnostics support.
type PublishDiagnosticsClientCapabilities struct {
	RelatedInformation bool `json:"relatedInformation,omitempty"`
	VersionSupport     bool `json:"versionSupport,omitempty"`
}

// DocumentSymbolClientCapabilities describes document symbol support.
type DocumentSymbolClientCapabilities struct {
	HierarchicalDocumentSymbolSupport bool `json:"hierarchicalDocumentSymbolSupport,omitempty"`
}

// DocumentFormattingClientCapabilities describes formatting support.
type DocumentFormattingClientCapabilities struct{}

// CodeActionClientCapabilities describes code action support.
type CodeActionClientCapabilities struct {
	IsPreferredSupport bool `json:"isPreferredSupport,omitempty"`
}

// Markup kinds used in documentation/content format lists.
const (
	MarkupKindPlainText = "plaintext"
	MarkupKindMarkdown  = "markdown"
)

// BaselineCapabilities returns the fixed baseline every registered server
// advertises. Descriptors may extend it but never drop entries; folding
// range support is always present.
func BaselineCapabilities() ClientCapabilities {
	return ClientCapabilities{
		Workspace: &WorkspaceClientCapabilities{
			WorkspaceFolders: true,
			Configuration:    true,
		},
		TextDocument: &TextDocumentClientCapabilities{
			Synchronization: &TextDocumentSyncClientCapabilities{
				DidSave: true,
			},
			Completion: &CompletionClientCapabilities{
				ContextSupport: true,
				CompletionItem: &CompletionItemCapabilities{
					SnippetSupport:      true,
					DocumentationFormat: []string{MarkupKindMarkdown, MarkupKindPlainText},
				},
			},
			Hover: &HoverClientCapabilities{
				ContentFormat: []string{MarkupKindMarkdown, MarkupKindPlainText},
			},
			FoldingRange: &FoldingRangeClientCapabilities{
				LineFoldingOnly: true,
			},
			PublishDiagnostics: &PublishDiagnosticsClientCapabilities{
				RelatedInformation: true,
			},
		},
	}
}

// MeetsBaseline reports whether a capability set retains the fixed
// baseline entries.
func MeetsBaseline(caps ClientCapabilities) bool {
	if caps.Workspace == nil || caps.TextDocument == nil {
		return false
	}
	td := caps.TextDocument
	return td.Synchronization != nil &&
		td.Completion != nil &&
		td.Hover != nil &&
		td.FoldingRange != nil &&
		td.PublishDiagnostics != nil
}
