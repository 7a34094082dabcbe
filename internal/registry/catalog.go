package registry

import (
	"github.com/dshills/lspreg/internal/settings"
)

// CatalogEntry is one declarative registration tuple: the id, the
// executable the availability probe checks, and the factory that builds
// the descriptor when the probe succeeds.
type CatalogEntry struct {
	ID         string
	Executable string
	Factory    Factory
}

// Catalog returns the builtin server entries. Entries are processed
// uniformly by Builder.RegisterCatalog; adding a server means adding one
// entry here.
func Catalog() []CatalogEntry {
	return []CatalogEntry{
		{ID: "gopls", Executable: "gopls", Factory: goplsDescriptor},
		{ID: "rust-analyzer", Executable: "rust-analyzer", Factory: rustAnalyzerDescriptor},
		{ID: "tsserver", Executable: "typescript-language-server", Factory: tsserverDescriptor},
		{ID: "pylsp", Executable: "pylsp", Factory: pylspDescriptor},
		{ID: "clangd", Executable: "clangd", Factory: clangdDescriptor},
		{ID: "lua-ls", Executable: "lua-language-server", Factory: luaDescriptor},
		{ID: "bashls", Executable: "bash-language-server", Factory: bashDescriptor},
		{ID: "yamlls", Executable: "yaml-language-server", Factory: yamlDescriptor},
		{ID: "marksman", Executable: "marksman", Factory: marksmanDescriptor},
	}
}

func goplsDescriptor(env Env) Descriptor {
	caps := BaselineCapabilities()
	caps.TextDocument.DocumentSymbol = &DocumentSymbolClientCapabilities{
		HierarchicalDocumentSymbolSupport: true,
	}
	caps.TextDocument.Formatting = &DocumentFormattingClientCapabilities{}
	caps.TextDocument.CodeAction = &CodeActionClientCapabilities{IsPreferredSupport: true}
	return Descriptor{
		ID:           "gopls",
		Command:      []string{"gopls", "serve"},
		FileTypes:    []string{"go", "gomod", "gosum"},
		RootMarkers:  []string{"go.work", "go.mod", ".git"},
		Capabilities: caps,
		Settings: &settings.Gopls{
			UsePlaceholders: true,
			StaticCheck:     true,
		},
	}
}

func rustAnalyzerDescriptor(env Env) Descriptor {
	caps := BaselineCapabilities()
	caps.TextDocument.Formatting = &DocumentFormattingClientCapabilities{}
	return Descriptor{
		ID:           "rust-analyzer",
		Command:      []string{"rust-analyzer"},
		FileTypes:    []string{"rust"},
		RootMarkers:  []string{"Cargo.toml", "rust-project.json", ".git"},
		Capabilities: caps,
		Settings: &settings.RustAnalyzer{
			CheckCommand:     "clippy",
			ProcMacroEnabled: true,
		},
	}
}

func tsserverDescriptor(env Env) Descriptor {
	return Descriptor{
		ID:           "tsserver",
		Command:      []string{"typescript-language-server", "--stdio"},
		FileTypes:    []string{"typescript", "typescriptreact", "javascript", "javascriptreact"},
		RootMarkers:  []string{"tsconfig.json", "jsconfig.json", "package.json", ".git"},
		Capabilities: BaselineCapabilities(),
		Settings:     settings.None,
	}
}

func pylspDescriptor(env Env) Descriptor {
	return Descriptor{
		ID:           "pylsp",
		Command:      []string{"pylsp"},
		FileTypes:    []string{"python"},
		RootMarkers:  []string{"pyproject.toml", "setup.py", "setup.cfg", "requirements.txt", ".git"},
		Capabilities: BaselineCapabilities(),
		Settings: &settings.Pylsp{
			VirtualEnv: env.VirtualEnv,
			ExtraPaths: env.ExtraPaths,
		},
	}
}

func clangdDescriptor(env Env) Descriptor {
	caps := BaselineCapabilities()
	caps.TextDocument.Formatting = &DocumentFormattingClientCapabilities{}
	return Descriptor{
		ID:           "clangd",
		Command:      []string{"clangd", "--background-index"},
		FileTypes:    []string{"c", "cpp", "objc"},
		RootMarkers:  []string{"compile_commands.json", "compile_flags.txt", ".git"},
		Capabilities: caps,
		Settings:     settings.None,
	}
}

func luaDescriptor(env Env) Descriptor {
	return Descriptor{
		ID:           "lua-ls",
		Command:      []string{"lua-language-server"},
		FileTypes:    []string{"lua"},
		RootMarkers:  []string{".luarc.json", ".luarc.jsonc", ".git"},
		Capabilities: BaselineCapabilities(),
		Settings:     &settings.LuaLS{},
	}
}

func bashDescriptor(env Env) Descriptor {
	return Descriptor{
		ID:           "bashls",
		Command:      []string{"bash-language-server", "start"},
		FileTypes:    []string{"shellscript"},
		RootMarkers:  []string{".git"},
		Capabilities: BaselineCapabilities(),
		Settings: settings.Map{
			"bashIde": map[string]any{
				"globPattern": "**/*@(.sh|.inc|.bash|.command)",
			},
		},
	}
}

func yamlDescriptor(env Env) Descriptor {
	return Descriptor{
		ID:           "yamlls",
		Command:      []string{"yaml-language-server", "--stdio"},
		FileTypes:    []string{"yaml"},
		RootMarkers:  []string{".git"},
		Capabilities: BaselineCapabilities(),
		Settings:     &settings.YamlLS{FormatEnabled: true},
	}
}

func marksmanDescriptor(env Env) Descriptor {
	return Descriptor{
		ID:           "marksman",
		Command:      []string{"marksman", "server"},
		FileTypes:    []string{"markdown"},
		RootMarkers:  []string{".marksman.toml", ".git"},
		Capabilities: BaselineCapabilities(),
		Settings:     settings.None,
	}
}
