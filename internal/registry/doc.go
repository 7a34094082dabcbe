// Package registry builds the language server registration table.
//
// The table maps a server identifier to a declarative Descriptor: the
// launch argv, the file types the server handles, ordered project-root
// markers, the advertised client capability set, and a server-specific
// settings payload. The table is consumed by a host editor's LSP client;
// nothing in this package launches a process or speaks the protocol.
//
// # Building a table
//
// Registration happens once at configuration-load time:
//
//	env := registry.Env{Probe: probe.Default()}
//	builder := registry.NewBuilder(env, notifier)
//	builder.RegisterCatalog(registry.Catalog())
//	table := builder.Build()
//
// Each catalog entry is registered only when its executable resolves on
// the search path. A missing binary produces a warning notice and the
// entry is skipped; the rest of the table is unaffected.
//
// # Immutability
//
// Build returns a value that never changes afterwards. Re-running the
// builder against an identical environment yields a structurally equal
// table; registering the same id twice overwrites the earlier entry.
package registry
