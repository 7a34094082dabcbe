package registry

import (
	"github.com/dshills/lspreg/internal/notify"
	"github.com/dshills/lspreg/internal/probe"
)

// Env is the environment context handed to descriptor factories.
type Env struct {
	// Probe answers executable availability. Nil means the process
	// search path via exec.LookPath.
	Probe probe.Probe

	// VirtualEnv is the active virtual-environment path for
	// interpreter-based servers, empty when none is active.
	VirtualEnv string

	// ExtraPaths are user-supplied module search paths forwarded to
	// servers that accept them. Never hard-coded; they come from user
	// configuration.
	ExtraPaths []string

	// WorkDir is the fallback project root when no root marker matches.
	WorkDir string
}

// probeOrDefault returns the configured probe or the PATH-backed default.
func (e Env) probeOrDefault() probe.Probe {
	if e.Probe != nil {
		return e.Probe
	}
	return probe.Default()
}

// Factory produces a descriptor from the environment context.
type Factory func(env Env) Descriptor

// Builder assembles a registration Table. It is a one-shot, idempotent
// build: registering runs no retries, and building twice from an
// identical environment yields structurally equal tables.
//
// Builder is not safe for concurrent use; registration runs once during
// editor startup on a single goroutine.
type Builder struct {
	env      Env
	notifier *notify.Notifier
	byID     map[string]Descriptor
}

// NewBuilder creates a builder for the given environment. The notifier
// receives a warning for every skipped server; it may be nil when no
// user-visible notices are wanted.
func NewBuilder(env Env, notifier *notify.Notifier) *Builder {
	return &Builder{
		env:      env,
		notifier: notifier,
		byID:     make(map[string]Descriptor),
	}
}

// Register validates and adds a descriptor unconditionally. Registering
// an id twice overwrites the earlier entry.
func (b *Builder) Register(desc Descriptor) error {
	if err := desc.Validate(); err != nil {
		return err
	}
	b.byID[desc.ID] = desc
	return nil
}

// RegisterIfAvailable registers the factory's descriptor when executable
// resolves on the search path. A missing binary is not an error: it
// produces exactly one warning notice naming the binary and the server is
// skipped, leaving the rest of the table untouched.
//
// A malformed descriptor from the factory is a configuration-authoring
// bug and is returned as an error.
func (b *Builder) RegisterIfAvailable(id, executable string, factory Factory) error {
	if !b.env.probeOrDefault().Available(executable) {
		if b.notifier != nil {
			b.notifier.Warningf(id, "language server binary %q not found on search path; %s support disabled", executable, id)
		}
		return nil
	}

	desc := factory(b.env)
	if desc.Executable() != executable {
		return &DescriptorError{ID: id, Err: ErrExecutableMismatch}
	}
	if desc.ID == "" {
		desc.ID = id
	}
	return b.Register(desc)
}

// RegisterCatalog processes a declarative entry list uniformly, one
// RegisterIfAvailable call per entry. It returns the first authoring
// error; missing binaries never abort the pass.
func (b *Builder) RegisterCatalog(entries []CatalogEntry) error {
	for _, entry := range entries {
		if err := b.RegisterIfAvailable(entry.ID, entry.Executable, entry.Factory); err != nil {
			return err
		}
	}
	return nil
}

// Registered reports whether an id is currently in the builder.
func (b *Builder) Registered(id string) bool {
	_, ok := b.byID[id]
	return ok
}

// Build returns the finished immutable table. The builder can keep
// registering afterwards; later Build calls see the additions, earlier
// tables do not.
func (b *Builder) Build() *Table {
	byID := make(map[string]Descriptor, len(b.byID))
	for id, desc := range b.byID {
		byID[id] = desc
	}
	return &Table{byID: byID}
}
