package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/lspreg/internal/notify"
	"github.com/dshills/lspreg/internal/probe"
	"github.com/dshills/lspreg/internal/settings"
)

func testFactory(id, executable string) Factory {
	return func(env Env) Descriptor {
		return Descriptor{
			ID:           id,
			Command:      []string{executable, "--stdio"},
			FileTypes:    []string{id},
			RootMarkers:  []string{".git"},
			Capabilities: BaselineCapabilities(),
			Settings:     settings.None,
		}
	}
}

func TestBuilder_RegisterIfAvailable(t *testing.T) {
	env := Env{Probe: probe.Fixed("gopls")}
	b := NewBuilder(env, nil)

	if err := b.RegisterIfAvailable("gopls", "gopls", testFactory("gopls", "gopls")); err != nil {
		t.Fatalf("RegisterIfAvailable: %v", err)
	}

	table := b.Build()
	desc, ok := table.Get("gopls")
	if !ok {
		t.Fatal("Expected gopls to be registered")
	}
	if desc.Command[0] != "gopls" {
		t.Errorf("Command[0] = %q, want probed executable 'gopls'", desc.Command[0])
	}
	if len(desc.FileTypes) == 0 {
		t.Error("Expected non-empty file types")
	}
}

func TestBuilder_MissingBinaryEmitsOneWarning(t *testing.T) {
	notifier := notify.New()
	rec := &notify.Recorder{}
	notifier.Subscribe(rec.Observe)

	env := Env{Probe: probe.Fixed()} // nothing available
	b := NewBuilder(env, notifier)

	if err := b.RegisterIfAvailable("pylsp", "pylsp", testFactory("pylsp", "pylsp")); err != nil {
		t.Fatalf("RegisterIfAvailable: %v", err)
	}

	table := b.Build()
	if _, ok := table.Get("pylsp"); ok {
		t.Error("Expected pylsp to be absent from the table")
	}

	notices := rec.ByServer("pylsp")
	if len(notices) != 1 {
		t.Fatalf("Expected exactly 1 warning, got %d", len(notices))
	}
	if notices[0].Severity != notify.SeverityWarning {
		t.Errorf("Severity = %v, want warning", notices[0].Severity)
	}
	if !strings.Contains(notices[0].Message, "pylsp") {
		t.Errorf("Warning should name the missing binary, got %q", notices[0].Message)
	}
}

func TestBuilder_MissingBinaryDoesNotAffectOthers(t *testing.T) {
	env := Env{Probe: probe.Fixed("clangd")}
	b := NewBuilder(env, nil)

	if err := b.RegisterIfAvailable("pylsp", "pylsp", testFactory("pylsp", "pylsp")); err != nil {
		t.Fatalf("RegisterIfAvailable(pylsp): %v", err)
	}
	if err := b.RegisterIfAvailable("clangd", "clangd", testFactory("clangd", "clangd")); err != nil {
		t.Fatalf("RegisterIfAvailable(clangd): %v", err)
	}

	table := b.Build()
	if table.Len() != 1 {
		t.Fatalf("Expected 1 entry, got %d", table.Len())
	}
	if _, ok := table.Get("clangd"); !ok {
		t.Error("Expected clangd to be registered")
	}
}

func TestBuilder_ExecutableMismatch(t *testing.T) {
	env := Env{Probe: probe.Fixed("gopls")}
	b := NewBuilder(env, nil)

	err := b.RegisterIfAvailable("gopls", "gopls", testFactory("gopls", "not-gopls"))
	if !errors.Is(err, ErrExecutableMismatch) {
		t.Errorf("Expected ErrExecutableMismatch, got %v", err)
	}
}

func TestBuilder_MalformedDescriptor(t *testing.T) {
	env := Env{Probe: probe.Fixed("bad")}
	b := NewBuilder(env, nil)

	factory := func(Env) Descriptor {
		return Descriptor{ID: "bad", Command: []string{"bad"}} // no file types
	}

	err := b.RegisterIfAvailable("bad", "bad", factory)
	if !errors.Is(err, ErrNoFileTypes) {
		t.Errorf("Expected ErrNoFileTypes, got %v", err)
	}
}

func TestBuilder_LastWriteWins(t *testing.T) {
	env := Env{Probe: probe.Fixed("gopls")}
	b := NewBuilder(env, nil)

	first := testFactory("gopls", "gopls")
	second := func(e Env) Descriptor {
		desc := first(e)
		desc.FileTypes = []string{"go", "gomod"}
		return desc
	}

	if err := b.RegisterIfAvailable("gopls", "gopls", first); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if err := b.RegisterIfAvailable("gopls", "gopls", second); err != nil {
		t.Fatalf("second register: %v", err)
	}

	table := b.Build()
	if table.Len() != 1 {
		t.Fatalf("Expected 1 entry after overwrite, got %d", table.Len())
	}
	desc, _ := table.Get("gopls")
	if len(desc.FileTypes) != 2 {
		t.Errorf("Expected overwritten descriptor, got file types %v", desc.FileTypes)
	}
}

func TestBuilder_Idempotence(t *testing.T) {
	build := func() *Table {
		env := Env{
			Probe:      probe.Fixed("gopls", "pylsp", "clangd"),
			VirtualEnv: "/home/user/.venvs/proj",
			ExtraPaths: []string{"/opt/stubs"},
		}
		b := NewBuilder(env, nil)
		if err := b.RegisterCatalog(Catalog()); err != nil {
			t.Fatalf("RegisterCatalog: %v", err)
		}
		return b.Build()
	}

	first := build()
	second := build()

	if diff := cmp.Diff(first.All(), second.All()); diff != "" {
		t.Errorf("Tables differ between identical builds (-first +second):\n%s", diff)
	}
}

func TestBuilder_BuildSnapshotsEntries(t *testing.T) {
	env := Env{Probe: probe.Fixed("gopls", "clangd")}
	b := NewBuilder(env, nil)

	if err := b.RegisterIfAvailable("gopls", "gopls", testFactory("gopls", "gopls")); err != nil {
		t.Fatalf("register: %v", err)
	}
	table := b.Build()

	if err := b.RegisterIfAvailable("clangd", "clangd", testFactory("clangd", "clangd")); err != nil {
		t.Fatalf("register: %v", err)
	}

	if table.Len() != 1 {
		t.Errorf("Earlier table changed after later registration: len=%d", table.Len())
	}
}

func TestBuilder_NilNotifierDoesNotPanic(t *testing.T) {
	b := NewBuilder(Env{Probe: probe.Fixed()}, nil)
	if err := b.RegisterIfAvailable("gopls", "gopls", testFactory("gopls", "gopls")); err != nil {
		t.Fatalf("RegisterIfAvailable: %v", err)
	}
}

func TestBuilder_Registered(t *testing.T) {
	b := NewBuilder(Env{Probe: probe.Fixed("gopls")}, nil)

	if b.Registered("gopls") {
		t.Error("Expected gopls unregistered before registration")
	}
	if err := b.RegisterIfAvailable("gopls", "gopls", testFactory("gopls", "gopls")); err != nil {
		t.Fatalf("register: %v", err)
	}
	if !b.Registered("gopls") {
		t.Error("Expected gopls registered")
	}
}
