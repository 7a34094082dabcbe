// Package probe answers whether a language server executable is present
// on the execution search path.
//
// Availability is checked once at registration time; a binary installed
// afterwards is only picked up on the next registration pass.
package probe

import "os/exec"

// LookPathFunc resolves an executable name to a path, returning an error
// when the name does not resolve. exec.LookPath satisfies this signature.
type LookPathFunc func(name string) (string, error)

// Probe reports whether an executable is available.
type Probe interface {
	// Available returns true if name resolves on the search path.
	Available(name string) bool
}

// ProbeFunc adapts a function to the Probe interface.
type ProbeFunc func(name string) bool

// Available implements Probe.
func (f ProbeFunc) Available(name string) bool {
	return f(name)
}

// PathProbe checks executable availability against the process search
// path. The zero value uses exec.LookPath.
type PathProbe struct {
	// LookPath overrides the resolver. Nil means exec.LookPath.
	LookPath LookPathFunc
}

// Available returns true if name resolves to an executable.
func (p *PathProbe) Available(name string) bool {
	if name == "" {
		return false
	}
	lookPath := p.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	_, err := lookPath(name)
	return err == nil
}

// Default returns a probe backed by exec.LookPath.
func Default() Probe {
	return &PathProbe{}
}

// Fixed returns a probe that reports the given names as available and
// everything else as missing. Intended for tests and dry runs.
func Fixed(names ...string) Probe {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return ProbeFunc(func(name string) bool {
		return set[name]
	})
}
