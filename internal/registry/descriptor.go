package registry

import (
	"github.com/dshills/lspreg/internal/settings"
)

// Descriptor is the static configuration record for one language server:
// how to launch it, which files it handles, how to find the project root,
// what the client advertises, and what settings it receives.
//
// Descriptors are created once at configuration-load time and never
// mutated after registration. Callers must treat slice fields as
// read-only.
type Descriptor struct {
	// ID uniquely identifies the server within the table.
	ID string

	// Command is the argv used to launch the server process. Command[0]
	// must resolve to an executable on the search path at registration
	// time.
	Command []string

	// FileTypes are the language/file-type tags this server handles.
	FileTypes []string

	// RootMarkers are filesystem names used to locate the project root
	// by upward search, evaluated in order.
	RootMarkers []string

	// Capabilities is the capability set the client advertises. It must
	// be a superset of BaselineCapabilities.
	Capabilities ClientCapabilities

	// Settings is the server-specific configuration payload, forwarded
	// unmodified to the server at initialization.
	Settings settings.Settings
}

// Validate reports the first authoring error in the descriptor. A failed
// validation is a configuration bug, not a runtime condition.
func (d *Descriptor) Validate() error {
	if d.ID == "" {
		return &DescriptorError{ID: d.ID, Err: ErrEmptyID}
	}
	if len(d.Command) == 0 || d.Command[0] == "" {
		return &DescriptorError{ID: d.ID, Err: ErrEmptyCommand}
	}
	if len(d.FileTypes) == 0 {
		return &DescriptorError{ID: d.ID, Err: ErrNoFileTypes}
	}
	if !MeetsBaseline(d.Capabilities) {
		return &DescriptorError{ID: d.ID, Err: ErrMissingBaseline}
	}
	return nil
}

// Executable returns the probed executable name, Command[0].
func (d *Descriptor) Executable() string {
	if len(d.Command) == 0 {
		return ""
	}
	return d.Command[0]
}

// HandlesFileType reports whether the descriptor covers a file-type tag.
func (d *Descriptor) HandlesFileType(fileType string) bool {
	for _, ft := range d.FileTypes {
		if ft == fileType {
			return true
		}
	}
	return false
}
