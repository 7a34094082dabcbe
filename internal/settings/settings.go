// Package settings models per-server configuration payloads.
//
// Servers with a documented schema get a strongly-typed variant; everything
// else uses the untyped Map. Every variant renders to an opaque JSON payload
// that the host editor forwards verbatim to the server during the
// initialization handshake.
package settings

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Settings renders a server-specific configuration payload.
type Settings interface {
	// Payload returns the JSON payload forwarded to the server.
	Payload() ([]byte, error)
}

// Map is the untyped fallback for servers whose schema is unspecified.
type Map map[string]any

// Payload implements Settings.
func (m Map) Payload() ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// None is an empty payload for servers that take no settings.
var None Settings = Map(nil)

// Apply overlays dot-path overrides onto a payload. Paths follow sjson
// syntax ("gopls.usePlaceholders"). Overrides are applied in map iteration
// order; independent paths make the order irrelevant.
func Apply(payload []byte, overrides map[string]any) ([]byte, error) {
	if len(payload) == 0 {
		payload = []byte("{}")
	}
	var err error
	for path, value := range overrides {
		payload, err = sjson.SetBytes(payload, path, value)
		if err != nil {
			return nil, fmt.Errorf("apply override %q: %w", path, err)
		}
	}
	return payload, nil
}

// Get extracts the value at a dot-path from a payload. The second return
// is false when the path does not exist.
func Get(payload []byte, path string) (any, bool) {
	result := gjson.GetBytes(payload, path)
	if !result.Exists() {
		return nil, false
	}
	return result.Value(), true
}

// Overridden wraps a base Settings with dot-path overrides applied on top.
func Overridden(base Settings, overrides map[string]any) Settings {
	if len(overrides) == 0 {
		return base
	}
	return &overridden{base: base, overrides: overrides}
}

type overridden struct {
	base      Settings
	overrides map[string]any
}

func (o *overridden) Payload() ([]byte, error) {
	payload, err := o.base.Payload()
	if err != nil {
		return nil, err
	}
	return Apply(payload, o.overrides)
}
