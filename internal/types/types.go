// Package types contains interfaces shared by payload records.
package types

import "io"

// Renderer is implemented by values that render to a canonical payload string.
type Renderer interface {
	// Render renders the value to a string with the given options.
	Render(opts *RenderOptions) string
	// RenderTo renders the value to a writer with the given options.
	RenderTo(w io.Writer, opts *RenderOptions) (int, error)
}

// RenderOptions tunes rendering. A nil value means the defaults.
type RenderOptions struct {
	// Escape enables backslash escaping of the reserved characters in WiFi and SMS fields.
	// Off by default to keep payloads identical to previously generated codes.
	Escape bool `json:"escape,omitempty" yaml:"escape,omitempty"`
}

// ShouldEscape reports whether opts ask for escaping.
func (opts *RenderOptions) ShouldEscape() bool { return opts != nil && opts.Escape }

type ValidFlag interface {
	IsValid() bool
}

type Validatable interface {
	Validate() error
}
