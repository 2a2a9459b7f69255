package qrcontent

import (
	"fmt"
	"io"

	"braces.dev/errtrace"
)

// Text is a plain text payload. It is rendered as is.
type Text struct {
	Value string `json:"value" yaml:"value"`
}

func (Text) content() {}

// Kind returns [KindText].
func (Text) Kind() Kind { return KindText }

// RenderTo writes the text to w. Options are ignored.
func (r Text) RenderTo(w io.Writer, _ *RenderOptions) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, r.Value))
}

// Render returns the text.
func (r Text) Render(opts *RenderOptions) string { return render(r, opts) }

// String returns the text.
func (r Text) String() string { return r.Value }

// Format implements [fmt.Formatter].
func (r Text) Format(f fmt.State, verb rune) {
	type hideMethods Text
	type Text hideMethods
	format(f, verb, r, Text(r))
}

// Validate checks that the value is set.
func (r Text) Validate() error {
	return errtrace.Wrap(validate(r.Kind(), requireField("text", r.Value)))
}

// IsValid reports whether [Text.Validate] passes.
func (r Text) IsValid() bool { return r.Validate() == nil }

// URL is a link payload. It is rendered as is.
type URL struct {
	Value string `json:"value" yaml:"value"`
}

func (URL) content() {}

// Kind returns [KindURL].
func (URL) Kind() Kind { return KindURL }

// RenderTo writes the link to w. Options are ignored.
func (r URL) RenderTo(w io.Writer, _ *RenderOptions) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, r.Value))
}

// Render returns the link.
func (r URL) Render(opts *RenderOptions) string { return render(r, opts) }

// String returns the link.
func (r URL) String() string { return r.Value }

// Format implements [fmt.Formatter].
func (r URL) Format(f fmt.State, verb rune) {
	type hideMethods URL
	type URL hideMethods
	format(f, verb, r, URL(r))
}

// Validate checks that the value is set.
func (r URL) Validate() error {
	return errtrace.Wrap(validate(r.Kind(), requireField("URL", r.Value)))
}

// IsValid reports whether [URL.Validate] passes.
func (r URL) IsValid() bool { return r.Validate() == nil }

// CurrentPage is the address of the page hosting the generator. It is rendered as is.
type CurrentPage struct {
	Value string `json:"value" yaml:"value"`
}

func (CurrentPage) content() {}

// Kind returns [KindCurrentPage].
func (CurrentPage) Kind() Kind { return KindCurrentPage }

// RenderTo writes the page address to w. Options are ignored.
func (r CurrentPage) RenderTo(w io.Writer, _ *RenderOptions) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, r.Value))
}

// Render returns the page address.
func (r CurrentPage) Render(opts *RenderOptions) string { return render(r, opts) }

// String returns the page address.
func (r CurrentPage) String() string { return r.Value }

// Format implements [fmt.Formatter].
func (r CurrentPage) Format(f fmt.State, verb rune) {
	type hideMethods CurrentPage
	type CurrentPage hideMethods
	format(f, verb, r, CurrentPage(r))
}

// Validate checks that the value is set.
func (r CurrentPage) Validate() error {
	return errtrace.Wrap(validate(r.Kind(), requireField("page URL", r.Value)))
}

// IsValid reports whether [CurrentPage.Validate] passes.
func (r CurrentPage) IsValid() bool { return r.Validate() == nil }
