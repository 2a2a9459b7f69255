package qrcontent

import (
	"fmt"
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/qrcontent/internal/ioutil"
)

// Phone represents a phone call intent rendered as a tel: URI.
type Phone struct {
	Number string `json:"phone" yaml:"phone"`
}

func (Phone) content() {}

// Kind returns [KindPhone].
func (Phone) Kind() Kind { return KindPhone }

// RenderTo writes the tel: URI to w.
// The number is not normalized: spaces and dashes stay in place.
func (r Phone) RenderTo(w io.Writer, _ *RenderOptions) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Print("tel:", r.Number)
	return errtrace.Wrap2(cw.Result())
}

// Render returns the tel: URI.
func (r Phone) Render(opts *RenderOptions) string { return render(r, opts) }

// String returns the tel: URI.
func (r Phone) String() string { return r.Render(nil) }

// Format implements [fmt.Formatter].
func (r Phone) Format(f fmt.State, verb rune) {
	type hideMethods Phone
	type Phone hideMethods
	format(f, verb, r, Phone(r))
}

// Validate checks that the number is set.
func (r Phone) Validate() error {
	return errtrace.Wrap(validate(r.Kind(), requireField("phone", r.Number)))
}

// IsValid reports whether [Phone.Validate] passes.
func (r Phone) IsValid() bool { return r.Validate() == nil }
