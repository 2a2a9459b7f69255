package qrcontent

import (
	"fmt"
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/qrcontent/internal/grammar"
	"github.com/ghettovoice/qrcontent/internal/ioutil"
)

// Email represents an e-mail intent rendered as a mailto: URI.
type Email struct {
	To      string `json:"to" yaml:"to"`
	Subject string `json:"subject" yaml:"subject"`
	Body    string `json:"body" yaml:"body"`
}

func (Email) content() {}

// Kind returns [KindEmail].
func (Email) Kind() Kind { return KindEmail }

// RenderTo writes the mailto: URI to w.
// Subject and body are percent-encoded as URI components (space becomes %20), the address is kept as is.
// The query is always present, even for empty subject and body.
func (r Email) RenderTo(w io.Writer, _ *RenderOptions) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Print(
		"mailto:", r.To,
		"?subject=", grammar.Escape(r.Subject, nil),
		"&body=", grammar.Escape(r.Body, nil),
	)
	return errtrace.Wrap2(cw.Result())
}

// Render returns the mailto: URI.
func (r Email) Render(opts *RenderOptions) string { return render(r, opts) }

// String returns the mailto: URI.
func (r Email) String() string { return r.Render(nil) }

// Format implements [fmt.Formatter].
func (r Email) Format(f fmt.State, verb rune) {
	type hideMethods Email
	type Email hideMethods
	format(f, verb, r, Email(r))
}

// Validate checks that the recipient is set.
func (r Email) Validate() error {
	return errtrace.Wrap(validate(r.Kind(), requireField("recipient", r.To)))
}

// IsValid reports whether [Email.Validate] passes.
func (r Email) IsValid() bool { return r.Validate() == nil }
