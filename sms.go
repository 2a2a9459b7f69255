package qrcontent

import (
	"fmt"
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/qrcontent/internal/grammar"
	"github.com/ghettovoice/qrcontent/internal/ioutil"
)

// SMS represents a text message intent rendered as SMSTO:<phone>:<message>.
type SMS struct {
	Phone   string `json:"phone" yaml:"phone"`
	Message string `json:"message" yaml:"message"`
}

func (SMS) content() {}

// Kind returns [KindSMS].
func (SMS) Kind() Kind { return KindSMS }

// RenderTo writes the SMSTO intent to w.
// Colons in the message are kept unescaped unless opts ask for escaping.
func (r SMS) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	phone, msg := r.Phone, r.Message
	if opts.ShouldEscape() {
		phone = grammar.BackslashEscape(phone, grammar.IsSMSSpecial)
		msg = grammar.BackslashEscape(msg, grammar.IsSMSSpecial)
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Print("SMSTO:", phone, ":", msg)
	return errtrace.Wrap2(cw.Result())
}

// Render returns the SMSTO intent.
func (r SMS) Render(opts *RenderOptions) string { return render(r, opts) }

// String returns the SMSTO intent rendered with default options.
func (r SMS) String() string { return r.Render(nil) }

// Format implements [fmt.Formatter].
func (r SMS) Format(f fmt.State, verb rune) {
	type hideMethods SMS
	type SMS hideMethods
	format(f, verb, r, SMS(r))
}

// Validate checks that the phone number is set.
func (r SMS) Validate() error {
	return errtrace.Wrap(validate(r.Kind(), requireField("phone", r.Phone)))
}

// IsValid reports whether [SMS.Validate] passes.
func (r SMS) IsValid() bool { return r.Validate() == nil }
