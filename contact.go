package qrcontent

import (
	"fmt"
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/qrcontent/internal/errorutil"
	"github.com/ghettovoice/qrcontent/internal/ioutil"
	"github.com/ghettovoice/qrcontent/internal/util"
)

// Contact represents a contact card rendered as a vCard 3.0 document.
type Contact struct {
	FirstName    string `json:"firstName" yaml:"firstName"`
	LastName     string `json:"lastName" yaml:"lastName"`
	Organization string `json:"organization" yaml:"organization"`
	Title        string `json:"title" yaml:"title"`
	Phone        string `json:"phone" yaml:"phone"`
	Email        string `json:"email" yaml:"email"`
	Website      string `json:"website" yaml:"website"`
	Address      string `json:"address" yaml:"address"`
	City         string `json:"city" yaml:"city"`
	ZipCode      string `json:"zipCode" yaml:"zipCode"`
	Country      string `json:"country" yaml:"country"`
}

func (Contact) content() {}

// Kind returns [KindVCard].
func (Contact) Kind() Kind { return KindVCard }

// HasAddress reports whether any of the address fields is set.
func (r Contact) HasAddress() bool {
	return util.AnyNonEmpty(r.Address, r.City, r.ZipCode, r.Country)
}

// RenderTo writes the vCard document to w.
// Lines are separated by a single LF and the document has no trailing line break.
// FN and N are always present, ORG, TITLE, TEL, EMAIL, URL appear only for non-empty fields
// and ADR only when [Contact.HasAddress] is true.
// Line order is fixed, some scanners depend on it.
func (r Contact) RenderTo(w io.Writer, _ *RenderOptions) (int, error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Print("BEGIN:VCARD\n", "VERSION:3.0\n").
		Print("FN:", r.FirstName, " ", r.LastName, "\n").
		Print("N:", r.LastName, ";", r.FirstName, ";;;\n").
		PrintIf(r.Organization != "", "ORG:", r.Organization, "\n").
		PrintIf(r.Title != "", "TITLE:", r.Title, "\n").
		PrintIf(r.Phone != "", "TEL:", r.Phone, "\n").
		PrintIf(r.Email != "", "EMAIL:", r.Email, "\n").
		PrintIf(r.Website != "", "URL:", r.Website, "\n").
		// post office box and region components are always empty
		PrintIf(r.HasAddress(), "ADR:;;", r.Address, ";", r.City, ";;", r.ZipCode, ";", r.Country, "\n").
		Print("END:VCARD")
	return errtrace.Wrap2(cw.Result())
}

// Render returns the vCard document.
func (r Contact) Render(opts *RenderOptions) string { return render(r, opts) }

// String returns the vCard document.
func (r Contact) String() string { return r.Render(nil) }

// Format implements [fmt.Formatter].
func (r Contact) Format(f fmt.State, verb rune) {
	type hideMethods Contact
	type Contact hideMethods
	format(f, verb, r, Contact(r))
}

// Validate checks that at least a first or a last name is set.
func (r Contact) Validate() error {
	var err error
	if r.FirstName == "" && r.LastName == "" {
		err = errorutil.NewInvalidArgumentError("empty name")
	}
	return errtrace.Wrap(validate(r.Kind(), err))
}

// IsValid reports whether [Contact.Validate] passes.
func (r Contact) IsValid() bool { return r.Validate() == nil }
