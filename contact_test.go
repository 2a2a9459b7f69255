package qrcontent_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/qrcontent"
)

func TestContact_Render(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rec  qrcontent.Contact
		want string
	}{
		{
			"zero",
			qrcontent.Contact{},
			"BEGIN:VCARD\nVERSION:3.0\nFN: \nN:;;;;\nEND:VCARD",
		},
		{
			"name only",
			qrcontent.Contact{FirstName: "Jane", LastName: "Doe"},
			"BEGIN:VCARD\nVERSION:3.0\nFN:Jane Doe\nN:Doe;Jane;;;\nEND:VCARD",
		},
		{
			"full",
			qrcontent.Contact{
				FirstName:    "Jane",
				LastName:     "Doe",
				Organization: "Acme",
				Title:        "CTO",
				Phone:        "+15551234567",
				Email:        "jane@acme.test",
				Website:      "https://acme.test",
				Address:      "1 Main St",
				City:         "Springfield",
				ZipCode:      "12345",
				Country:      "USA",
			},
			"BEGIN:VCARD\n" +
				"VERSION:3.0\n" +
				"FN:Jane Doe\n" +
				"N:Doe;Jane;;;\n" +
				"ORG:Acme\n" +
				"TITLE:CTO\n" +
				"TEL:+15551234567\n" +
				"EMAIL:jane@acme.test\n" +
				"URL:https://acme.test\n" +
				"ADR:;;1 Main St;Springfield;;12345;USA\n" +
				"END:VCARD",
		},
		{
			"city only",
			qrcontent.Contact{LastName: "Doe", City: "Berlin"},
			"BEGIN:VCARD\nVERSION:3.0\nFN: Doe\nN:Doe;;;;\nADR:;;;Berlin;;;\nEND:VCARD",
		},
		{
			"country only",
			qrcontent.Contact{FirstName: "Jane", Country: "NL"},
			"BEGIN:VCARD\nVERSION:3.0\nFN:Jane \nN:;Jane;;;\nADR:;;;;;;NL\nEND:VCARD",
		},
		{
			"some optional",
			qrcontent.Contact{FirstName: "Jo", Email: "jo@x.test", Title: "Dev"},
			"BEGIN:VCARD\nVERSION:3.0\nFN:Jo \nN:;Jo;;;\nTITLE:Dev\nEMAIL:jo@x.test\nEND:VCARD",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got := c.rec.Render(nil)
			if diff := cmp.Diff(strings.Split(got, "\n"), strings.Split(c.want, "\n")); diff != "" {
				t.Errorf("rec.Render(nil) = %q, want %q\ndiff (-got +want):\n%v", got, c.want, diff)
			}
		})
	}
}

func TestContact_OptionalLines(t *testing.T) {
	t.Parallel()

	type field struct {
		prefix string
		set    func(*qrcontent.Contact)
	}
	fields := []field{
		{"ORG:", func(c *qrcontent.Contact) { c.Organization = "Acme" }},
		{"TITLE:", func(c *qrcontent.Contact) { c.Title = "CTO" }},
		{"TEL:", func(c *qrcontent.Contact) { c.Phone = "1" }},
		{"EMAIL:", func(c *qrcontent.Contact) { c.Email = "a@b" }},
		{"URL:", func(c *qrcontent.Contact) { c.Website = "x.test" }},
		{"ADR:", func(c *qrcontent.Contact) { c.Address = "Main" }},
		{"ADR:", func(c *qrcontent.Contact) { c.City = "Rome" }},
		{"ADR:", func(c *qrcontent.Contact) { c.ZipCode = "00100" }},
		{"ADR:", func(c *qrcontent.Contact) { c.Country = "IT" }},
	}

	// every subset of fields, checked by bit mask
	for mask := range 1 << len(fields) {
		var rec qrcontent.Contact
		wantPrefixes := make(map[string]bool)
		for i, f := range fields {
			if mask&(1<<i) != 0 {
				f.set(&rec)
				wantPrefixes[f.prefix] = true
			}
		}

		got := rec.String()
		if !strings.HasPrefix(got, "BEGIN:VCARD\nVERSION:3.0\n") {
			t.Fatalf("payload %q has wrong header", got)
		}
		if !strings.HasSuffix(got, "\nEND:VCARD") {
			t.Fatalf("payload %q has wrong trailer", got)
		}

		lines := strings.Split(got, "\n")
		for _, prefix := range []string{"ORG:", "TITLE:", "TEL:", "EMAIL:", "URL:", "ADR:"} {
			var n int
			for _, l := range lines {
				if strings.HasPrefix(l, prefix) {
					n++
				}
			}
			want := 0
			if wantPrefixes[prefix] {
				want = 1
			}
			if n != want {
				t.Errorf("payload %q has %d %q lines, want %d", got, n, prefix, want)
			}
		}
	}
}

func TestContact_Validate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		rec     qrcontent.Contact
		wantErr error
	}{
		{"first name", qrcontent.Contact{FirstName: "Jane"}, nil},
		{"last name", qrcontent.Contact{LastName: "Doe"}, nil},
		{"no name", qrcontent.Contact{Organization: "Acme"}, qrcontent.ErrInvalidArgument},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := c.rec.Validate()
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("rec.Validate() error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
		})
	}
}
