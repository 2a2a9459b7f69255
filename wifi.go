package qrcontent

import (
	"fmt"
	"io"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/ghettovoice/qrcontent/internal/errorutil"
	"github.com/ghettovoice/qrcontent/internal/grammar"
	"github.com/ghettovoice/qrcontent/internal/ioutil"
	"github.com/ghettovoice/qrcontent/internal/util"
)

// Encryption is the WiFi authentication type token.
type Encryption string

const (
	EncryptionWPA Encryption = "WPA"
	EncryptionWEP Encryption = "WEP"
	// EncryptionNone marks an open network. The password is still rendered when set.
	EncryptionNone Encryption = "nopass"
)

// IsValid checks whether e is one of the known tokens.
func (e Encryption) IsValid() bool {
	switch e {
	case EncryptionWPA, EncryptionWEP, EncryptionNone:
		return true
	default:
		return false
	}
}

func (e Encryption) String() string { return string(e) }

// WiFi represents WiFi network credentials.
type WiFi struct {
	SSID       string     `json:"ssid" yaml:"ssid"`
	Password   string     `json:"password" yaml:"password"`
	Encryption Encryption `json:"encryption" yaml:"encryption"`
	Hidden     bool       `json:"hidden" yaml:"hidden"`
}

func (WiFi) content() {}

// Kind returns [KindWiFi].
func (WiFi) Kind() Kind { return KindWiFi }

// RenderTo writes the WiFi QR config string to w:
//
//	WIFI:T:<encryption>;S:<ssid>;P:<password>;<H:true or empty>;
//
// The hidden flag segment is kept empty for visible networks, so such payloads end with ";;".
func (r WiFi) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	ssid, pass := r.SSID, r.Password
	if opts.ShouldEscape() {
		ssid = grammar.BackslashEscape(ssid, grammar.IsWiFiSpecial)
		pass = grammar.BackslashEscape(pass, grammar.IsWiFiSpecial)
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Print("WIFI:T:", string(r.Encryption), ";S:", ssid, ";P:", pass, ";").
		PrintIf(r.Hidden, "H:true").
		Print(";")
	return errtrace.Wrap2(cw.Result())
}

// Render returns the WiFi QR config string.
func (r WiFi) Render(opts *RenderOptions) string { return render(r, opts) }

// String returns the WiFi QR config string rendered with default options.
func (r WiFi) String() string { return r.Render(nil) }

// Format implements [fmt.Formatter].
func (r WiFi) Format(f fmt.State, verb rune) {
	type hideMethods WiFi
	type WiFi hideMethods
	format(f, verb, r, WiFi(r))
}

// LogValue implements [slog.LogValuer]. The password is masked.
func (r WiFi) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("ssid", r.SSID),
		slog.String("password", util.Mask(r.Password)),
		slog.String("encryption", string(r.Encryption)),
		slog.Bool("hidden", r.Hidden),
	)
}

// Validate checks that the SSID is set and the encryption token is known.
func (r WiFi) Validate() error {
	var encErr error
	if !r.Encryption.IsValid() {
		encErr = errorutil.NewInvalidArgumentError("unknown encryption %q", string(r.Encryption))
	}
	return errtrace.Wrap(validate(r.Kind(), requireField("SSID", r.SSID), encErr))
}

// IsValid reports whether [WiFi.Validate] passes.
func (r WiFi) IsValid() bool { return r.Validate() == nil }
