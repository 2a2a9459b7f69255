package qrcontent

//go:generate go tool errtrace -w .

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/qrcontent/internal/errorutil"
	"github.com/ghettovoice/qrcontent/internal/util"
)

// Kind is the closed set of payload types.
type Kind string

const (
	KindURL         Kind = "url"
	KindText        Kind = "text"
	KindWiFi        Kind = "wifi"
	KindVCard       Kind = "vcard"
	KindEmail       Kind = "email"
	KindSMS         Kind = "sms"
	KindPhone       Kind = "phone"
	KindCurrentPage Kind = "currentPage"
)

// Kinds returns all supported kinds in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindURL,
		KindText,
		KindWiFi,
		KindVCard,
		KindEmail,
		KindSMS,
		KindPhone,
		KindCurrentPage,
	}
}

// DisplayName returns the human-readable label of the kind.
// It panics with [ErrUnsupportedKind] when k is outside the closed set.
func (k Kind) DisplayName() string {
	switch k {
	case KindURL:
		return "URL/Link"
	case KindText:
		return "Plain Text"
	case KindWiFi:
		return "WiFi Network"
	case KindVCard:
		return "Contact Card"
	case KindEmail:
		return "Email"
	case KindSMS:
		return "SMS Message"
	case KindPhone:
		return "Phone Number"
	case KindCurrentPage:
		return "Current Page"
	default:
		panic(newUnsupportedKindErr(k))
	}
}

// DisplayName returns the human-readable label of the kind k.
// See [Kind.DisplayName].
func DisplayName(k Kind) string { return k.DisplayName() }

// IsValid checks whether k belongs to the closed set.
func (k Kind) IsValid() bool {
	switch k {
	case KindURL, KindText, KindWiFi, KindVCard, KindEmail, KindSMS, KindPhone, KindCurrentPage:
		return true
	default:
		return false
	}
}

func (k Kind) String() string { return string(k) }

// Equal compares kinds case-insensitively.
func (k Kind) Equal(val any) bool {
	var other Kind
	switch v := val.(type) {
	case Kind:
		other = v
	case *Kind:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return util.EqFold(k, other)
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
// The kind name is matched case-insensitively, unknown names return [ErrUnsupportedKind].
func (k *Kind) UnmarshalText(text []byte) error {
	for _, kind := range Kinds() {
		if util.EqFold(kind, string(text)) {
			*k = kind
			return nil
		}
	}
	*k = ""
	return errtrace.Wrap(newUnsupportedKindErr(Kind(text)))
}

func newUnsupportedKindErr(k Kind) error {
	return errorutil.NewWrapperError(ErrUnsupportedKind, "%q", string(k)) //errtrace:skip
}
