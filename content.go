package qrcontent

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/qrcontent/internal/errorutil"
	"github.com/ghettovoice/qrcontent/internal/types"
	"github.com/ghettovoice/qrcontent/internal/util"
)

const (
	// ErrUnsupportedKind marks a kind outside the closed set.
	ErrUnsupportedKind errorutil.Error = "unsupported content kind"
	// ErrInvalidArgument is returned by Validate methods of the records.
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrNotContentJSON is returned by [FromJSON] when the input holds no envelope.
	ErrNotContentJSON errorutil.Error = "not a content JSON"
)

// RenderOptions contains options for rendering payloads.
type RenderOptions = types.RenderOptions

// Content is a payload record that renders to a QR code text payload.
// The set of implementations is closed: [WiFi], [Contact], [Email], [SMS], [Phone],
// [Text], [URL] and [CurrentPage].
//
//sumtype:decl
type Content interface {
	types.Renderer
	types.ValidFlag
	types.Validatable
	fmt.Stringer
	// Kind returns the payload kind of the record.
	Kind() Kind

	content()
}

// Encode returns the canonical payload of c rendered with default options.
// A nil content yields an empty string.
func Encode(c Content) string {
	if c == nil {
		return ""
	}
	return c.Render(nil)
}

// EncodeTo writes the payload of c to w.
// Only errors of w are returned.
func EncodeTo(w io.Writer, c Content, opts *RenderOptions) (int, error) {
	if c == nil {
		return 0, nil
	}
	return errtrace.Wrap2(c.RenderTo(w, opts))
}

// New returns a pointer to the zero record of the kind k, ready to be decoded into.
// It panics with [ErrUnsupportedKind] when k is outside the closed set.
func New(k Kind) Content {
	switch k {
	case KindURL:
		return &URL{}
	case KindText:
		return &Text{}
	case KindWiFi:
		return &WiFi{}
	case KindVCard:
		return &Contact{}
	case KindEmail:
		return &Email{}
	case KindSMS:
		return &SMS{}
	case KindPhone:
		return &Phone{}
	case KindCurrentPage:
		return &CurrentPage{}
	default:
		panic(newUnsupportedKindErr(k))
	}
}

func render(c types.Renderer, opts *RenderOptions) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	c.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// format implements the shared part of fmt.Formatter for records.
// raw must be the record converted to a type without methods.
func format(f fmt.State, verb rune, c Content, raw any) {
	switch verb {
	case 's':
		if f.Flag('+') {
			c.RenderTo(f, &RenderOptions{Escape: true}) //nolint:errcheck
			return
		}
		c.RenderTo(f, nil) //nolint:errcheck
	case 'q':
		fmt.Fprint(f, strconv.Quote(c.Render(nil)))
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), raw)
	}
}

func validate(k Kind, errs ...error) error {
	return errtrace.Wrap(errorutil.JoinPrefix("invalid "+k.DisplayName()+" record:", errs...))
}

func requireField(name, val string) error {
	if val == "" {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("empty %s", name))
	}
	return nil
}
