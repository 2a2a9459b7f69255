package qrcontent_test

import (
	"testing"

	"github.com/ghettovoice/qrcontent"
)

func TestPassThrough_Render(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rec  qrcontent.Content
		want string
	}{
		{"text", qrcontent.Text{Value: "Hello; World: \n ok"}, "Hello; World: \n ok"},
		{"url", qrcontent.URL{Value: "https://example.test/a b?c=d"}, "https://example.test/a b?c=d"},
		{"current page", qrcontent.CurrentPage{Value: "https://intranet.test/sites/home"}, "https://intranet.test/sites/home"},
		{"empty text", qrcontent.Text{}, ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.rec.Render(nil); got != c.want {
				t.Errorf("rec.Render(nil) = %q, want %q", got, c.want)
			}
			if got := c.rec.Render(&qrcontent.RenderOptions{Escape: true}); got != c.want {
				t.Errorf("rec.Render(escape) = %q, want %q", got, c.want)
			}
			if got := c.rec.String(); got != c.want {
				t.Errorf("rec.String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestPassThrough_IsValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rec  qrcontent.Content
		want bool
	}{
		{"text", qrcontent.Text{Value: "x"}, true},
		{"empty text", qrcontent.Text{}, false},
		{"url", qrcontent.URL{Value: "https://x.test"}, true},
		{"empty url", qrcontent.URL{}, false},
		{"page", qrcontent.CurrentPage{Value: "https://x.test"}, true},
		{"empty page", qrcontent.CurrentPage{}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.rec.IsValid(); got != c.want {
				t.Errorf("rec.IsValid() = %v, want %v", got, c.want)
			}
		})
	}
}
