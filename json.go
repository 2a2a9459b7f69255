package qrcontent

import (
	"encoding/json"
	"fmt"

	"braces.dev/errtrace"
)

type contentData struct {
	Kind Kind            `json:"kind"`
	Data json.RawMessage `json:"data,omitempty"`
}

// ToJSON wraps c into a kind-tagged JSON envelope:
//
//	{"kind":"phone","data":{"phone":"+15551234567"}}
//
// A nil content is encoded as null.
func ToJSON(c Content) ([]byte, error) {
	if c == nil {
		return errtrace.Wrap2(json.Marshal(nil))
	}
	data, err := json.Marshal(c)
	if err != nil {
		return nil, errtrace.Wrap(fmt.Errorf("marshal %s content: %w", c.Kind(), err))
	}
	return errtrace.Wrap2(json.Marshal(contentData{Kind: c.Kind(), Data: data}))
}

// FromJSON parses a JSON envelope produced by [ToJSON].
// The returned content is a pointer to the record type of the envelope kind.
func FromJSON[T ~string | ~[]byte](data T) (Content, error) {
	var cd *contentData
	if err := json.Unmarshal([]byte(data), &cd); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if cd == nil {
		return nil, errtrace.Wrap(ErrNotContentJSON)
	}
	if !cd.Kind.IsValid() {
		return nil, errtrace.Wrap(newUnsupportedKindErr(cd.Kind))
	}

	c := New(cd.Kind)
	if len(cd.Data) > 0 {
		if err := json.Unmarshal(cd.Data, c); err != nil {
			return nil, errtrace.Wrap(fmt.Errorf("unmarshal %s content: %w", cd.Kind, err))
		}
	}
	return c, nil
}
