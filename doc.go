// Package qrcontent renders typed contact and configuration records into the canonical
// text payloads that QR code scanners understand.
//
// # Overview
//
// Every supported payload type is a plain value record implementing [Content]:
//
//   - [WiFi]: WiFi network credentials rendered as a WiFi QR config string
//     (WIFI:T:WPA;S:HomeNet;P:secret;;).
//   - [Contact]: contact card rendered as a vCard 3.0 document.
//   - [Email]: mailto: URI with percent-encoded subject and body.
//   - [SMS]: SMSTO: intent.
//   - [Phone]: tel: URI.
//   - [Text], [URL], [CurrentPage]: pass-through payloads.
//
// The closed set of payload types is described by [Kind]; [Kind.DisplayName] returns the
// human-readable label of each kind.
//
// # Encoding
//
//	payload := qrcontent.Encode(qrcontent.WiFi{
//	    SSID:       "HomeNet",
//	    Password:   "secret1",
//	    Encryption: qrcontent.EncryptionWPA,
//	})
//	// WIFI:T:WPA;S:HomeNet;P:secret1;;
//
// Records are never validated by the encoder: whatever the record holds is rendered as is,
// and rendering never fails unless the destination writer does (see [EncodeTo]).
// Callers that want to check the required-field conventions before encoding can use
// the IsValid and Validate methods of each record.
//
// # Escaping
//
// The WiFi and SMSTO conventions reserve a few characters (";", ":", ",", "\" and '"').
// By default values are emitted verbatim, byte-for-byte compatible with codes generated earlier.
// Passing [RenderOptions] with Escape set to Render, RenderTo or [EncodeTo] backslash-escapes
// those characters.
//
// # Serialization
//
// [ToJSON] and [FromJSON] wrap records into a kind-tagged JSON envelope:
//
//	{"kind":"sms","data":{"phone":"+15551234567","message":"hi"}}
//
// [NewHistoryEntry] builds the metadata record that persistence layers store next to
// a generated payload.
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use.
package qrcontent
