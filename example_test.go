package qrcontent_test

import (
	"fmt"

	"github.com/ghettovoice/qrcontent"
)

func ExampleEncode() {
	fmt.Println(qrcontent.Encode(qrcontent.WiFi{
		SSID:       "HomeNet",
		Password:   "secret1",
		Encryption: qrcontent.EncryptionWPA,
	}))
	fmt.Println(qrcontent.Encode(qrcontent.SMS{Phone: "+15551234567", Message: "hi"}))
	fmt.Println(qrcontent.Encode(qrcontent.Phone{Number: "+15551234567"}))
	fmt.Println(qrcontent.Encode(qrcontent.Email{To: "jane@acme.test", Subject: "Hello World"}))
	// Output:
	// WIFI:T:WPA;S:HomeNet;P:secret1;;
	// SMSTO:+15551234567:hi
	// tel:+15551234567
	// mailto:jane@acme.test?subject=Hello%20World&body=
}

func ExampleContact_Render() {
	fmt.Println(qrcontent.Contact{
		FirstName:    "Jane",
		LastName:     "Doe",
		Organization: "Acme",
		City:         "Springfield",
	}.Render(nil))
	// Output:
	// BEGIN:VCARD
	// VERSION:3.0
	// FN:Jane Doe
	// N:Doe;Jane;;;
	// ORG:Acme
	// ADR:;;;Springfield;;;
	// END:VCARD
}

func ExampleWiFi_Render_escaped() {
	rec := qrcontent.WiFi{SSID: "Bob's;Net", Password: "a:b", Encryption: qrcontent.EncryptionWPA, Hidden: true}
	fmt.Println(rec.Render(nil))
	fmt.Println(rec.Render(&qrcontent.RenderOptions{Escape: true}))
	// Output:
	// WIFI:T:WPA;S:Bob's;Net;P:a:b;H:true;
	// WIFI:T:WPA;S:Bob's\;Net;P:a\:b;H:true;
}

func ExampleKind_DisplayName() {
	for _, k := range qrcontent.Kinds() {
		fmt.Printf("%s: %s\n", k, k.DisplayName())
	}
	// Output:
	// url: URL/Link
	// text: Plain Text
	// wifi: WiFi Network
	// vcard: Contact Card
	// email: Email
	// sms: SMS Message
	// phone: Phone Number
	// currentPage: Current Page
}
