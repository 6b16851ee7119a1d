package payload

import "fmt"

// Type discriminates the payload variants the builder can encode.
type Type string

const (
	TypeText    Type = "text"
	TypeURL     Type = "url"
	TypeContact Type = "contact"
	TypeWiFi    Type = "wifi"
	TypeEmail   Type = "email"
	TypePhone   Type = "phone"
	TypeSMS     Type = "sms"
)

// Valid reports whether t is one of the recognized payload types.
func (t Type) Valid() bool {
	switch t {
	case TypeText, TypeURL, TypeContact, TypeWiFi, TypeEmail, TypePhone, TypeSMS:
		return true
	}
	return false
}

// Payload is a single encodable payload variant.
//
// Encode returns the exact string handed to the QR encoder. Content returns
// the authoritative value shown to the user: the primary field for
// text/url/email/phone/sms, and the synthesized encoding mirrored back for
// contact/wifi. Encoding never fails.
type Payload interface {
	Kind() Type
	Encode() string
	Content() string
}

// Text encodes free-form text verbatim.
type Text struct {
	Text string
}

func (p Text) Kind() Type      { return TypeText }
func (p Text) Encode() string  { return p.Text }
func (p Text) Content() string { return p.Text }

// URL encodes a link verbatim. No validation is applied: malformed URLs
// still encode.
type URL struct {
	URL string
}

func (p URL) Kind() Type      { return TypeURL }
func (p URL) Encode() string  { return p.URL }
func (p URL) Content() string { return p.URL }

// Email encodes a mailto link with optional prefilled subject and body.
// Subject and body are passed through unescaped, see the package doc.
type Email struct {
	Address string
	Subject string
	Body    string
}

func (p Email) Kind() Type { return TypeEmail }

func (p Email) Encode() string {
	return "mailto:" + p.Address + "?subject=" + p.Subject + "&body=" + p.Body
}

func (p Email) Content() string { return p.Address }

// Phone encodes a tel link.
type Phone struct {
	Number string
}

func (p Phone) Kind() Type      { return TypePhone }
func (p Phone) Encode() string  { return "tel:" + p.Number }
func (p Phone) Content() string { return p.Number }

// SMS encodes an sms link with an optional prefilled message body.
type SMS struct {
	Number string
	Body   string
}

func (p SMS) Kind() Type      { return TypeSMS }
func (p SMS) Encode() string  { return "sms:" + p.Number + "?body=" + p.Body }
func (p SMS) Content() string { return p.Number }

// DefaultWiFiEncryption is used when the encryption field is left unset.
const DefaultWiFiEncryption = "WPA"

// WiFi encodes wireless network credentials in the WIFI: URI scheme
// understood by phone cameras.
type WiFi struct {
	SSID       string
	Password   string
	Encryption string // WPA, WEP or nopass; empty defaults to WPA
	Hidden     bool
}

func (p WiFi) Kind() Type { return TypeWiFi }

func (p WiFi) Encode() string {
	enc := p.Encryption
	if enc == "" {
		enc = DefaultWiFiEncryption
	}
	return fmt.Sprintf("WIFI:T:%s;S:%s;P:%s;H:%t;;", enc, p.SSID, p.Password, p.Hidden)
}

func (p WiFi) Content() string { return p.Encode() }
