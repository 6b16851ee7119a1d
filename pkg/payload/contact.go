package payload

import "strings"

// Contact encodes a full vCard 3.0 contact card with personal, professional,
// phone and address sections.
type Contact struct {
	FirstName string
	LastName  string
	Org       string
	Title     string
	HomePhone string
	Mobile    string
	WorkPhone string
	HomeFax   string
	WorkFax   string
	Email     string
	Website   string
	Street    string
	City      string
	State     string
	Zip       string
	Country   string
	Note      string
}

func (p Contact) Kind() Type { return TypeContact }

// FullName is the trimmed concatenation of first and last name. Both empty
// yields an empty string.
func (p Contact) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Encode builds the vCard with a fixed line order. Lines for absent fields
// keep their empty slots rather than being omitted, so two cards with the
// same shape always diff line by line.
func (p Contact) Encode() string {
	var b strings.Builder
	b.WriteString("BEGIN:VCARD\nVERSION:3.0\n")
	b.WriteString("FN:" + p.FullName() + "\n")
	b.WriteString("N:" + p.LastName + ";" + p.FirstName + ";;;\n")
	b.WriteString("ORG:" + p.Org + "\n")
	b.WriteString("TITLE:" + p.Title + "\n")
	b.WriteString("TEL;TYPE=HOME,VOICE:" + p.HomePhone + "\n")
	b.WriteString("TEL;TYPE=CELL,VOICE:" + p.Mobile + "\n")
	b.WriteString("TEL;TYPE=WORK,VOICE:" + p.WorkPhone + "\n")
	b.WriteString("TEL;TYPE=HOME,FAX:" + p.HomeFax + "\n")
	b.WriteString("TEL;TYPE=WORK,FAX:" + p.WorkFax + "\n")
	b.WriteString("EMAIL:" + p.Email + "\n")
	b.WriteString("URL:" + p.Website + "\n")
	b.WriteString("ADR;TYPE=HOME:;;" + p.Street + ";" + p.City + ";" + p.State + ";" + p.Zip + ";" + p.Country + "\n")
	b.WriteString("NOTE:" + p.Note + "\n")
	b.WriteString("END:VCARD")
	return b.String()
}

func (p Contact) Content() string { return p.Encode() }

// SimpleContact is the reduced card variant carrying only a display name,
// organization, phone and email.
type SimpleContact struct {
	Name  string
	Org   string
	Phone string
	Email string
}

func (p SimpleContact) Kind() Type { return TypeContact }

func (p SimpleContact) Encode() string {
	var b strings.Builder
	b.WriteString("BEGIN:VCARD\nVERSION:3.0\n")
	b.WriteString("FN:" + strings.TrimSpace(p.Name) + "\n")
	b.WriteString("N:" + p.Name + ";;;;\n")
	b.WriteString("ORG:" + p.Org + "\n")
	b.WriteString("TEL:" + p.Phone + "\n")
	b.WriteString("EMAIL:" + p.Email + "\n")
	b.WriteString("END:VCARD")
	return b.String()
}

func (p SimpleContact) Content() string { return p.Encode() }
