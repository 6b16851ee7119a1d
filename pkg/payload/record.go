package payload

// Field names a single editable form field. Which fields are recognized
// depends on the current payload type.
type Field string

const (
	FieldContent    Field = "content"
	FieldSubject    Field = "subject"
	FieldBody       Field = "body"
	FieldSSID       Field = "ssid"
	FieldPassword   Field = "password"
	FieldEncryption Field = "encryption"
	FieldHidden     Field = "hidden"
	FieldFirstName  Field = "first_name"
	FieldLastName   Field = "last_name"
	FieldOrg        Field = "org"
	FieldTitle      Field = "title"
	FieldHomePhone  Field = "home_phone"
	FieldMobile     Field = "mobile"
	FieldWorkPhone  Field = "work_phone"
	FieldHomeFax    Field = "home_fax"
	FieldWorkFax    Field = "work_fax"
	FieldEmail      Field = "email"
	FieldWebsite    Field = "website"
	FieldStreet     Field = "street"
	FieldCity       Field = "city"
	FieldState      Field = "state"
	FieldZip        Field = "zip"
	FieldCountry    Field = "country"
	FieldNote       Field = "note"
)

// Record is the immutable form state: the currently selected payload variant
// with its fields. Mutating methods return a new Record and leave the
// receiver untouched, so a Record can be snapshotted without locking.
type Record struct {
	p Payload
}

// NewRecord returns the default state: an empty text payload.
func NewRecord() Record { return Record{p: Text{}} }

// Payload returns the current payload variant. A zero Record behaves as an
// empty text payload.
func (r Record) Payload() Payload {
	if r.p == nil {
		return Text{}
	}
	return r.p
}

func (r Record) Kind() Type      { return r.Payload().Kind() }
func (r Record) Encode() string  { return r.Payload().Encode() }
func (r Record) Content() string { return r.Payload().Content() }

// WithType switches the payload type. Previously entered fields are
// discarded: the new payload starts from its zero value. Switching to the
// current type or to an unknown type returns the record unchanged.
func (r Record) WithType(t Type) Record {
	if t == r.Kind() {
		return r
	}
	switch t {
	case TypeText:
		return Record{p: Text{}}
	case TypeURL:
		return Record{p: URL{}}
	case TypeContact:
		return Record{p: Contact{}}
	case TypeWiFi:
		return Record{p: WiFi{}}
	case TypeEmail:
		return Record{p: Email{}}
	case TypePhone:
		return Record{p: Phone{}}
	case TypeSMS:
		return Record{p: SMS{}}
	}
	return r
}

// Apply sets a single field and returns the updated record. Fields the
// current payload type does not recognize leave the record unchanged, so
// stale form inputs from a previous type cannot leak into the state.
func (r Record) Apply(f Field, v string) Record {
	switch p := r.Payload().(type) {
	case Text:
		if f == FieldContent {
			p.Text = v
			return Record{p: p}
		}
	case URL:
		if f == FieldContent {
			p.URL = v
			return Record{p: p}
		}
	case Email:
		switch f {
		case FieldContent:
			p.Address = v
		case FieldSubject:
			p.Subject = v
		case FieldBody:
			p.Body = v
		default:
			return r
		}
		return Record{p: p}
	case Phone:
		if f == FieldContent {
			p.Number = v
			return Record{p: p}
		}
	case SMS:
		switch f {
		case FieldContent:
			p.Number = v
		case FieldBody:
			p.Body = v
		default:
			return r
		}
		return Record{p: p}
	case WiFi:
		switch f {
		case FieldSSID:
			p.SSID = v
		case FieldPassword:
			p.Password = v
		case FieldEncryption:
			p.Encryption = v
		case FieldHidden:
			p.Hidden = v == "true"
		default:
			return r
		}
		return Record{p: p}
	case Contact:
		switch f {
		case FieldFirstName:
			p.FirstName = v
		case FieldLastName:
			p.LastName = v
		case FieldOrg:
			p.Org = v
		case FieldTitle:
			p.Title = v
		case FieldHomePhone:
			p.HomePhone = v
		case FieldMobile:
			p.Mobile = v
		case FieldWorkPhone:
			p.WorkPhone = v
		case FieldHomeFax:
			p.HomeFax = v
		case FieldWorkFax:
			p.WorkFax = v
		case FieldEmail:
			p.Email = v
		case FieldWebsite:
			p.Website = v
		case FieldStreet:
			p.Street = v
		case FieldCity:
			p.City = v
		case FieldState:
			p.State = v
		case FieldZip:
			p.Zip = v
		case FieldCountry:
			p.Country = v
		case FieldNote:
			p.Note = v
		default:
			return r
		}
		return Record{p: p}
	case SimpleContact:
		switch f {
		case FieldContent:
			p.Name = v
		case FieldOrg:
			p.Org = v
		case FieldHomePhone:
			p.Phone = v
		case FieldEmail:
			p.Email = v
		default:
			return r
		}
		return Record{p: p}
	}
	return r
}
