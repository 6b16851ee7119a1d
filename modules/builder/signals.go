package builder

import (
	"strconv"

	"github.com/dmitrymomot/qrstudio/pkg/payload"
	"github.com/dmitrymomot/qrstudio/pkg/qrcode"
)

// signals mirrors the datastar signal tree the editor page maintains. Every
// input binds to one signal; the page posts the whole tree on each change
// and the server picks out what the selected payload type understands.
type signals struct {
	Type string `json:"type"`

	// Shared free-text field (text, url, phone number, email address, sms number).
	Content string `json:"content"`

	// Email and SMS extras.
	Subject string `json:"subject"`
	Body    string `json:"body"`

	// WiFi network fields.
	SSID       string `json:"ssid"`
	Password   string `json:"password"`
	Encryption string `json:"encryption"`
	Hidden     bool   `json:"hidden"`

	// Contact card fields.
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Org       string `json:"org"`
	Title     string `json:"title"`
	HomePhone string `json:"home_phone"`
	Mobile    string `json:"mobile"`
	WorkPhone string `json:"work_phone"`
	HomeFax   string `json:"home_fax"`
	WorkFax   string `json:"work_fax"`
	Email     string `json:"email"`
	Website   string `json:"website"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
	Note      string `json:"note"`

	// Render options.
	Foreground string `json:"fg"`
	Background string `json:"bg"`
	Level      string `json:"level"`
	Margin     int    `json:"margin"`
	Width      int    `json:"width"`
}

// fields flattens the payload-related signals into field updates. Fields a
// payload type does not understand are dropped by Record.Apply, so the full
// set is always safe to send.
func (s signals) fields() map[payload.Field]string {
	return map[payload.Field]string{
		payload.FieldContent:    s.Content,
		payload.FieldSubject:    s.Subject,
		payload.FieldBody:       s.Body,
		payload.FieldSSID:       s.SSID,
		payload.FieldPassword:   s.Password,
		payload.FieldEncryption: s.Encryption,
		payload.FieldHidden:     strconv.FormatBool(s.Hidden),
		payload.FieldFirstName:  s.FirstName,
		payload.FieldLastName:   s.LastName,
		payload.FieldOrg:        s.Org,
		payload.FieldTitle:      s.Title,
		payload.FieldHomePhone:  s.HomePhone,
		payload.FieldMobile:     s.Mobile,
		payload.FieldWorkPhone:  s.WorkPhone,
		payload.FieldHomeFax:    s.HomeFax,
		payload.FieldWorkFax:    s.WorkFax,
		payload.FieldEmail:      s.Email,
		payload.FieldWebsite:    s.Website,
		payload.FieldStreet:     s.Street,
		payload.FieldCity:       s.City,
		payload.FieldState:      s.State,
		payload.FieldZip:        s.Zip,
		payload.FieldCountry:    s.Country,
		payload.FieldNote:       s.Note,
	}
}

// renderOptions maps the option signals onto qrcode.Options, falling back
// to defaults for unset values.
func (s signals) renderOptions() qrcode.Options {
	opts := qrcode.DefaultOptions()
	if s.Foreground != "" {
		opts.Foreground = s.Foreground
	}
	if s.Background != "" {
		opts.Background = s.Background
	}
	if s.Level != "" {
		opts.Level = qrcode.Level(s.Level)
	}
	if s.Margin > 0 {
		opts.Margin = s.Margin
	}
	if s.Width > 0 {
		opts.Width = s.Width
	}
	return opts
}
