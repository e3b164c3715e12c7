package leads

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/leandrocorretor/realty/pkg/i18n"
	"github.com/leandrocorretor/realty/pkg/validation"
)

const (
	minPhoneDigits = 10
	maxPhoneDigits = 13
	// smsMessageLimit keeps the broker notification within a couple of SMS segments
	smsMessageLimit = 240
)

// Lead is a contact request sent from the storefront
type Lead struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Phone      string     `json:"phone"`
	Email      string     `json:"email,omitempty"`
	Message    string     `json:"message"`
	PropertyID *uuid.UUID `json:"property_id,omitempty"`
	Language   string     `json:"language"`
	Notified   bool       `json:"notified"`
	CreatedAt  time.Time  `json:"created_at"`
}

// LeadInput is the contact form payload
type LeadInput struct {
	Name       string `json:"name" form:"name" validate:"required,notblank,max=120"`
	Phone      string `json:"phone" form:"phone" validate:"required,max=30"`
	Email      string `json:"email" form:"email" validate:"omitempty,email,max=254"`
	Message    string `json:"message" form:"message" validate:"required,notblank,max=2000"`
	PropertyID string `json:"property_id" form:"property_id" validate:"omitempty,uuid"`
}

// Normalize trims every field
func (in *LeadInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Message = strings.TrimSpace(in.Message)
	in.PropertyID = strings.TrimSpace(in.PropertyID)
}

var fieldMessages = map[string]string{
	"name":    "lead.name.required",
	"phone":   "lead.phone.invalid",
	"email":   "lead.email.invalid",
	"message": "lead.message.required",
}

// Validate normalizes the input and returns per-field messages in lang, or nil when valid
func (in *LeadInput) Validate(lang string) map[string]string {
	in.Normalize()

	fields := map[string]string{}
	if err := validation.ValidateStruct(in); err != nil {
		verr, ok := err.(*validation.ValidationError)
		if !ok {
			return map[string]string{"_": err.Error()}
		}
		for field, msg := range verr.Errors {
			if key, ok := fieldMessages[field]; ok {
				fields[field] = i18n.Translate(key, lang)
			} else {
				fields[field] = msg
			}
		}
	}

	if _, failed := fields["phone"]; !failed && in.Phone != "" {
		if n := len(PhoneDigits(in.Phone)); n < minPhoneDigits || n > maxPhoneDigits {
			fields["phone"] = i18n.Translate("lead.phone.invalid", lang)
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

// PhoneDigits strips everything but digits from a phone number
func PhoneDigits(phone string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
}

// SMSBody renders the broker notification in the lead's language.
// propertyTitle is appended on a second line when the lead came from a listing.
func SMSBody(l *Lead, propertyTitle string) string {
	body := i18n.Translate("lead.sms", l.Language, l.Name, l.Phone, truncate(l.Message, smsMessageLimit))
	if propertyTitle != "" {
		body += "\n" + i18n.Translate("lead.sms.property", l.Language, propertyTitle)
	}
	return body
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return strings.TrimSpace(string(r[:limit])) + "…"
}
