package booking

import "strings"

type EmergencyContact struct {
	Name  string `json:"name" validate:"max=100"`
	Phone string `json:"phone" validate:"omitempty,min=6,max=20"`
}

// Draft holds what the traveller has entered so far. It is never persisted.
type Draft struct {
	FirstName        string           `json:"firstName" validate:"required,max=50"`
	LastName         string           `json:"lastName" validate:"required,max=50"`
	Email            string           `json:"email" validate:"required,email"`
	Phone            string           `json:"phone" validate:"required,min=6,max=20"`
	Travelers        int              `json:"travelers" validate:"min=1,max=20"`
	DepartureDate    string           `json:"departureDate" validate:"required,datetime=2006-01-02"`
	SpecialRequests  string           `json:"specialRequests" validate:"max=1000"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
	AgreeToTerms     bool             `json:"agreeToTerms"`
	Newsletter       bool             `json:"newsletter"`
}

// NewDraft returns the state a fresh booking form starts with.
func NewDraft() Draft {
	return Draft{Travelers: 1}
}

func (d Draft) FullName() string {
	return strings.TrimSpace(d.FirstName + " " + d.LastName)
}

// Patch carries the fields a single form edit changes. Nil fields are left
// as they are.
type Patch struct {
	FirstName        *string           `json:"firstName,omitempty" validate:"omitempty,max=50"`
	LastName         *string           `json:"lastName,omitempty" validate:"omitempty,max=50"`
	Email            *string           `json:"email,omitempty"`
	Phone            *string           `json:"phone,omitempty" validate:"omitempty,max=20"`
	Travelers        *int              `json:"travelers,omitempty" validate:"omitempty,min=1,max=20"`
	DepartureDate    *string           `json:"departureDate,omitempty"`
	SpecialRequests  *string           `json:"specialRequests,omitempty" validate:"omitempty,max=1000"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty" validate:"-"`
	AgreeToTerms     *bool             `json:"agreeToTerms,omitempty"`
	Newsletter       *bool             `json:"newsletter,omitempty"`
}

func (p Patch) apply(d *Draft) {
	if p.FirstName != nil {
		d.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		d.LastName = *p.LastName
	}
	if p.Email != nil {
		d.Email = *p.Email
	}
	if p.Phone != nil {
		d.Phone = *p.Phone
	}
	if p.Travelers != nil {
		d.Travelers = *p.Travelers
	}
	if p.DepartureDate != nil {
		d.DepartureDate = *p.DepartureDate
	}
	if p.SpecialRequests != nil {
		d.SpecialRequests = *p.SpecialRequests
	}
	if p.EmergencyContact != nil {
		d.EmergencyContact = *p.EmergencyContact
	}
	if p.AgreeToTerms != nil {
		d.AgreeToTerms = *p.AgreeToTerms
	}
	if p.Newsletter != nil {
		d.Newsletter = *p.Newsletter
	}
}
