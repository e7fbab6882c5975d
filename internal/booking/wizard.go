package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"travel-agency/internal/data/entity"
	"travel-agency/pkg/utils"
)

type Step int

const (
	StepPersonalInfo Step = iota + 1
	StepTravelDetails
	StepPaymentConfirmation
	StepSubmitted
)

func (s Step) String() string {
	switch s {
	case StepPersonalInfo:
		return "personal_info"
	case StepTravelDetails:
		return "travel_details"
	case StepPaymentConfirmation:
		return "payment_confirmation"
	case StepSubmitted:
		return "submitted"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

var (
	ErrTermsNotAccepted = errors.New("terms and conditions must be accepted")
	ErrNotAtFinalStep   = errors.New("booking can only be submitted from the payment step")
	ErrWizardClosed     = errors.New("booking already submitted")
	ErrInvalidTravelers = errors.New("invalid traveler count: must be at least 1")
	ErrSubmitFailed     = errors.New("booking submission failed, please retry")
)

// Request is what a submitter sends for a completed draft.
type Request struct {
	PackageID    int            `json:"packageId"`
	PackageTitle string         `json:"packageTitle"`
	Draft        Draft          `json:"draft"`
	Price        PriceBreakdown `json:"price"`
}

// Submitter delivers a booking request and returns its reference.
type Submitter interface {
	Submit(ctx context.Context, req Request) (string, error)
}

type Confirmation struct {
	Reference     string         `json:"reference"`
	PackageID     int            `json:"packageId"`
	PackageTitle  string         `json:"packageTitle"`
	Destination   string         `json:"destination"`
	TravelerName  string         `json:"travelerName"`
	Email         string         `json:"email"`
	DepartureDate string         `json:"departureDate"`
	Price         PriceBreakdown `json:"price"`
	SubmittedAt   time.Time      `json:"submittedAt"`
}

// Wizard is the three-step booking flow for one package. It is not safe for
// concurrent use.
type Wizard struct {
	pkg          entity.Package
	step         Step
	draft        Draft
	confirmation *Confirmation
	now          func() time.Time
}

func NewWizard(pkg entity.Package) *Wizard {
	return &Wizard{
		pkg:   pkg,
		step:  StepPersonalInfo,
		draft: NewDraft(),
		now:   time.Now,
	}
}

func (w *Wizard) Step() Step { return w.step }

func (w *Wizard) Package() entity.Package { return w.pkg }

func (w *Wizard) Draft() Draft { return w.draft }

// Confirmation is nil until the wizard has been submitted.
func (w *Wizard) Confirmation() *Confirmation { return w.confirmation }

// Price is derived from the current draft on every call.
func (w *Wizard) Price() PriceBreakdown {
	return CalculatePrice(w.pkg.Price, w.draft.Travelers)
}

// Next advances one step. It is a no-op on the payment step.
func (w *Wizard) Next() Step {
	if w.step == StepPersonalInfo || w.step == StepTravelDetails {
		w.step++
	}
	return w.step
}

// Previous goes back one step. It is a no-op on the first step.
func (w *Wizard) Previous() Step {
	if w.step == StepTravelDetails || w.step == StepPaymentConfirmation {
		w.step--
	}
	return w.step
}

// Apply merges a form edit into the draft.
func (w *Wizard) Apply(p Patch) error {
	if w.step == StepSubmitted {
		return ErrWizardClosed
	}
	if p.Travelers != nil && *p.Travelers < 1 {
		return ErrInvalidTravelers
	}
	p.apply(&w.draft)
	return nil
}

// Submit sends the draft through s. On failure the wizard stays on the
// payment step and the draft is kept for a retry; on success the draft is
// cleared and the wizard is closed for good.
func (w *Wizard) Submit(ctx context.Context, s Submitter) (*Confirmation, error) {
	switch w.step {
	case StepSubmitted:
		return nil, ErrWizardClosed
	case StepPaymentConfirmation:
	default:
		return nil, ErrNotAtFinalStep
	}

	if !w.draft.AgreeToTerms {
		return nil, ErrTermsNotAccepted
	}
	if err := utils.Validate(w.draft); err != nil {
		return nil, err
	}

	price := w.Price()
	reference, err := s.Submit(ctx, Request{
		PackageID:    w.pkg.ID,
		PackageTitle: w.pkg.Title,
		Draft:        w.draft,
		Price:        price,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	w.confirmation = &Confirmation{
		Reference:     reference,
		PackageID:     w.pkg.ID,
		PackageTitle:  w.pkg.Title,
		Destination:   w.pkg.Destination,
		TravelerName:  w.draft.FullName(),
		Email:         w.draft.Email,
		DepartureDate: w.draft.DepartureDate,
		Price:         price,
		SubmittedAt:   w.now(),
	}
	w.draft = Draft{}
	w.step = StepSubmitted

	return w.confirmation, nil
}

// LocalSubmitter accepts every request and issues a reference locally.
type LocalSubmitter struct {
	Now func() time.Time
}

func (l LocalSubmitter) Submit(context.Context, Request) (string, error) {
	now := time.Now
	if l.Now != nil {
		now = l.Now
	}
	return utils.GenerateBookingReference(now()), nil
}
