package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"travel-agency/internal/booking"
	"travel-agency/internal/catalog"
	"travel-agency/internal/dto/request"
	"travel-agency/internal/dto/response"
	"travel-agency/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultSessionTTL = 30 * time.Minute

type BookingService interface {
	Start(ctx context.Context, req *request.StartBookingRequest) (*response.BookingSessionResponse, error)
	Get(ctx context.Context, sessionID string) (*response.BookingSessionResponse, error)
	Patch(ctx context.Context, sessionID string, patch booking.Patch) (*response.BookingSessionResponse, error)
	Next(ctx context.Context, sessionID string) (*response.BookingSessionResponse, error)
	Previous(ctx context.Context, sessionID string) (*response.BookingSessionResponse, error)
	Submit(ctx context.Context, sessionID string) (*response.BookingSessionResponse, error)
	ConfirmationPDF(ctx context.Context, sessionID string) ([]byte, string, error)
	Discard(ctx context.Context, sessionID string) error
}

// session owns one wizard. Its mutex serialises every step of that wizard,
// including a submission in flight.
type session struct {
	id       uuid.UUID
	mu       sync.Mutex
	wizard   *booking.Wizard
	lastSeen time.Time
}

type bookingService struct {
	store     *catalog.Store
	submitter booking.Submitter
	ttl       time.Duration
	now       func() time.Time
	log       *zap.Logger

	mu       sync.Mutex
	sessions map[uuid.UUID]*session
}

func NewBookingService(store *catalog.Store, submitter booking.Submitter, ttl time.Duration, log *zap.Logger) BookingService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	if submitter == nil {
		submitter = booking.LocalSubmitter{}
	}
	return &bookingService{
		store:     store,
		submitter: submitter,
		ttl:       ttl,
		now:       time.Now,
		log:       log.With(zap.String("service", "booking")),
		sessions:  make(map[uuid.UUID]*session),
	}
}

func (s *bookingService) Start(ctx context.Context, req *request.StartBookingRequest) (*response.BookingSessionResponse, error) {
	pkg, ok := s.store.Package(req.PackageID)
	if !ok {
		return nil, fmt.Errorf("package %d: %w", req.PackageID, ErrPackageNotFound)
	}

	now := s.now()
	sess := &session{
		id:       utils.GenerateUUID(),
		wizard:   booking.NewWizard(pkg),
		lastSeen: now,
	}

	res := s.toResponse(sess)

	s.mu.Lock()
	s.sweepLocked(now)
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	s.log.Info("Booking session started",
		zap.String("session_id", sess.id.String()),
		zap.Int("package_id", pkg.ID),
	)
	return res, nil
}

func (s *bookingService) Get(ctx context.Context, sessionID string) (*response.BookingSessionResponse, error) {
	return s.with(sessionID, func(*session) error { return nil })
}

func (s *bookingService) Patch(ctx context.Context, sessionID string, patch booking.Patch) (*response.BookingSessionResponse, error) {
	if err := utils.Validate(patch); err != nil {
		return nil, err
	}
	return s.with(sessionID, func(sess *session) error {
		return sess.wizard.Apply(patch)
	})
}

func (s *bookingService) Next(ctx context.Context, sessionID string) (*response.BookingSessionResponse, error) {
	return s.with(sessionID, func(sess *session) error {
		if sess.wizard.Step() == booking.StepSubmitted {
			return booking.ErrWizardClosed
		}
		sess.wizard.Next()
		return nil
	})
}

func (s *bookingService) Previous(ctx context.Context, sessionID string) (*response.BookingSessionResponse, error) {
	return s.with(sessionID, func(sess *session) error {
		if sess.wizard.Step() == booking.StepSubmitted {
			return booking.ErrWizardClosed
		}
		sess.wizard.Previous()
		return nil
	})
}

func (s *bookingService) Submit(ctx context.Context, sessionID string) (*response.BookingSessionResponse, error) {
	return s.with(sessionID, func(sess *session) error {
		confirmation, err := sess.wizard.Submit(ctx, s.submitter)
		if err != nil {
			s.log.Warn("Booking submission failed",
				zap.String("session_id", sess.id.String()),
				zap.Error(err),
			)
			return err
		}

		s.log.Info("Booking submitted",
			zap.String("session_id", sess.id.String()),
			zap.String("reference", confirmation.Reference),
			zap.Float64("total", confirmation.Price.Total),
		)
		return nil
	})
}

// ConfirmationPDF renders the confirmation of a submitted session and
// returns it with the booking reference.
func (s *bookingService) ConfirmationPDF(ctx context.Context, sessionID string) ([]byte, string, error) {
	var confirmation *booking.Confirmation
	if _, err := s.with(sessionID, func(sess *session) error {
		confirmation = sess.wizard.Confirmation()
		return nil
	}); err != nil {
		return nil, "", err
	}
	if confirmation == nil {
		return nil, "", ErrNotSubmitted
	}

	doc, err := booking.ConfirmationPDF(*confirmation)
	if err != nil {
		s.log.Error("Failed to render confirmation", zap.Error(err), zap.String("reference", confirmation.Reference))
		return nil, "", fmt.Errorf("render confirmation: %w", err)
	}
	return doc, confirmation.Reference, nil
}

// Discard drops the session and its draft.
func (s *bookingService) Discard(ctx context.Context, sessionID string) error {
	id, err := utils.ParseUUID(sessionID)
	if err != nil {
		return ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// with runs fn on a live session under its lock and returns the resulting
// state. The state is returned alongside fn's error so callers can show
// where the wizard stands after a failed step.
func (s *bookingService) with(sessionID string, fn func(*session) error) (*response.BookingSessionResponse, error) {
	sess, err := s.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	fnErr := fn(sess)
	sess.lastSeen = s.now()
	return s.toResponse(sess), fnErr
}

func (s *bookingService) lookup(sessionID string) (*session, error) {
	id, err := utils.ParseUUID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session %q: %w", sessionID, ErrSessionNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked(s.now())

	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, ErrSessionNotFound)
	}
	return sess, nil
}

// sweepLocked drops sessions idle for longer than the TTL. A session whose
// lock is held is in use and is kept.
func (s *bookingService) sweepLocked(now time.Time) {
	for id, sess := range s.sessions {
		if !sess.mu.TryLock() {
			continue
		}
		expired := now.Sub(sess.lastSeen) > s.ttl
		sess.mu.Unlock()
		if expired {
			delete(s.sessions, id)
			s.log.Debug("Booking session expired", zap.String("session_id", id.String()))
		}
	}
}

// toResponse must be called with sess.mu held or before sess is shared.
func (s *bookingService) toResponse(sess *session) *response.BookingSessionResponse {
	w := sess.wizard
	return &response.BookingSessionResponse{
		ID:           sess.id.String(),
		Step:         w.Step().String(),
		StepNumber:   int(w.Step()),
		Package:      response.BookingPackageFrom(w.Package()),
		Draft:        w.Draft(),
		Price:        w.Price(),
		Confirmation: w.Confirmation(),
		ExpiresAt:    sess.lastSeen.Add(s.ttl),
	}
}
