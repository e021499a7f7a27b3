package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"tessera/internal/reservations/availability"
	"tessera/internal/reservations/catalog"
	"tessera/internal/reservations/eligibility"
	"tessera/internal/reservations/events"
	reserrors "tessera/internal/reservations/errors"
	"tessera/internal/reservations/lock"
	"tessera/internal/reservations/store"
	"tessera/internal/reservations/validator"
	"tessera/pkg/config"
	apperrors "tessera/pkg/errors"
	"tessera/pkg/model"
	"tessera/pkg/sanitizer"
)

type ReservationService interface {
	Reserve(ctx context.Context, req *model.ReservationRequest) (*model.Confirmation, error)
	Availability(ctx context.Context, museum, date string) (int, error)
	Museums() []model.Museum
}

type reservationService struct {
	catalog   *catalog.Catalog
	roster    *eligibility.Roster
	store     store.Store
	locks     *lock.Table
	calc      *availability.Calculator
	validator *validator.ReservationValidator
	publisher *events.Publisher
	cfg       *config.Config

	seq atomic.Uint64
}

func NewReservationService(
	cat *catalog.Catalog,
	roster *eligibility.Roster,
	st store.Store,
	locks *lock.Table,
	calc *availability.Calculator,
	v *validator.ReservationValidator,
	publisher *events.Publisher,
	cfg *config.Config,
) ReservationService {
	return &reservationService{
		catalog:   cat,
		roster:    roster,
		store:     st,
		locks:     locks,
		calc:      calc,
		validator: v,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Reserve books tickets for a visitor on a (museum, date) slot. The
// duplicate and capacity checks and the append run under the museum's lock,
// so two concurrent requests for the same museum serialize: one fully
// commits or definitively fails before the other reads the store.
func (s *reservationService) Reserve(ctx context.Context, req *model.ReservationRequest) (*model.Confirmation, error) {
	s.sanitize(req)

	if err := s.validator.Validate(req); err != nil {
		s.cfg.Log.Warn("Reservation validation failed", "error", err)
		return nil, apperrors.Validation("Reservation validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.checkSlotExists(req.Museum, req.Date); err != nil {
		return nil, err
	}

	// Eligibility reads no shared state, so it runs before the lock: roster
	// misses never hold up the slot.
	if !s.roster.Eligible(req.VisitorName) {
		s.cfg.Log.Warn("Ineligible visitor rejected", "museum", req.Museum, "date", req.Date)
		return nil, apperrors.Forbidden("Booking is limited to registered staff")
	}

	release, err := s.acquireSlotLock(ctx, req.Museum)
	if err != nil {
		return nil, err
	}
	defer release()

	snapshot, err := s.store.Snapshot(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to read booking records", "error", err)
		return nil, apperrors.Internal("Failed to read booking records", err)
	}

	if dup := findDuplicate(snapshot, req); dup != nil {
		return nil, apperrors.DuplicateBooking("Visitor already has a booking for this museum and date", map[string]any{
			"museum":         req.Museum,
			"date":           req.Date,
			"booking_number": dup.BookingNumber,
		})
	}

	remaining := s.calc.Remaining(req.Museum, req.Date, snapshot)
	if remaining < req.Tickets {
		return nil, apperrors.InsufficientCapacity("Not enough tickets left for this date", map[string]any{
			"museum":    req.Museum,
			"date":      req.Date,
			"requested": req.Tickets,
			"remaining": remaining,
		})
	}

	record := model.BookingRecord{
		BookingNumber: s.issueBookingNumber(),
		VisitorName:   req.VisitorName,
		Museum:        req.Museum,
		Date:          req.Date,
		Tickets:       req.Tickets,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.store.Append(ctx, record); err != nil {
		s.cfg.Log.Error("Failed to persist booking", "booking_number", record.BookingNumber, "error", err)
		return nil, apperrors.Persistence("Failed to save booking", err)
	}

	s.cfg.Log.Info("Booking created successfully",
		"booking_number", record.BookingNumber,
		"museum", record.Museum,
		"date", record.Date,
		"tickets", record.Tickets,
	)

	go s.publisher.BookingConfirmed(record)

	return &model.Confirmation{
		BookingNumber:    record.BookingNumber,
		Museum:           record.Museum,
		Date:             record.Date,
		Tickets:          record.Tickets,
		RemainingTickets: remaining - record.Tickets,
	}, nil
}

// Availability reports remaining capacity for a slot. It takes the same
// per-museum lock as Reserve so the answer is never stale relative to an
// in-flight commit. An unknown slot answers 0 rather than erroring.
func (s *reservationService) Availability(ctx context.Context, museum, date string) (int, error) {
	museum = sanitizer.NormalizeMuseum(museum)

	release, err := s.acquireSlotLock(ctx, museum)
	if err != nil {
		return 0, err
	}
	defer release()

	snapshot, err := s.store.Snapshot(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to read booking records", "error", err)
		return 0, apperrors.Internal("Failed to read booking records", err)
	}

	return s.calc.Remaining(museum, date, snapshot), nil
}

// Museums exposes the catalog blob for date pickers.
func (s *reservationService) Museums() []model.Museum {
	return s.catalog.Museums()
}

// --- Helpers ---

func (s *reservationService) sanitize(req *model.ReservationRequest) {
	req.VisitorName = sanitizer.NormalizeName(req.VisitorName)
	req.Museum = sanitizer.NormalizeMuseum(req.Museum)
}

func (s *reservationService) checkSlotExists(museum, date string) error {
	if !s.catalog.Exists(museum) {
		return apperrors.InvalidInput(fmt.Sprintf("Unknown museum: %s", museum))
	}
	if _, ok := s.catalog.Capacity(museum, date); !ok {
		return apperrors.InvalidInput(fmt.Sprintf("Museum %s does not offer tickets on %s", museum, date))
	}
	return nil
}

// acquireSlotLock takes the museum's lock with a bounded wait. A timeout is
// Busy, not an error the caller must treat as final.
func (s *reservationService) acquireSlotLock(ctx context.Context, museum string) (func(), error) {
	lockCtx, cancel := context.WithTimeout(ctx, s.cfg.LockTimeout)
	defer cancel()

	release, err := s.locks.Acquire(lockCtx, museum)
	if err != nil {
		if errors.Is(err, reserrors.ErrLockTimeout) {
			s.cfg.Log.Warn("Slot lock acquisition timed out", "museum", museum)
			return nil, apperrors.ResourceBusy("This museum is being booked by another request. Please try again.")
		}
		return nil, apperrors.Internal("Failed to acquire slot lock", err)
	}

	return release, nil
}

func findDuplicate(snapshot []model.BookingRecord, req *model.ReservationRequest) *model.BookingRecord {
	for i := range snapshot {
		rec := &snapshot[i]
		if rec.VisitorName == req.VisitorName && rec.Museum == req.Museum && rec.Date == req.Date {
			return rec
		}
	}
	return nil
}

// issueBookingNumber derives a number from the commit-time clock plus a
// process-wide counter. The counter keeps numbers collision-free when two
// commits land in the same millisecond.
func (s *reservationService) issueBookingNumber() string {
	return fmt.Sprintf("BK-%d-%04d", time.Now().UnixMilli(), s.seq.Add(1))
}
