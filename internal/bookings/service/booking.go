package service

import (
	"context"
	"errors"
	"fmt"
	bookingserrors "studiobook/internal/bookings/errors"
	"studiobook/internal/bookings/repository"
	"studiobook/internal/bookings/validator"
	"studiobook/internal/events"
	"studiobook/pkg/config"
	apperrors "studiobook/pkg/errors"
	"studiobook/pkg/kafka"
	"studiobook/pkg/model"
	"studiobook/pkg/payment"
	"studiobook/pkg/sanitizer"
	"studiobook/pkg/timerange"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// EventPublisher is the slice of the Kafka producer the service needs.
type EventPublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type BookingService interface {
	CreateHold(ctx context.Context, req *model.HoldRequest) (*model.Booking, error)
	Confirm(ctx context.Context, id string, reference string) (*model.Booking, error)
	TakenSlots(ctx context.Context, date string) ([]*model.TakenSlot, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error)
	ReapExpired(ctx context.Context) (int64, error)
}

type bookingService struct {
	repo      repository.BookingRepository
	lockRepo  repository.HoldLockRepository
	validator *validator.BookingValidator
	verifier  payment.Verifier
	publisher EventPublisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	lockRepo repository.HoldLockRepository,
	validator *validator.BookingValidator,
	verifier payment.Verifier,
	publisher EventPublisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		lockRepo:  lockRepo,
		validator: validator,
		verifier:  verifier,
		publisher: publisher,
		cfg:       cfg,
	}
}

// CreateHold reserves a (date, time) slot for a limited window. The slot is
// checked and inserted inside a transaction under an advisory lock, so two
// concurrent requests for the same slot cannot both succeed.
func (s *bookingService) CreateHold(ctx context.Context, req *model.HoldRequest) (*model.Booking, error) {
	s.sanitize(req)
	s.applyDefaults(req)

	if err := s.validator.ValidateHold(req); err != nil {
		s.cfg.Log.Warn("Hold request validation failed", "error", err)
		return nil, apperrors.Validation("Booking validation failed", map[string]any{"error": err.Error()})
	}

	spec, err := model.NewTimeSpec(req.TimeSlot, req.CustomTime)
	if err != nil {
		return nil, apperrors.InvalidInput("Exactly one of time_slot or custom_time must be provided")
	}

	if spec.Kind() == model.TimeKindCustom {
		if err := s.checkBusinessHours(spec.Value()); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	booking := &model.Booking{
		Date:        req.Date,
		BookingType: req.BookingType,
		TimeSlot:    req.TimeSlot,
		CustomTime:  req.CustomTime,
		TimeKey:     spec.Key(),
		Amount:      req.Amount,
		Customer:    req.Customer,
		Status:      model.StatusHeld,
		ExpiresAt:   now.Add(s.cfg.HoldTTL),
	}

	// Acquire advisory lock to prevent race conditions on the same slot
	lockID, err := s.acquireSlotLock(ctx, booking.Date, booking.TimeKey)
	if err != nil {
		return nil, err
	}
	defer func() {
		if releaseErr := s.releaseSlotLock(ctx, lockID); releaseErr != nil {
			s.cfg.Log.Warn("Failed to release hold lock", "lock_id", lockID, "error", releaseErr)
		}
	}()

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.verifySlotFree(sessCtx, booking); err != nil {
			return err
		}
		if err := s.repo.Create(sessCtx, booking); err != nil {
			if errors.Is(err, bookingserrors.ErrSlotTaken) {
				return apperrors.SlotTaken("This slot is already held or booked")
			}
			return apperrors.StoreError("Failed to create booking hold", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create booking hold", "error", err)
		return nil, err
	}

	s.cfg.Log.Info("Booking hold created",
		"id", booking.ID,
		"date", booking.Date,
		"time_key", booking.TimeKey,
		"expires_at", booking.ExpiresAt,
	)
	return booking, nil
}

// Confirm verifies the payment reference with the provider and promotes the
// hold to confirmed. The transition is a conditional update on (id, held), so
// it can never revive a booking the reaper already removed.
func (s *bookingService) Confirm(ctx context.Context, id string, reference string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}
	if reference == "" {
		return nil, apperrors.MissingReference()
	}

	booking, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if booking.Status == model.StatusConfirmed {
		if booking.Reference == reference {
			// Repeat confirmation with the same reference is a no-op
			s.cfg.Log.Info("Booking already confirmed with this reference", "id", id)
			return booking, nil
		}
		return nil, apperrors.VerificationFailed("Booking is already confirmed with a different reference")
	}

	verification, err := s.verifier.Verify(ctx, reference)
	if err != nil {
		s.cfg.Log.Error("Payment verification request failed", "id", id, "reference", reference, "error", err)
		return nil, apperrors.ProviderError("Payment provider is unreachable", err)
	}

	if err := s.checkVerification(booking, verification); err != nil {
		s.cfg.Log.Warn("Payment verification rejected",
			"id", id,
			"reference", reference,
			"provider_status", verification.Status,
			"paid_amount", verification.Amount,
			"expected_amount", booking.Amount,
		)
		return nil, err
	}

	matched, err := s.repo.ConfirmHeld(ctx, id, reference)
	if err != nil {
		return nil, apperrors.StoreError("Failed to confirm booking", err)
	}
	if !matched {
		// Lost the race: either the reaper removed the hold, or a concurrent
		// confirmation won. Re-read to tell the two apart.
		current, findErr := s.repo.FindByID(ctx, id)
		if findErr == nil && current.Status == model.StatusConfirmed && current.Reference == reference {
			return current, nil
		}
		return nil, apperrors.NotFoundWithID("Booking", id)
	}

	booking.Status = model.StatusConfirmed
	booking.Reference = reference

	s.publishConfirmed(booking)

	s.cfg.Log.Info("Booking confirmed",
		"id", booking.ID,
		"date", booking.Date,
		"reference", reference,
		"amount", booking.Amount,
	)
	return booking, nil
}

// TakenSlots lists the occupied times for one date so the frontend can grey
// them out. Holds past their expiry are filtered even if the reaper has not
// swept them yet.
func (s *bookingService) TakenSlots(ctx context.Context, date string) ([]*model.TakenSlot, error) {
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return nil, apperrors.InvalidInput("Date must be in YYYY-MM-DD format")
	}

	bookings, err := s.repo.FindActiveByDate(ctx, date)
	if err != nil {
		s.cfg.Log.Error("Failed to list taken slots", "date", date, "error", err)
		return nil, apperrors.StoreError("Failed to retrieve taken slots", err)
	}

	now := time.Now().UTC()
	taken := make([]*model.TakenSlot, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == model.StatusHeld && !b.ExpiresAt.After(now) {
			continue
		}
		taken = append(taken, &model.TakenSlot{
			TimeSlot:   b.TimeSlot,
			CustomTime: b.CustomTime,
			Status:     b.Status,
		})
	}

	return taken, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID format")
		}
		return nil, apperrors.StoreError("Failed to retrieve booking", err)
	}

	return booking, nil
}

func (s *bookingService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error) {
	var count int64
	var bookings []*model.Booking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count bookings", "error", errCount)
			errCount = apperrors.StoreError("Failed to count bookings", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		bookings, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list bookings", "error", errFind)
			errFind = apperrors.StoreError("Failed to retrieve bookings", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return bookings, count, nil
}

// ReapExpired removes every held booking whose window has passed. Confirmed
// bookings never match the delete filter.
func (s *bookingService) ReapExpired(ctx context.Context) (int64, error) {
	removed, err := s.repo.DeleteExpiredHeld(ctx, time.Now().UTC())
	if err != nil {
		return 0, apperrors.StoreError("Failed to remove expired holds", err)
	}
	if removed > 0 {
		s.cfg.Log.Info("Expired holds removed", "count", removed)
	}
	return removed, nil
}

// --- Helpers ---

func (s *bookingService) sanitize(req *model.HoldRequest) {
	req.BookingType = sanitizer.NormalizeLabel(req.BookingType)
	req.TimeSlot = sanitizer.TrimAndNormalize(req.TimeSlot)
	req.CustomTime = sanitizer.TrimAndNormalize(req.CustomTime)
	req.Customer.Name = sanitizer.NormalizeName(req.Customer.Name)
	req.Customer.Email = sanitizer.NormalizeEmail(req.Customer.Email)
	req.Customer.Phone = sanitizer.NormalizePhone(req.Customer.Phone)
}

func (s *bookingService) applyDefaults(req *model.HoldRequest) {
	if req.Amount <= 0 {
		req.Amount = s.cfg.DefaultAmount
	}
}

func (s *bookingService) checkBusinessHours(customTime string) error {
	err := timerange.Validate(customTime)
	if err == nil {
		return nil
	}

	var policyErr *timerange.PolicyError
	if errors.As(err, &policyErr) {
		return apperrors.OutOfHours(policyErr.Reason)
	}
	return apperrors.InvalidInput("Custom time must look like \"9:00 AM - 11:00 AM\"")
}

func (s *bookingService) checkVerification(booking *model.Booking, v *payment.Verification) error {
	if v.Status != payment.StatusSuccess {
		return apperrors.VerificationFailed("Payment was not successful")
	}
	if v.Amount != booking.Amount {
		return apperrors.VerificationFailed("Paid amount does not match the booking amount").WithDetails(map[string]any{
			"paid_amount":     v.Amount,
			"expected_amount": booking.Amount,
		})
	}
	if v.Currency != s.cfg.Currency {
		return apperrors.VerificationFailed("Payment currency does not match").WithDetails(map[string]any{
			"paid_currency":     v.Currency,
			"expected_currency": s.cfg.Currency,
		})
	}
	return nil
}

func (s *bookingService) verifySlotFree(ctx context.Context, booking *model.Booking) error {
	existing, err := s.repo.FindActiveSlot(ctx, booking.Date, booking.TimeKey)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrNotFound) {
			return nil
		}
		return apperrors.StoreError("Failed to check slot availability", err)
	}

	// A hold past its window no longer blocks the slot even before the
	// reaper sweeps it, but the stale document has to go or the unique
	// index would reject the insert.
	if existing.Status == model.StatusHeld && !existing.ExpiresAt.After(time.Now().UTC()) {
		if _, err := s.repo.DeleteExpiredHeld(ctx, time.Now().UTC()); err != nil {
			return apperrors.StoreError("Failed to clear expired hold", err)
		}
		return nil
	}

	return apperrors.SlotTaken("This slot is already held or booked")
}

// publishConfirmed emits the confirmation event without blocking the caller.
// Notification delivery is best-effort; a publish failure is logged and the
// confirmation still stands.
func (s *bookingService) publishConfirmed(booking *model.Booking) {
	if s.publisher == nil {
		return
	}

	event := events.BookingConfirmed{
		BookingID:   booking.ID,
		Date:        booking.Date,
		BookingType: booking.BookingType,
		TimeSlot:    booking.TimeSlot,
		CustomTime:  booking.CustomTime,
		Amount:      booking.Amount,
		Currency:    s.cfg.Currency,
		Reference:   booking.Reference,
		Customer:    booking.Customer,
	}

	msg, err := kafka.NewEventMessage(booking.ID, events.TypeBookingConfirmed, "bookings", event)
	if err != nil {
		s.cfg.Log.Error("Failed to encode confirmation event", "id", booking.ID, "error", err)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.publisher.Publish(ctx, msg); err != nil {
			s.cfg.Log.Error("Failed to publish confirmation event", "id", booking.ID, "error", err)
		}
	}()
}

// acquireSlotLock creates an advisory lock for one (date, time) slot.
// Returns the lock ID if successful, or conflict error if lock already exists.
func (s *bookingService) acquireSlotLock(ctx context.Context, date, timeKey string) (string, error) {
	lockID := fmt.Sprintf("hold_lock_%s_%s", date, timeKey)

	lock := &model.HoldLock{
		ID:        lockID,
		ExpiresAt: time.Now().Add(10 * time.Second), // Auto-expire after 10 seconds
	}

	_, err := s.lockRepo.Create(ctx, lock)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", apperrors.SlotTaken("This slot is currently being booked by another request. Please try again.")
		}
		return "", apperrors.StoreError("Failed to acquire hold lock", err)
	}

	return lockID, nil
}

func (s *bookingService) releaseSlotLock(ctx context.Context, lockID string) error {
	return s.lockRepo.Delete(ctx, lockID)
}
