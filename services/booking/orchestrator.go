package booking

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"venuebook/gateway"
	"venuebook/models"
	"venuebook/utils"
)

// The provider's atomic booking+customer+invoice endpoint intermittently
// fails on some account configurations, so confirmation runs a small
// linear state machine: Strategy A (the atomic transaction) when a slot id
// is known, then Strategy B (a standalone slot record carrying the contact
// details in its display text) on any A failure. The two paths produce one
// tagged outcome shape so callers never care which one ran.

const directSlotStatus = "booked"

// ConfirmBooking writes the customer's reservation to the provider. It
// fails only on invalid input or when both write strategies are exhausted;
// a Strategy A failure is expected and silently triggers Strategy B.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, attempt models.BookingAttempt) (*models.BookingOutcome, error) {
	if err := validateAttempt(&attempt); err != nil {
		return nil, err
	}

	pricing := s.resolvePricing(ctx, attempt.GameID)
	attempt.LocationID = pricing.LocationID

	outcome, err := s.runStrategies(ctx, attempt, pricing)
	if err != nil {
		return nil, err
	}

	// The next availability read for this date must see the new booking.
	s.Cache.Invalidate(availabilityKey(attempt.GameID, attempt.Date))
	return outcome, nil
}

func (s *DefaultBookingService) runStrategies(ctx context.Context, attempt models.BookingAttempt, pricing pricingInfo) (*models.BookingOutcome, error) {
	logger := utils.GetLogger()

	if attempt.KnownSlotID > 0 {
		outcome, err := s.confirmViaTransaction(ctx, attempt, pricing)
		if err == nil {
			return outcome, nil
		}
		// Any failure class triggers the fallback: the caller cannot
		// distinguish a timeout from a 500 here, and neither can we.
		logger.Warn("atomic transaction failed, falling back to direct slot write",
			zap.Int("gameId", attempt.GameID),
			zap.Int("slotId", attempt.KnownSlotID),
			zap.Error(err))
	}

	return s.confirmViaDirectSlot(ctx, attempt)
}

// confirmViaTransaction is Strategy A: one write that links the known slot
// to a new customer and financial record.
func (s *DefaultBookingService) confirmViaTransaction(ctx context.Context, attempt models.BookingAttempt, pricing pricingInfo) (*models.BookingOutcome, error) {
	in := gateway.TransactionInput{
		SlotID:     attempt.KnownSlotID,
		GameID:     attempt.GameID,
		LocationID: attempt.LocationID,
		Date:       attempt.Date,
		StartTime:  attempt.StartTime,
		EndTime:    attempt.EndTime,
		PartySize:  attempt.PartySize,
		Email:      attempt.Email,
		FirstName:  attempt.FirstName,
		LastName:   attempt.LastName,
		Phone:      attempt.Phone,
	}
	if pricing.Price != nil {
		in.Amount = *pricing.Price
	}

	result, err := s.Gateway.CreateTransaction(ctx, in)
	if err != nil {
		return nil, err
	}

	slotID := result.SlotID
	if slotID == 0 {
		slotID = attempt.KnownSlotID
	}
	code := result.Invoice.OrderNumber
	if code == "" {
		code = synthesizeCode(slotID)
	}
	invoice := result.Invoice
	return &models.BookingOutcome{
		Strategy:         models.ConfirmedViaTransaction,
		SlotID:           slotID,
		ConfirmationCode: code,
		Invoice:          &invoice,
		UsedFallback:     false,
	}, nil
}

// confirmViaDirectSlot is Strategy B: create a brand-new slot record at
// the requested time with the contact details serialized into its display
// text so venue staff can see who reserved it without a linked customer
// record. No waiver or signed-document endpoint is touched here — that
// would fabricate a signed-document state the customer never produced.
func (s *DefaultBookingService) confirmViaDirectSlot(ctx context.Context, attempt models.BookingAttempt) (*models.BookingOutcome, error) {
	logger := utils.GetLogger()
	text := buildSlotText(attempt)

	created, err := s.Gateway.CreateSlotRecord(ctx, gateway.CreateSlotInput{
		GameID:     attempt.GameID,
		LocationID: attempt.LocationID,
		Date:       attempt.Date,
		StartTime:  attempt.StartTime,
		EndTime:    attempt.EndTime,
		Status:     directSlotStatus,
		PartySize:  attempt.PartySize,
		SlotText:   text,
	})
	if err != nil {
		return nil, err
	}

	// Best-effort repair: the provider sometimes drops the display text on
	// create. The booking stands either way, so a repair failure is only
	// logged.
	if created.SlotText == "" {
		if _, err := s.Gateway.UpdateSlotRecord(ctx, created.ID, gateway.UpdateSlotInput{SlotText: &text}); err != nil {
			logger.Warn("failed to repair slot display text",
				zap.Int("slotId", created.ID), zap.Error(err))
		}
	}

	return &models.BookingOutcome{
		Strategy:         models.ConfirmedViaDirectSlot,
		SlotID:           created.ID,
		ConfirmationCode: synthesizeCode(created.ID),
		UsedFallback:     true,
	}, nil
}

func validateAttempt(attempt *models.BookingAttempt) error {
	if attempt.GameID <= 0 {
		return NewValidationError("gameId must be a positive integer")
	}
	if !validDate(attempt.Date) {
		return NewValidationError("date must be in YYYY-MM-DD format")
	}
	attempt.StartTime = normalizeClock(attempt.StartTime)
	attempt.EndTime = normalizeClock(attempt.EndTime)
	if attempt.StartTime == "" || attempt.EndTime == "" {
		return NewValidationError("start_time and end_time are required")
	}
	if attempt.PartySize <= 0 {
		return NewValidationError("partySize must be a positive integer")
	}
	if strings.TrimSpace(attempt.Email) == "" || !strings.Contains(attempt.Email, "@") {
		return NewValidationError("a valid email is required")
	}
	if strings.TrimSpace(attempt.FirstName) == "" || strings.TrimSpace(attempt.LastName) == "" {
		return NewValidationError("firstName and lastName are required")
	}
	return nil
}

// buildSlotText serializes contact details into the record's display
// field: name, email, optional phone, party size, pipe-delimited.
func buildSlotText(attempt models.BookingAttempt) string {
	parts := []string{
		strings.TrimSpace(attempt.FirstName + " " + attempt.LastName),
		strings.TrimSpace(attempt.Email),
	}
	if phone := strings.TrimSpace(attempt.Phone); phone != "" {
		parts = append(parts, phone)
	}
	parts = append(parts, fmt.Sprintf("party of %d", attempt.PartySize))
	return strings.Join(parts, " | ")
}

// synthesizeCode derives a human-facing confirmation code from a slot id
// for bookings that never produced an invoice order number.
func synthesizeCode(slotID int) string {
	return fmt.Sprintf("VB-%06d", slotID)
}
