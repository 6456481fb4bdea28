package booking

import (
	"context"

	"go.uber.org/zap"

	"venuebook/models"
	"venuebook/utils"
)

// GetAvailability derives the canonical slot list for one (game, date)
// pair from the provider's raw calendar records. The provider was never
// designed to expose "availability" directly, so this reconciles
// duplicates, conflicting status signals, and legacy write artifacts into
// one flag per start time.
//
// Failure semantics: pricing failure is absorbed (slots carry no price);
// slot-fetch failure degrades to an empty result cached briefly so the
// page renders and the system retries soon. No provider error escapes
// this method.
func (s *DefaultBookingService) GetAvailability(ctx context.Context, gameID int, date string) (models.AvailabilityResult, error) {
	logger := utils.GetLogger()

	if gameID <= 0 {
		return models.AvailabilityResult{}, NewValidationError("gameId must be a positive integer")
	}
	if !validDate(date) {
		return models.AvailabilityResult{}, NewValidationError("date must be in YYYY-MM-DD format")
	}

	key := availabilityKey(gameID, date)
	if cached, ok := s.Cache.Get(key); ok {
		if result, ok := cached.(models.AvailabilityResult); ok {
			return result, nil
		}
	}

	pricing := s.resolvePricing(ctx, gameID)

	records, err := s.Gateway.ListSlotRecords(ctx, gameID, date, date)
	if err != nil {
		logger.Warn("slot fetch failed, returning empty availability",
			zap.Int("gameId", gameID), zap.String("date", date), zap.Error(err))
		empty := models.AvailabilityResult{Timeslots: []models.Timeslot{}}
		s.Cache.Set(key, empty, negativeTTL())
		return empty, nil
	}

	// The provider's date-range filter is not trusted: stale test rows
	// sometimes come back tagged with neighboring dates.
	filtered := records[:0]
	for _, rec := range records {
		if rec.Date == "" || rec.Date == date {
			filtered = append(filtered, rec)
		}
	}

	groups, starts := groupByStart(filtered)

	result := models.AvailabilityResult{Timeslots: make([]models.Timeslot, 0, len(starts))}
	for _, start := range starts {
		slot := reconcileGroup(start, groups[start])
		slot.Price = pricing.Price
		slot.PricingType = pricing.PricingType
		if slot.Available {
			result.AvailableSlots++
		}
		result.Timeslots = append(result.Timeslots, slot)
	}
	result.TotalSlots = len(result.Timeslots)

	s.Cache.Set(key, result, availabilityTTL())
	return result, nil
}
