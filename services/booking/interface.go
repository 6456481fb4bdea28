package booking

import (
	"context"

	"venuebook/cache"
	"venuebook/gateway"
	"venuebook/models"
)

// ProviderGateway is the slice of the gateway client the booking core
// uses. Tests substitute a scripted fake.
type ProviderGateway interface {
	ListGames(ctx context.Context) ([]models.Game, error)
	GetGame(ctx context.Context, gameID int, withPricing bool) (models.Game, *models.GamePricing, error)
	ListSlotRecords(ctx context.Context, gameID int, from, to string) ([]models.SlotRecord, error)
	CreateSlotRecord(ctx context.Context, in gateway.CreateSlotInput) (models.SlotRecord, error)
	UpdateSlotRecord(ctx context.Context, slotID int, in gateway.UpdateSlotInput) (models.SlotRecord, error)
	CreateTransaction(ctx context.Context, in gateway.TransactionInput) (gateway.TransactionResult, error)
}

// BookingService defines the interface the route layer consumes.
type BookingService interface {
	GetGames(ctx context.Context, params map[string]string) ([]models.Game, error)
	GetAvailability(ctx context.Context, gameID int, date string) (models.AvailabilityResult, error)
	ConfirmBooking(ctx context.Context, attempt models.BookingAttempt) (*models.BookingOutcome, error)
}

// DefaultBookingService implements BookingService against the provider
// gateway, with one shared in-process cache gating provider reads. The
// cache is injected so tests can substitute a zero-TTL or pre-seeded one.
type DefaultBookingService struct {
	Gateway ProviderGateway
	Cache   *cache.Cache
}
