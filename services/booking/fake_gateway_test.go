package booking

import (
	"context"
	"errors"

	"venuebook/cache"
	"venuebook/gateway"
	"venuebook/models"
)

// fakeGateway scripts provider behavior per method and records the order
// of calls so tests can assert on strategy sequencing.
type fakeGateway struct {
	listGamesFn   func(ctx context.Context) ([]models.Game, error)
	getGameFn     func(ctx context.Context, gameID int, withPricing bool) (models.Game, *models.GamePricing, error)
	listSlotsFn   func(ctx context.Context, gameID int, from, to string) ([]models.SlotRecord, error)
	createSlotFn  func(ctx context.Context, in gateway.CreateSlotInput) (models.SlotRecord, error)
	updateSlotFn  func(ctx context.Context, slotID int, in gateway.UpdateSlotInput) (models.SlotRecord, error)
	createTxnFn   func(ctx context.Context, in gateway.TransactionInput) (gateway.TransactionResult, error)
	calls         []string
}

var errUnscripted = errors.New("unscripted provider call")

func (f *fakeGateway) ListGames(ctx context.Context) ([]models.Game, error) {
	f.calls = append(f.calls, "list-games")
	if f.listGamesFn == nil {
		return nil, errUnscripted
	}
	return f.listGamesFn(ctx)
}

func (f *fakeGateway) GetGame(ctx context.Context, gameID int, withPricing bool) (models.Game, *models.GamePricing, error) {
	if withPricing {
		f.calls = append(f.calls, "game-detail-priced")
	} else {
		f.calls = append(f.calls, "game-detail")
	}
	if f.getGameFn == nil {
		return models.Game{}, nil, errUnscripted
	}
	return f.getGameFn(ctx, gameID, withPricing)
}

func (f *fakeGateway) ListSlotRecords(ctx context.Context, gameID int, from, to string) ([]models.SlotRecord, error) {
	f.calls = append(f.calls, "list-slots")
	if f.listSlotsFn == nil {
		return nil, errUnscripted
	}
	return f.listSlotsFn(ctx, gameID, from, to)
}

func (f *fakeGateway) CreateSlotRecord(ctx context.Context, in gateway.CreateSlotInput) (models.SlotRecord, error) {
	f.calls = append(f.calls, "create-slot")
	if f.createSlotFn == nil {
		return models.SlotRecord{}, errUnscripted
	}
	return f.createSlotFn(ctx, in)
}

func (f *fakeGateway) UpdateSlotRecord(ctx context.Context, slotID int, in gateway.UpdateSlotInput) (models.SlotRecord, error) {
	f.calls = append(f.calls, "update-slot")
	if f.updateSlotFn == nil {
		return models.SlotRecord{}, errUnscripted
	}
	return f.updateSlotFn(ctx, slotID, in)
}

func (f *fakeGateway) CreateTransaction(ctx context.Context, in gateway.TransactionInput) (gateway.TransactionResult, error) {
	f.calls = append(f.calls, "create-transaction")
	if f.createTxnFn == nil {
		return gateway.TransactionResult{}, errUnscripted
	}
	return f.createTxnFn(ctx, in)
}

func (f *fakeGateway) countCalls(name string) int {
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

// newService wires a fresh service around the fake with a real cache.
func newService(gw *fakeGateway) *DefaultBookingService {
	return &DefaultBookingService{
		Gateway: gw,
		Cache:   cache.New(64),
	}
}
