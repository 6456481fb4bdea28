package gateway

import (
	"encoding/json"

	"venuebook/models"
)

// The provider's response envelopes are inconsistent: some endpoints wrap
// the entity in a named field, others return it bare. Each response type
// here owns a custom UnmarshalJSON that accepts both shapes so callers
// never see the difference.

type gameListResponse struct {
	Games []models.Game
}

func (r *gameListResponse) UnmarshalJSON(data []byte) error {
	var wrapped struct {
		Games []models.Game `json:"games"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Games != nil {
		r.Games = wrapped.Games
		return nil
	}
	return json.Unmarshal(data, &r.Games)
}

type gameDetailResponse struct {
	Game    models.Game
	Pricing *models.GamePricing
}

func (r *gameDetailResponse) UnmarshalJSON(data []byte) error {
	var wrapped struct {
		Game    *models.Game        `json:"game"`
		Pricing *models.GamePricing `json:"pricing"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Game != nil {
		r.Game = *wrapped.Game
		r.Pricing = wrapped.Pricing
		return nil
	}
	var bare struct {
		models.Game
		Pricing *models.GamePricing `json:"pricing"`
	}
	if err := json.Unmarshal(data, &bare); err != nil {
		return err
	}
	r.Game = bare.Game
	r.Pricing = bare.Pricing
	return nil
}

type slotListResponse struct {
	Slots []models.SlotRecord
}

func (r *slotListResponse) UnmarshalJSON(data []byte) error {
	var wrapped struct {
		Slots []models.SlotRecord `json:"slots"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Slots != nil {
		r.Slots = wrapped.Slots
		return nil
	}
	return json.Unmarshal(data, &r.Slots)
}

type slotResponse struct {
	Slot models.SlotRecord
}

func (r *slotResponse) UnmarshalJSON(data []byte) error {
	var wrapped struct {
		Slot *models.SlotRecord `json:"slot"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Slot != nil {
		r.Slot = *wrapped.Slot
		return nil
	}
	return json.Unmarshal(data, &r.Slot)
}

// CreateSlotInput is the write body for a standalone slot record.
type CreateSlotInput struct {
	GameID     int    `json:"game_id"`
	LocationID int    `json:"location_id"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	Status     string `json:"status"`
	PartySize  int    `json:"party_size"`
	SlotText   string `json:"slot_text"`
}

// UpdateSlotInput carries only the fields being changed; nil pointers are
// omitted from the request body.
type UpdateSlotInput struct {
	SlotText *string `json:"slot_text,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// TransactionInput is the body for the provider's atomic
// booking+customer+invoice endpoint.
type TransactionInput struct {
	SlotID     int     `json:"slot_id"`
	GameID     int     `json:"game_id"`
	LocationID int     `json:"location_id"`
	Date       string  `json:"date"`
	StartTime  string  `json:"start_time"`
	EndTime    string  `json:"end_time"`
	PartySize  int     `json:"party_size"`
	Email      string  `json:"email"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Phone      string  `json:"phone,omitempty"`
	Amount     float64 `json:"amount,omitempty"`
}

// TransactionResult is the atomic endpoint's success payload.
type TransactionResult struct {
	SlotID     int                   `json:"slot_id"`
	CustomerID int                   `json:"customer_id"`
	Invoice    models.InvoiceSummary `json:"invoice"`
}

type transactionResponse struct {
	Result TransactionResult
}

func (r *transactionResponse) UnmarshalJSON(data []byte) error {
	var wrapped struct {
		Transaction *TransactionResult `json:"transaction"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Transaction != nil {
		r.Result = *wrapped.Transaction
		return nil
	}
	return json.Unmarshal(data, &r.Result)
}
