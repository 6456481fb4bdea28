package models

// BookingStrategy tags which write path produced a confirmed booking.
type BookingStrategy string

const (
	// ConfirmedViaTransaction means the provider's atomic
	// booking+customer+invoice endpoint succeeded.
	ConfirmedViaTransaction BookingStrategy = "transaction"
	// ConfirmedViaDirectSlot means the fallback standalone slot write was
	// used, with contact details serialized into the record's display text.
	ConfirmedViaDirectSlot BookingStrategy = "direct_slot"
)

// BookingAttempt captures one customer's desired reservation for the
// duration of a single confirmation call. LocationID and the normalized
// time strings are derived by the orchestrator before any provider write.
type BookingAttempt struct {
	GameID      int    `json:"gameId"`
	Date        string `json:"date"` // "YYYY-MM-DD"
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	PartySize   int    `json:"partySize"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone,omitempty"`
	KnownSlotID int    `json:"knownSlotId,omitempty"` // Provider slot id selected from availability output, 0 when unknown

	LocationID int `json:"-"` // Derived: provider location the game belongs to
}

// InvoiceSummary is the financial-record portion of a transaction-path
// confirmation.
type InvoiceSummary struct {
	ID          int     `json:"id"`
	OrderNumber string  `json:"order_number"`
	Total       float64 `json:"total,omitempty"`
}

// BookingOutcome is the orchestrator's canonical result. Both write paths
// produce the same shape so callers stay strategy-agnostic. The provider is
// the system of record; outcomes are returned, never persisted locally.
type BookingOutcome struct {
	Strategy         BookingStrategy `json:"strategy"`
	SlotID           int             `json:"slotId"`
	ConfirmationCode string          `json:"confirmationCode"`
	Invoice          *InvoiceSummary `json:"financialRecord,omitempty"`
	UsedFallback     bool            `json:"usedFallback"`
}
