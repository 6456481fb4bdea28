package models

// Game represents a bookable venue item as the provider exposes it.
// Only the fields the booking core reads are mapped; the provider returns
// many more.
type Game struct {
	ID            int     `json:"id"`                       // Provider-assigned item identifier
	Name          string  `json:"name"`                     // Display name
	LocationID    int     `json:"location_id"`              // Provider location/grouping id, required on writes
	Duration      int     `json:"duration,omitempty"`       // Session length in minutes
	MinPlayers    int     `json:"min_players,omitempty"`    // Minimum party size
	MaxPlayers    int     `json:"max_players,omitempty"`    // Maximum party size
	DepositAmount float64 `json:"deposit_amount,omitempty"` // Fallback price source when rich pricing is unavailable
}

// GamePricing is the rich pricing block returned by the item-detail
// endpoint when pricing expansion is requested. Absent on accounts without
// the pricing feature enabled.
type GamePricing struct {
	Amount float64 `json:"amount"`         // Price per booking
	Type   string  `json:"type,omitempty"` // Pricing label, e.g. "per_person" or "flat"
}
