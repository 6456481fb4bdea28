package models

// SlotRecord is the provider's raw representation of a single calendar
// entry for a game. The status vocabulary is provider-defined and only
// partially documented; treat it as an open set. Several records may share
// one start time (duplicates, stale test data, or distinct bookings) and
// the availability engine collapses them into one logical slot.
type SlotRecord struct {
	ID         int    `json:"id"`                    // Provider-assigned record identifier
	GameID     int    `json:"game_id"`               // Owning game
	LocationID int    `json:"location_id,omitempty"` // Provider location/grouping id
	Date       string `json:"date"`                  // "YYYY-MM-DD"
	StartTime  string `json:"start_time"`            // "HH:MM" or "HH:MM:SS", provider is inconsistent
	EndTime    string `json:"end_time"`              // Same format caveat as StartTime
	Status     string `json:"status"`                // Open vocabulary: "available", "expired", numeric codes, human-facing labels
	PartySize  int    `json:"party_size,omitempty"`  // Player count attached to the record
	CustomerID int    `json:"customer_id,omitempty"` // Linked customer record, 0 when none
	InvoiceID  int    `json:"invoice_id,omitempty"`  // Linked financial record, 0 when none
	SlotText   string `json:"slot_text,omitempty"`   // Free-text display field shown to venue staff
}

// Timeslot is the engine's canonical output unit, derived per request and
// never stored. SlotID is set only when the slot is available, since it is
// the identifier a later booking write must reference.
type Timeslot struct {
	StartTime   string   `json:"start_time"`             // Normalized "HH:MM"
	EndTime     string   `json:"end_time"`               // Normalized "HH:MM"
	Available   bool     `json:"available"`              // Outcome of the reconciliation rules
	Price       *float64 `json:"price,omitempty"`        // Absent when pricing resolution failed
	PricingType string   `json:"pricing_type,omitempty"` // Pricing label when known
	SlotID      int      `json:"slot_id,omitempty"`      // Provider id of the available record, 0 when booked
}

// AvailabilityResult is the reconciled view of one (game, date) pair.
type AvailabilityResult struct {
	Timeslots      []Timeslot `json:"timeslots"`
	TotalSlots     int        `json:"total_slots"`
	AvailableSlots int        `json:"available_slots"`
}
