package booking

import (
	"sort"

	"venuebook/models"
)

// The provider's status vocabulary is open: "available", "expired",
// numeric codes, and whatever human-facing labels staff type into the
// console. Classification is therefore an ordered rule list, never a
// closed switch — an unseen status falls through to the conservative
// "booked" outcome rather than crashing or double-booking.

const (
	statusAvailable = "available"
	statusExpired   = "expired"
)

// activeSentinelCodes are the numeric status codes the provider emits for
// records with an active booking attached. Observed in live data; the
// provider's docs do not enumerate them.
var activeSentinelCodes = map[string]bool{
	"1": true,
	"2": true,
}

// availableCandidate returns the record whose normalized status is exactly
// "available", preferring the lowest id so the result is stable however
// the provider orders duplicates. Second return is false when none exists.
func availableCandidate(group []models.SlotRecord) (models.SlotRecord, bool) {
	var best models.SlotRecord
	found := false
	for _, rec := range group {
		if normalizeStatus(rec.Status) != statusAvailable {
			continue
		}
		if !found || rec.ID < best.ID {
			best = rec
			found = true
		}
	}
	return best, found
}

// bookedCandidate applies the booked-detection rules in priority order
// across the whole group. Each rule is checked against every record before
// the next rule is considered; this matters because the catch-all status
// rule would otherwise swallow the sentinel-code case.
//
// Priority:
//  1. a linked financial record (invoice id)
//  2. a linked customer record
//  3. an active sentinel status code
//  4. any status other than "available"/"expired"
//  5. status "available" but a non-zero party size — an artifact of a
//     legacy write path that booked slots without flipping the status.
//     Still present in live data; do not remove without confirming with
//     the provider that such records can no longer be produced.
func bookedCandidate(group []models.SlotRecord) (models.SlotRecord, bool) {
	rules := []func(models.SlotRecord) bool{
		func(r models.SlotRecord) bool { return r.InvoiceID > 0 },
		func(r models.SlotRecord) bool { return r.CustomerID > 0 },
		func(r models.SlotRecord) bool { return activeSentinelCodes[normalizeStatus(r.Status)] },
		func(r models.SlotRecord) bool {
			s := normalizeStatus(r.Status)
			return s != statusAvailable && s != statusExpired
		},
		func(r models.SlotRecord) bool {
			return normalizeStatus(r.Status) == statusAvailable && r.PartySize > 0
		},
	}

	for _, rule := range rules {
		var best models.SlotRecord
		found := false
		for _, rec := range group {
			if !rule(rec) {
				continue
			}
			if !found || rec.ID < best.ID {
				best = rec
				found = true
			}
		}
		if found {
			return best, true
		}
	}
	return models.SlotRecord{}, false
}

// groupByStart buckets records by normalized start time and returns the
// start times in ascending order. Records sharing a start time are one
// logical slot regardless of how many raw rows the provider returns.
func groupByStart(records []models.SlotRecord) (map[string][]models.SlotRecord, []string) {
	groups := make(map[string][]models.SlotRecord)
	for _, rec := range records {
		start := normalizeClock(rec.StartTime)
		groups[start] = append(groups[start], rec)
	}

	starts := make([]string, 0, len(groups))
	for s := range groups {
		starts = append(starts, s)
	}
	sort.Strings(starts)
	return groups, starts
}

// reconcileGroup derives the canonical slot for one start time. The slot
// is available iff an explicit available record exists and nothing in the
// group reads as booked; SlotID is attached only in that case because it
// is the identifier a later write must reference.
func reconcileGroup(start string, group []models.SlotRecord) models.Timeslot {
	avail, hasAvail := availableCandidate(group)
	booked, hasBooked := bookedCandidate(group)

	rep := group[0]
	for _, rec := range group[1:] {
		if rec.ID < rep.ID {
			rep = rec
		}
	}

	if hasAvail && !hasBooked {
		return models.Timeslot{
			StartTime: start,
			EndTime:   normalizeClock(avail.EndTime),
			Available: true,
			SlotID:    avail.ID,
		}
	}

	end := rep.EndTime
	if hasBooked {
		end = booked.EndTime
	}
	return models.Timeslot{
		StartTime: start,
		EndTime:   normalizeClock(end),
		Available: false,
	}
}
