package booking

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"sort"
	"strings"
	"time"

	"venuebook/config"
)

// Cache TTLs. Availability entries are short because the provider is the
// system of record and other instances (or venue staff in the provider's
// own console) mutate it behind our back. The negative TTL keeps a broken
// provider from being hammered without blocking the page for long.
func availabilityTTL() time.Duration { return secondsOr(config.AppConfig.AvailabilityTTLSeconds, 60) }
func negativeTTL() time.Duration     { return secondsOr(config.AppConfig.NegativeTTLSeconds, 15) }
func pricingTTL() time.Duration      { return secondsOr(config.AppConfig.PricingTTLSeconds, 600) }
func gamesTTL() time.Duration        { return secondsOr(config.AppConfig.GamesTTLSeconds, 300) }

func secondsOr(s, fallback int) time.Duration {
	if s <= 0 {
		s = fallback
	}
	return time.Duration(s) * time.Second
}

func availabilityKey(gameID int, date string) string {
	return fmt.Sprintf("availability:%d:%s", gameID, date)
}

func pricingKey(gameID int) string {
	return fmt.Sprintf("pricing:%d", gameID)
}

func gamesKey(params map[string]string) string {
	return fmt.Sprintf("games:%s", hashParams(params))
}

// hashParams produces a stable short hash over the listing parameters so
// distinct filter combinations get distinct cache entries.
func hashParams(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := fnv.New32a()
	for _, k := range keys {
		fmt.Fprintf(h, "%s=%s;", k, params[k])
	}
	return fmt.Sprintf("%08x", h.Sum32())
}

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func validDate(date string) bool {
	if !dateRe.MatchString(date) {
		return false
	}
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// normalizeClock collapses the provider's inconsistent time formats
// ("18:15:00", "18:15", " 18:15 ") to "HH:MM". Anything unparseable is
// returned trimmed so records still group with their exact duplicates.
func normalizeClock(t string) string {
	t = strings.TrimSpace(t)
	for _, layout := range []string{"15:04:05", "15:04"} {
		if parsed, err := time.Parse(layout, t); err == nil {
			return parsed.Format("15:04")
		}
	}
	return t
}

// normalizeStatus case-folds and trims a provider status string. The
// vocabulary is open; every comparison in this package goes through here.
func normalizeStatus(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
