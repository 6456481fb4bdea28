package booking

import (
	"context"

	"venuebook/models"
)

// GetGames lists the provider's bookable items. Results are cached per
// parameter combination under games:{paramsHash}; the listing rarely
// changes, so it gets a longer TTL than availability. Filtering happens
// locally because the provider's list endpoint ignores unknown query
// parameters instead of rejecting them.
func (s *DefaultBookingService) GetGames(ctx context.Context, params map[string]string) ([]models.Game, error) {
	key := gamesKey(params)
	if cached, ok := s.Cache.Get(key); ok {
		if games, ok := cached.([]models.Game); ok {
			return games, nil
		}
	}

	games, err := s.Gateway.ListGames(ctx)
	if err != nil {
		return nil, err
	}

	if name := params["name"]; name != "" {
		filtered := games[:0]
		for _, g := range games {
			if containsFold(g.Name, name) {
				filtered = append(filtered, g)
			}
		}
		games = filtered
	}

	s.Cache.Set(key, games, gamesTTL())
	return games, nil
}
