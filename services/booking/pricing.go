package booking

import (
	"context"

	"go.uber.org/zap"

	"venuebook/utils"
)

// pricingInfo is what pricing resolution yields for one game: a price when
// one could be determined, plus the location id every provider write needs.
// Cached under pricing:{gameID} with a longer TTL than availability since
// prices change rarely.
type pricingInfo struct {
	Price       *float64
	PricingType string
	LocationID  int
}

// resolvePricing determines a game's price, trying the rich
// pricing-enabled lookup first and falling back to the basic item lookup's
// deposit amount. Failure is absorbed: availability must render without
// prices rather than not render at all, so the error return is advisory
// and the zero pricingInfo is always usable.
func (s *DefaultBookingService) resolvePricing(ctx context.Context, gameID int) pricingInfo {
	logger := utils.GetLogger()

	if cached, ok := s.Cache.Get(pricingKey(gameID)); ok {
		if info, ok := cached.(pricingInfo); ok {
			return info
		}
	}

	game, pricing, err := s.Gateway.GetGame(ctx, gameID, true)
	if err == nil && pricing != nil {
		info := pricingInfo{
			Price:       &pricing.Amount,
			PricingType: pricing.Type,
			LocationID:  game.LocationID,
		}
		s.Cache.Set(pricingKey(gameID), info, pricingTTL())
		return info
	}
	if err != nil {
		logger.Warn("rich pricing lookup failed, falling back to basic item lookup",
			zap.Int("gameId", gameID), zap.Error(err))
	}

	game, _, err = s.Gateway.GetGame(ctx, gameID, false)
	if err != nil {
		logger.Warn("basic item lookup failed, slots will carry no price",
			zap.Int("gameId", gameID), zap.Error(err))
		return pricingInfo{}
	}

	info := pricingInfo{LocationID: game.LocationID}
	if game.DepositAmount > 0 {
		deposit := game.DepositAmount
		info.Price = &deposit
		info.PricingType = "deposit"
	}
	s.Cache.Set(pricingKey(gameID), info, pricingTTL())
	return info
}
