package location

import "github.com/DioGolang/GeoCourier/internal/domain/entity"

// SmartSearchResult keeps the three result groups separate; presentation
// order is the caller's decision.
type SmartSearchResult struct {
	Locations []entity.DeliveryLocation `json:"locations"`
	Landmarks []entity.Landmark         `json:"landmarks"`
	External  []entity.ExternalPlace    `json:"external"`
}
