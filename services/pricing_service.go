package services

import (
	"github.com/danish-manzoor/ecommerce-store-sub001/entity"
	"github.com/danish-manzoor/ecommerce-store-sub001/utils"
)

// PricingEngine resolves unit price and stock for a product given a selected
// option combination. Matching is done on the ascending-sorted option-id key,
// so the order the shopper picked options in never matters.
type PricingEngine struct{}

func NewPricingEngine() PricingEngine { return PricingEngine{} }

// ResolvePrice returns the override price of the variation row matching the
// selection, or the product base price when no row matches or the row has no
// price override. The product must carry its Variations.
func (e PricingEngine) ResolvePrice(p *entity.Product, optionIDs []uint) int64 {
	if row := e.matchVariation(p, optionIDs); row != nil && row.Price != nil {
		return *row.Price
	}
	return p.Price
}

// ResolveQuantity is the stock counterpart of ResolvePrice.
func (e PricingEngine) ResolveQuantity(p *entity.Product, optionIDs []uint) int {
	if row := e.matchVariation(p, optionIDs); row != nil && row.Quantity != nil {
		return *row.Quantity
	}
	return p.Quantity
}

// DefaultOptionMap picks, for each variation type in its natural order, the
// first option in the type's option list. This is the selection shown on
// first page load. A product without variation types yields an empty map.
func (e PricingEngine) DefaultOptionMap(p *entity.Product) map[uint]uint {
	out := make(map[uint]uint, len(p.VariationTypes))
	for _, vt := range p.VariationTypes {
		if len(vt.Options) == 0 {
			continue
		}
		out[vt.ID] = vt.Options[0].ID
	}
	return out
}

func (e PricingEngine) matchVariation(p *entity.Product, optionIDs []uint) *entity.ProductVariation {
	if len(optionIDs) == 0 || len(p.VariationTypes) == 0 {
		return nil
	}
	key := utils.SortedIDKey(optionIDs)
	for i := range p.Variations {
		stored := utils.ParseIDKey(string(p.Variations[i].VariationTypeOptionIDs))
		if utils.SortedIDKey(stored) == key {
			return &p.Variations[i]
		}
	}
	return nil
}
