package services

import (
	"github.com/danish-manzoor/ecommerce-store-sub001/entity"
	"github.com/danish-manzoor/ecommerce-store-sub001/utils"
)

// CombinationField is one chosen option inside a combination, labeled for
// the admin edit UI. Fields stay in variation-type order, which makes the
// type-order-major generation order explicit instead of hiding it in a map.
type CombinationField struct {
	VariationTypeID uint   `json:"variationTypeId"`
	OptionID        uint   `json:"optionId"`
	OptionName      string `json:"optionName"`
	TypeLabel       string `json:"typeLabel"`
}

// Combination is one row of the admin variation matrix. ID is the persisted
// ProductVariation id when the combination matched an existing row, else 0.
type Combination struct {
	ID       uint               `json:"id"`
	Fields   []CombinationField `json:"fields"`
	Quantity int                `json:"quantity"`
	Price    int64              `json:"price"`
}

// OptionIDs returns the combination's option ids in field (variation-type)
// order — the unsorted key form the matrix matches persisted rows on. This
// intentionally differs from the sorted key the pricing engine and cart use.
func (c Combination) OptionIDs() []uint {
	ids := make([]uint, 0, len(c.Fields))
	for _, f := range c.Fields {
		ids = append(ids, f.OptionID)
	}
	return ids
}

// BuildMatrix expands the full Cartesian product of the variation types'
// options. Types expand in their stored order, so the first type varies
// slowest — the output reads like nested loops with type one outermost.
// Every complete combination gets the default quantity/price attached.
func BuildMatrix(types []entity.VariationType, defaultQuantity int, defaultPrice int64) []Combination {
	// a product without variation types has no matrix
	if len(types) == 0 {
		return nil
	}
	partials := [][]CombinationField{{}}
	for _, vt := range types {
		next := make([][]CombinationField, 0, len(partials)*len(vt.Options))
		for _, partial := range partials {
			for _, opt := range vt.Options {
				fields := make([]CombinationField, len(partial), len(partial)+1)
				copy(fields, partial)
				fields = append(fields, CombinationField{
					VariationTypeID: vt.ID,
					OptionID:        opt.ID,
					OptionName:      opt.Name,
					TypeLabel:       vt.Name,
				})
				next = append(next, fields)
			}
		}
		partials = next
	}

	out := make([]Combination, 0, len(partials))
	for _, fields := range partials {
		// partial combinations should not occur; skip them if they do
		if len(fields) != len(types) {
			continue
		}
		out = append(out, Combination{
			Fields:   fields,
			Quantity: defaultQuantity,
			Price:    defaultPrice,
		})
	}
	return out
}

// MergeExisting overlays persisted variation rows onto generated
// combinations. Matching is by exact type-order option-id key; combinations
// without a persisted row keep their defaults.
func MergeExisting(combos []Combination, rows []entity.ProductVariation) []Combination {
	byKey := make(map[string]entity.ProductVariation, len(rows))
	for _, r := range rows {
		key := utils.TypeOrderKey(utils.ParseIDKey(string(r.VariationTypeOptionIDs)))
		byKey[key] = r
	}

	out := make([]Combination, len(combos))
	for i, c := range combos {
		out[i] = c
		row, ok := byKey[utils.TypeOrderKey(c.OptionIDs())]
		if !ok {
			continue
		}
		out[i].ID = row.ID
		if row.Quantity != nil {
			out[i].Quantity = *row.Quantity
		}
		if row.Price != nil {
			out[i].Price = *row.Price
		}
	}
	return out
}

// combinationKeyForTypes reads the selected option id per variation type out
// of a combination, in the product's type order, and returns the ids plus
// their type-order key. ok is false when any type has no field — such a
// combination cannot be saved.
func combinationKeyForTypes(c Combination, types []entity.VariationType) ([]uint, string, bool) {
	ids := make([]uint, 0, len(types))
	for _, vt := range types {
		found := false
		for _, f := range c.Fields {
			if f.VariationTypeID == vt.ID {
				ids = append(ids, f.OptionID)
				found = true
				break
			}
		}
		if !found {
			return nil, "", false
		}
	}
	return ids, utils.TypeOrderKey(ids), true
}
