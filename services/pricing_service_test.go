package services

import (
	"testing"

	"github.com/danish-manzoor/ecommerce-store-sub001/entity"
	"github.com/danish-manzoor/ecommerce-store-sub001/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestDefaultOptionMapPicksFirstOptionPerType(t *testing.T) {
	db := setupTestDB(t)
	p := seedShirt(t, db)

	engine := NewPricingEngine()
	defaults := engine.DefaultOptionMap(p)

	require.Len(t, defaults, 2)
	for _, vt := range p.VariationTypes {
		assert.Equal(t, vt.Options[0].ID, defaults[vt.ID], "type %s", vt.Name)
	}
	assert.Equal(t, "Red", option(t, p, "Red").Name)
	assert.Equal(t, defaults[p.VariationTypes[0].ID], option(t, p, "Red").ID)
	assert.Equal(t, defaults[p.VariationTypes[1].ID], option(t, p, "S").ID)
}

func TestDefaultOptionMapWithoutVariationTypes(t *testing.T) {
	engine := NewPricingEngine()
	p := &entity.Product{Price: 500}

	assert.Empty(t, engine.DefaultOptionMap(p))
	assert.Equal(t, int64(500), engine.ResolvePrice(p, nil))
}

func TestResolvePriceOverrideAndFallback(t *testing.T) {
	db := setupTestDB(t)
	p := seedShirt(t, db)

	red := option(t, p, "Red")
	large := option(t, p, "L")
	small := option(t, p, "S")

	price := int64(30000)
	qty := 7
	require.NoError(t, db.Create(&entity.ProductVariation{
		ProductID:              p.ID,
		VariationTypeOptionIDs: datatypes.JSON(utils.TypeOrderKey([]uint{red.ID, large.ID})),
		Price:                  &price,
		Quantity:               &qty,
	}).Error)
	require.NoError(t, db.Preload("Variations").First(p, p.ID).Error)

	engine := NewPricingEngine()

	// no matching override row: base price
	assert.Equal(t, int64(10000), engine.ResolvePrice(p, []uint{red.ID, small.ID}))

	// matching row, in either selection order
	assert.Equal(t, int64(30000), engine.ResolvePrice(p, []uint{red.ID, large.ID}))
	assert.Equal(t, int64(30000), engine.ResolvePrice(p, []uint{large.ID, red.ID}))

	assert.Equal(t, 7, engine.ResolveQuantity(p, []uint{large.ID, red.ID}))
	assert.Equal(t, 50, engine.ResolveQuantity(p, []uint{red.ID, small.ID}))
}

func TestResolvePriceNilOverrideFallsBack(t *testing.T) {
	db := setupTestDB(t)
	p := seedShirt(t, db)

	red := option(t, p, "Red")
	small := option(t, p, "S")

	// row exists but has no price override
	require.NoError(t, db.Create(&entity.ProductVariation{
		ProductID:              p.ID,
		VariationTypeOptionIDs: datatypes.JSON(utils.TypeOrderKey([]uint{red.ID, small.ID})),
	}).Error)
	require.NoError(t, db.Preload("Variations").First(p, p.ID).Error)

	engine := NewPricingEngine()
	assert.Equal(t, int64(10000), engine.ResolvePrice(p, []uint{small.ID, red.ID}))
}
