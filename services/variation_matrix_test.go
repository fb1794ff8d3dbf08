package services

import (
	"testing"

	"github.com/danish-manzoor/ecommerce-store-sub001/entity"
	"github.com/danish-manzoor/ecommerce-store-sub001/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestBuildMatrixCartesianProduct(t *testing.T) {
	r := setupRepos(t)
	p := seedShirt(t, r.db)

	combos := BuildMatrix(p.VariationTypes, p.Quantity, p.Price)
	require.Len(t, combos, 4)

	// first type (Color) varies slowest
	var got [][]string
	for _, c := range combos {
		require.Len(t, c.Fields, 2)
		assert.Equal(t, "Color", c.Fields[0].TypeLabel)
		assert.Equal(t, "Size", c.Fields[1].TypeLabel)
		assert.Equal(t, 50, c.Quantity)
		assert.Equal(t, int64(10000), c.Price)
		assert.Zero(t, c.ID)
		got = append(got, []string{c.Fields[0].OptionName, c.Fields[1].OptionName})
	}
	assert.Equal(t, [][]string{
		{"Red", "S"}, {"Red", "L"},
		{"Black", "S"}, {"Black", "L"},
	}, got)
}

func TestBuildMatrixNoVariationTypes(t *testing.T) {
	assert.Empty(t, BuildMatrix(nil, 1, 100))
}

func TestMatrixEmptyForVariationlessProduct(t *testing.T) {
	r := setupRepos(t)
	p := &entity.Product{Name: "Mug", Slug: "mug", Price: 500, Quantity: 3}
	require.NoError(t, r.db.Create(p).Error)
	svc := NewProductAdminService(r.db, r.products, r.options)

	combos, err := svc.Matrix(p.ID)
	require.NoError(t, err)
	assert.Empty(t, combos)

	// round-tripping the empty grid persists nothing
	require.NoError(t, svc.SaveMatrix(p.ID, combos))
	rows, err := r.options.VariationsByProduct(p.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestMergeExistingOverlaysSavedRows(t *testing.T) {
	r := setupRepos(t)
	p := seedShirt(t, r.db)
	red := option(t, p, "Red").ID
	large := option(t, p, "L").ID

	qty := 7
	price := int64(30000)
	row := entity.ProductVariation{
		ProductID:              p.ID,
		VariationTypeOptionIDs: datatypes.JSON(utils.TypeOrderKey([]uint{red, large})),
		Quantity:               &qty,
		Price:                  &price,
	}
	require.NoError(t, r.db.Create(&row).Error)

	combos := MergeExisting(BuildMatrix(p.VariationTypes, p.Quantity, p.Price), []entity.ProductVariation{row})

	var overlaid, defaulted int
	for _, c := range combos {
		if c.ID == row.ID {
			overlaid++
			assert.Equal(t, []string{"Red", "L"}, []string{c.Fields[0].OptionName, c.Fields[1].OptionName})
			assert.Equal(t, 7, c.Quantity)
			assert.Equal(t, int64(30000), c.Price)
			continue
		}
		defaulted++
		assert.Zero(t, c.ID)
		assert.Equal(t, 50, c.Quantity)
		assert.Equal(t, int64(10000), c.Price)
	}
	assert.Equal(t, 1, overlaid)
	assert.Equal(t, 3, defaulted)
}

func TestMergeExistingNilOverridesKeepDefaults(t *testing.T) {
	r := setupRepos(t)
	p := seedShirt(t, r.db)
	red := option(t, p, "Red").ID
	small := option(t, p, "S").ID

	row := entity.ProductVariation{
		ProductID:              p.ID,
		VariationTypeOptionIDs: datatypes.JSON(utils.TypeOrderKey([]uint{red, small})),
	}
	row.ID = 42
	combos := MergeExisting(BuildMatrix(p.VariationTypes, p.Quantity, p.Price), []entity.ProductVariation{row})

	for _, c := range combos {
		if c.ID != 42 {
			continue
		}
		assert.Equal(t, 50, c.Quantity)
		assert.Equal(t, int64(10000), c.Price)
		return
	}
	t.Fatal("saved row not matched to a combination")
}

func TestSaveMatrixUpsertsByRecomputedKey(t *testing.T) {
	r := setupRepos(t)
	p := seedShirt(t, r.db)
	svc := NewProductAdminService(r.db, r.products, r.options)

	combos, err := svc.Matrix(p.ID)
	require.NoError(t, err)
	require.Len(t, combos, 4)

	for i := range combos {
		combos[i].Quantity = 10 + i
		combos[i].Price = int64(1000 * (i + 1))
	}
	require.NoError(t, svc.SaveMatrix(p.ID, combos))

	rows, err := r.options.VariationsByProduct(p.ID)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	// saving again updates in place instead of duplicating
	combos, err = svc.Matrix(p.ID)
	require.NoError(t, err)
	combos[0].Quantity = 99
	require.NoError(t, svc.SaveMatrix(p.ID, combos))

	rows, err = r.options.VariationsByProduct(p.ID)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	updated, err := svc.Matrix(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 99, updated[0].Quantity)
	assert.Equal(t, int64(1000), updated[0].Price)
}

func TestSaveMatrixRejectsIncompleteCombination(t *testing.T) {
	r := setupRepos(t)
	p := seedShirt(t, r.db)
	svc := NewProductAdminService(r.db, r.products, r.options)

	red := option(t, p, "Red")
	incomplete := Combination{
		Fields: []CombinationField{{
			VariationTypeID: red.VariationTypeID,
			OptionID:        red.ID,
		}},
		Quantity: 1,
		Price:    100,
	}
	assert.ErrorIs(t, svc.SaveMatrix(p.ID, []Combination{incomplete}), ErrInvalidOptions)
}

func TestSavedMatrixRowPricesResolveInCart(t *testing.T) {
	r := setupRepos(t)
	p := seedShirt(t, r.db)
	svc := NewProductAdminService(r.db, r.products, r.options)

	combos, err := svc.Matrix(p.ID)
	require.NoError(t, err)
	for i := range combos {
		combos[i].Price = int64(5000 + 100*i)
	}
	require.NoError(t, svc.SaveMatrix(p.ID, combos))

	// the pricing engine finds the row even though it keys combinations
	// ascending-sorted while the matrix stores them in type order
	reloaded, err := r.products.FindByID(p.ID)
	require.NoError(t, err)
	engine := NewPricingEngine()
	for i, c := range combos {
		assert.Equal(t, int64(5000+100*i), engine.ResolvePrice(reloaded, c.OptionIDs()))
	}
}
