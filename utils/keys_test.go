package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedIDKeyIsOrderInvariant(t *testing.T) {
	assert.Equal(t, "[2,5,9]", SortedIDKey([]uint{9, 2, 5}))
	assert.Equal(t, SortedIDKey([]uint{9, 2, 5}), SortedIDKey([]uint{5, 9, 2}))
	assert.Equal(t, "[]", SortedIDKey(nil))
}

func TestSortedIDKeyIsIdempotent(t *testing.T) {
	once := SortedIDKey([]uint{3, 1, 2})
	twice := SortedIDKey(ParseIDKey(once))
	assert.Equal(t, once, twice)
}

func TestSortedIDKeyDoesNotMutateInput(t *testing.T) {
	ids := []uint{9, 2, 5}
	SortedIDKey(ids)
	assert.Equal(t, []uint{9, 2, 5}, ids)
}

func TestTypeOrderKeyPreservesOrder(t *testing.T) {
	assert.Equal(t, "[9,2,5]", TypeOrderKey([]uint{9, 2, 5}))
	assert.Equal(t, "[]", TypeOrderKey(nil))
	assert.NotEqual(t, TypeOrderKey([]uint{9, 2}), SortedIDKey([]uint{9, 2}))
}

func TestParseIDKey(t *testing.T) {
	assert.Equal(t, []uint{1, 2, 3}, ParseIDKey("[1,2,3]"))
	assert.Nil(t, ParseIDKey("not json"))
}

func TestOrderNumberFormat(t *testing.T) {
	n := OrderNumber("ORD")
	assert.Len(t, n, 3+8+6)
	assert.True(t, strings.HasPrefix(n, "ORD"))
	for _, r := range n[11:] {
		assert.Contains(t, orderNumberCharset, string(r))
	}
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "classic-tee", Slugify("  Classic Tee "))
	assert.Equal(t, "item", Slugify("!!!"))
}
