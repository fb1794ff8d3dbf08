package utils

import (
	"encoding/json"
	"sort"
)

// SortedIDKey returns the canonical cart/pricing match key for an option-id
// set: the ids sorted ascending, JSON-encoded. Selection order must not
// matter, so the same combination always yields the same key.
func SortedIDKey(ids []uint) string {
	sorted := make([]uint, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	b, _ := json.Marshal(sorted)
	return string(b)
}

// TypeOrderKey JSON-encodes the ids as given, without sorting. The admin
// variation matrix matches persisted rows on this key, where the ids already
// follow the product's variation-type order. Note this deliberately differs
// from SortedIDKey; the two match keys are not interchangeable.
func TypeOrderKey(ids []uint) string {
	if ids == nil {
		ids = []uint{}
	}
	b, _ := json.Marshal(ids)
	return string(b)
}

// ParseIDKey decodes either key form back into ids.
func ParseIDKey(key string) []uint {
	var ids []uint
	if err := json.Unmarshal([]byte(key), &ids); err != nil {
		return nil
	}
	return ids
}
