package utils

import (
	"crypto/rand"
	"time"
)

const orderNumberCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// OrderNumber builds a human-readable order number: prefix + YYYYMMDD +
// 6 random uppercase alphanumerics. Uniqueness is not checked here; the
// orders table carries a unique index and a collision fails the checkout
// transaction.
func OrderNumber(prefix string) string {
	suffix := make([]byte, 6)
	random := make([]byte, 6)
	if _, err := rand.Read(random); err != nil {
		// fall back to a time-derived suffix; still unique enough per day
		ns := time.Now().UnixNano()
		for i := range suffix {
			suffix[i] = orderNumberCharset[ns%int64(len(orderNumberCharset))]
			ns /= int64(len(orderNumberCharset))
		}
		return prefix + time.Now().Format("20060102") + string(suffix)
	}
	for i, b := range random {
		suffix[i] = orderNumberCharset[int(b)%len(orderNumberCharset)]
	}
	return prefix + time.Now().Format("20060102") + string(suffix)
}
