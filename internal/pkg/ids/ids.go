package ids

import (
	"crypto/rand"
	"math/big"
)

const (
	bookingAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	bookingIDLength = 12
)

// NewBookingID mints the externally visible booking identifier: 12 characters
// drawn uniformly from lowercase letters and digits. This id lives in the
// booking's fields and is never the storage key of the record.
func NewBookingID() string {
	max := big.NewInt(int64(len(bookingAlphabet)))
	buf := make([]byte, bookingIDLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the platform source is broken
			panic(err)
		}
		buf[i] = bookingAlphabet[n.Int64()]
	}
	return string(buf)
}
