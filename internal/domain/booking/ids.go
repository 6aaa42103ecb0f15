package booking

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

const (
	alphabet         = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	bookingIDSuffix  = 8
	PickupCodeLength = 6
)

// IDGenerator produces human-facing identifiers for new bookings.
type IDGenerator interface {
	BookingID(now time.Time) string
	PickupCode() string
}

type RandomIDGenerator struct{}

func NewRandomIDGenerator() *RandomIDGenerator {
	return &RandomIDGenerator{}
}

// BookingID has the form RSB-<year>-<8 base-36 chars>.
func (RandomIDGenerator) BookingID(now time.Time) string {
	return fmt.Sprintf("RSB-%d-%s", now.Year(), randomBase36(bookingIDSuffix))
}

func (RandomIDGenerator) PickupCode() string {
	return randomBase36(PickupCodeLength)
}

func randomBase36(n int) string {
	var sb strings.Builder
	sb.Grow(n)
	max := big.NewInt(int64(len(alphabet)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic("crypto/rand unavailable: " + err.Error())
		}
		sb.WriteByte(alphabet[idx.Int64()])
	}
	return sb.String()
}
