package receipt

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GenerateOrderID produces a human-readable order identifier of the form
// MMS-YYYYMMDD-### with a zero-padded 3-digit random suffix.
func GenerateOrderID() string {
	now := time.Now().UTC()

	datePart := now.Format("20060102")

	n, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		// fallback: time-based entropy
		n = big.NewInt(now.UnixNano() % 1000)
	}

	return fmt.Sprintf("MMS-%s-%03d", datePart, n.Int64())
}
