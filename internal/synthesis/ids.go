package synthesis

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Record id prefixes.
const (
	ProjectIDPrefix = "PRJ"
	RoomIDPrefix    = "ROOM"
)

// NewShortID generates a short human-readable id with a prefix.
// Format: "PRJ-1234". Ids are not guaranteed unique.
func NewShortID(prefix string) (string, error) {
	n, err := randInt(1000, 9999)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%04d", prefix, n), nil
}

func randInt(min, max int64) (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max-min+1))
	if err != nil {
		return 0, err
	}
	return min + n.Int64(), nil
}
