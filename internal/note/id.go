package note

import (
	"crypto/md5"
	"encoding/hex"
	"time"
)

// IDLength is the number of hex characters in a note identifier.
const IDLength = 8

// GenerateID returns a short identifier derived from the current time.
// Collisions are possible in principle but acceptably rare for a
// single-user store; callers do not check for prior use.
func GenerateID() string {
	sum := md5.Sum([]byte(time.Now().String()))
	return hex.EncodeToString(sum[:])[:IDLength]
}
