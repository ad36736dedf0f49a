package orders

import (
	"crypto/rand"
	"encoding/binary"
	"time"
)

const (
	trackingPrefix   = "TRK"
	trackingAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	trackingLength   = 9
)

// NewTrackingID returns a shopper-facing order reference like
// "TRK7F2K9QX1M". The format is fixed at "TRK" plus nine characters from
// [A-Z0-9] for compatibility with previously persisted orders; collisions
// are not existence-checked, the unique index on the column is the
// backstop.
func NewTrackingID() string {
	buf := make([]byte, trackingLength)
	if _, err := rand.Read(buf); err != nil {
		binary.LittleEndian.PutUint64(buf, uint64(time.Now().UnixNano()))
	}
	for i, b := range buf {
		buf[i] = trackingAlphabet[int(b)%len(trackingAlphabet)]
	}
	return trackingPrefix + string(buf)
}
