package kv

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Record kinds and their prefixes.
const (
	KindMember  = "member"
	KindPayment = "payment"
	KindAccess  = "access"
	KindStats   = "stats"
)

// Prefix returns the scan prefix of a kind.
func Prefix(kind string) string {
	return kind + ":"
}

// NewKey mints the key of a single insert: {kind}:{unixMillis}.
func NewKey(kind string, now time.Time) string {
	return Prefix(kind) + strconv.FormatInt(now.UnixMilli(), 10)
}

// NewBatchKey mints a key for batch inserts, suffixed with a random fraction
// so many inserts inside the same millisecond don't collide.
func NewBatchKey(kind string, now time.Time) string {
	return fmt.Sprintf("%s_%s", NewKey(kind, now), strconv.FormatFloat(rand.Float64(), 'f', -1, 64))
}

// NewContentKey keys a value by the hash of its JSON form.
// Storing the same content twice lands on the same key.
func NewContentKey(kind string, value any) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("couldn't hash value: %w", err)
	}
	return Prefix(kind) + strconv.FormatUint(xxhash.Sum64(data), 16), nil
}
