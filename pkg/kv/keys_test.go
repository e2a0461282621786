package kv

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKey(t *testing.T) {
	now := time.UnixMilli(1760866200123)

	key := NewKey(KindMember, now)
	assert.Equal(t, "member:1760866200123", key)
	assert.Regexp(t, regexp.MustCompile(`^member:\d+$`), key)
}

// Batch keys minted inside the same millisecond must not collide.
func TestNewBatchKeySameMillisecond(t *testing.T) {
	now := time.UnixMilli(1760866200123)
	pattern := regexp.MustCompile(`^access:1760866200123_0(\.\d+)?$`)

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		key := NewBatchKey(KindAccess, now)
		assert.Regexp(t, pattern, key)
		assert.False(t, seen[key], "duplicated key %s", key)
		seen[key] = true
	}
}

func TestNewContentKey(t *testing.T) {
	a, err := NewContentKey(KindPayment, map[string]any{"memberName": "이수진", "amount": 59000})
	require.NoError(t, err)
	b, err := NewContentKey(KindPayment, map[string]any{"amount": 59000, "memberName": "이수진"})
	require.NoError(t, err)
	c, err := NewContentKey(KindPayment, map[string]any{"memberName": "이수진", "amount": 89000})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Regexp(t, regexp.MustCompile(`^payment:[0-9a-f]+$`), a)

	_, err = NewContentKey(KindPayment, func() {})
	assert.Error(t, err)
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "stats:", Prefix(KindStats))
}
