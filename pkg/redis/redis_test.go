package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapePattern(t *testing.T) {
	tests := []struct {
		prefix   string
		expected string
	}{
		{prefix: "member:", expected: "member:"},
		{prefix: "a*b", expected: `a\*b`},
		{prefix: "q?[x]", expected: `q\?\[x\]`},
		{prefix: `back\slash`, expected: `back\\slash`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, escapePattern(tt.prefix))
	}
}
