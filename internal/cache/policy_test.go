package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {
	cases := []struct {
		in   string
		want Policy
	}{
		{"lru", LRU},
		{"LRU", LRU},
		{" mru ", MRU},
		{"Mru", MRU},
	}
	for _, tt := range cases {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePolicy(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParsePolicy("lfu")
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "lru", LRU.String())
	assert.Equal(t, "mru", MRU.String())
	assert.Equal(t, "policy(9)", Policy(9).String())
}
