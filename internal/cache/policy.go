package cache

import (
	"fmt"
	"strings"
)

// Policy selects which end of the rank order a Ranked cache evicts from.
type Policy int

const (
	// LRU evicts the entry with the lowest rank.
	LRU Policy = iota
	// MRU evicts the entry with the highest rank.
	MRU
)

func (p Policy) String() string {
	switch p {
	case LRU:
		return "lru"
	case MRU:
		return "mru"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

func (p Policy) valid() bool {
	return p == LRU || p == MRU
}

// ParsePolicy accepts "lru" or "mru" in any case.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lru":
		return LRU, nil
	case "mru":
		return MRU, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}
