package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"rankcache/internal/cache"
	"rankcache/internal/narrate"
)

func newRankedCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ranked VALUE...",
		Short: "Put values into a rank-based LRU/MRU cache",
		Long: `Put each VALUE into a rank-based cache, in order.

Every put assigns the value a fresh rank. When the cache is full a new value
evicts the lowest rank (lru) or the highest rank (mru).

Examples:
  rankcache ranked A B C D E D F
  rankcache ranked -p mru -c 2 x y z`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRanked(cmd.Context(), a.cfg.Capacity, a.cfg.Policy, args)
		},
	}
}

func (a *app) runRanked(ctx context.Context, capacity int, policy cache.Policy, values []string) error {
	c, err := cache.NewRanked[string](capacity, policy)
	if err != nil {
		return err
	}

	a.narrator.Heading("cache " + strings.ToUpper(policy.String()))
	for _, v := range values {
		if err := ctx.Err(); err != nil {
			return err
		}

		evicted, ok := c.Put(v)
		narrate.RankedPut(a.narrator, c, v, evicted, ok)
		if ok {
			a.log.Info().
				Stringer("policy", policy).
				Int("capacity", capacity).
				Str("put", v).
				Str("evicted", evicted).
				Msg("ranked cache eviction")
		}
	}

	if next, ok := c.FindEvictionCandidate(); ok {
		a.log.Debug().Str("candidate", next).Int("len", c.Len()).Msg("next eviction")
	}
	return nil
}
