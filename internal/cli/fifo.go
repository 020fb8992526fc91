package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"rankcache/internal/cache"
	"rankcache/internal/narrate"
)

type pair struct {
	key, value string
}

// parsePairs accepts key=value or a bare key, which is stored as its own value.
func parsePairs(args []string) []pair {
	out := make([]pair, 0, len(args))
	for _, arg := range args {
		k, v, found := strings.Cut(arg, "=")
		if !found {
			v = k
		}
		out = append(out, pair{key: k, value: v})
	}
	return out
}

func newFIFOCommand(a *app) *cobra.Command {
	var gets []string

	cmd := &cobra.Command{
		Use:     "fifo KEY[=VALUE]...",
		Aliases: []string{"insertion"},
		Short:   "Put pairs into an insertion-order cache",
		Long: `Put each KEY=VALUE into an insertion-order cache, in order.

When full, the oldest inserted key is evicted. Lookups never change the
order, and re-putting a present key only replaces its value.

Examples:
  rankcache fifo -c 3 A B C D E
  rankcache fifo -c 2 a=1 b=2 c=3 --get a --get c`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFIFO(cmd.Context(), a.cfg.Capacity, parsePairs(args), gets)
		},
	}
	cmd.Flags().StringArrayVarP(&gets, "get", "g", nil, "look up KEY after all puts (repeatable)")
	return cmd
}

func (a *app) runFIFO(ctx context.Context, capacity int, pairs []pair, gets []string) error {
	c, err := cache.NewInsertionOrder[string, string](capacity)
	if err != nil {
		return err
	}

	a.narrator.Heading("insertion order cache")
	for _, p := range pairs {
		if err := ctx.Err(); err != nil {
			return err
		}

		evicted, ok := c.Put(p.key, p.value)
		narrate.InsertionPut(a.narrator, c, p.key, p.value, evicted, ok)
		if ok {
			a.log.Info().
				Int("capacity", capacity).
				Str("put", p.key).
				Str("evicted", evicted).
				Msg("insertion order cache eviction")
		}
	}

	for _, k := range gets {
		v, ok := c.Get(k)
		narrate.InsertionGet(a.narrator, k, v, ok)
	}
	return nil
}
