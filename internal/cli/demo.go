package cli

import (
	"github.com/spf13/cobra"

	"rankcache/internal/cache"
)

func newDemoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Replay the reference LRU, MRU and insertion-order scenarios",
		Long: `Replay fixed scenarios; capacity and policy settings are ignored.

  cache LRU (capacity 4):  A B C D E D F
  cache MRU (capacity 4):  A B C D E C D B
  insertion order (capacity 3):  A B C D E`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if err := a.runRanked(ctx, 4, cache.LRU, []string{"A", "B", "C", "D", "E", "D", "F"}); err != nil {
				return err
			}
			if err := a.runRanked(ctx, 4, cache.MRU, []string{"A", "B", "C", "D", "E", "C", "D", "B"}); err != nil {
				return err
			}
			return a.runFIFO(ctx, 3, parsePairs([]string{"A", "B", "C", "D", "E"}), nil)
		},
	}
}
