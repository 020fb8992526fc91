// Package cli provides the Cobra commands for rankcache.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rankcache/internal/config"
	"rankcache/internal/logging"
	"rankcache/internal/narrate"
)

// app carries state resolved once in PersistentPreRunE and shared by subcommands.
type app struct {
	v        *viper.Viper
	cfgFile  string
	cfg      config.Config
	log      zerolog.Logger
	narrator *narrate.Narrator
}

// NewRootCommand builds the command tree with a fresh configuration.
func NewRootCommand() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "rankcache",
		Short: "Narrate bounded caches with LRU, MRU and insertion-order eviction",
		Long: `rankcache drives two in-memory caches and prints every put with its
eviction and the resulting cache state.

  ranked  rank-based cache evicting by LRU or MRU policy
  fifo    insertion-order cache evicting the oldest key
  demo    replay the reference scenarios for both caches`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (TOML)")
	flags.IntP("capacity", "c", 0, "maximum number of entries")
	flags.StringP("policy", "p", "", "ranked eviction policy: lru or mru")
	flags.String("log-level", "", "trace, debug, info, warn or error")
	flags.String("log-format", "", "console or json")
	flags.Bool("color", true, "colorize output")

	for key, name := range map[string]string{
		config.KeyCapacity:  "capacity",
		config.KeyPolicy:    "policy",
		config.KeyLogLevel:  "log-level",
		config.KeyLogFormat: "log-format",
		config.KeyColor:     "color",
	} {
		// Lookup cannot return nil for flags registered just above.
		_ = a.v.BindPFlag(key, flags.Lookup(name))
	}

	root.AddCommand(
		newRankedCommand(a),
		newFIFOCommand(a),
		newDemoCommand(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logging.New(cfg.Logging, cmd.ErrOrStderr())
	a.narrator = narrate.New(cmd.OutOrStdout(), cfg.Color)

	a.log.Debug().
		Int("capacity", cfg.Capacity).
		Stringer("policy", cfg.Policy).
		Str("command", cmd.Name()).
		Msg("configuration loaded")
	return nil
}

// Execute runs the command tree and returns the process exit code.
func Execute(ctx context.Context, args []string) int {
	root := NewRootCommand()
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return 1
	}
	return 0
}
