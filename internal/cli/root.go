// Package cli defines the ggscaf command tree.
package cli

import (
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ggscaf/internal/config"
	"ggscaf/internal/logging"
	"ggscaf/internal/version"
)

const envPrefix = "GGSCAF"

// State carries the resolved configuration into subcommands.
type State struct {
	Viper  *viper.Viper
	Params config.Params
}

// NewRootCmd builds the ggscaf root command with all subcommands
// attached.
func NewRootCmd() *cobra.Command {
	st := &State{Viper: viper.New()}

	var cfgFile, logLevel, logFormat string

	root := &cobra.Command{
		Use:           "ggscaf",
		Short:         "Guided genome scaffolder",
		Long:          "ggscaf orders and orients draft-assembly contigs along one or more related guiding genomes.",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.Setup(logFormat, logLevel); err != nil {
				return err
			}
			return loadConfig(st, cmd, cfgFile)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (YAML)")
	pf.StringVar(&logLevel, "log-level", "info", "logging level [debug|info|warn|error]")
	pf.StringVar(&logFormat, "log-format", logging.FormatText, "logging format [text|json]")

	d := config.Defaults()
	pf.Int("n-cut", d.NCut, "bases kept from each contig end (0 aligns whole contigs)")
	pf.Int("window-size", d.WindowSize, "gap agreement tolerance in bases")
	pf.Float64("threshold", d.Threshold, "min link support; values < 1 are a fraction of the guide count")
	pf.Int("n-guides", d.NGuides, "guide count used for fractional thresholds (0 = number of inputs)")
	pf.Int("min-fill", d.MinFill, "minimum N gap between joined contigs")
	pf.Bool("merge-overlaps", d.MergeOverlaps, "merge joins whose sequences confirm a negative gap")
	pf.Int("threads", d.Threads, "concurrent guide alignments (0 = all CPUs)")
	pf.Float64("identity-limit", d.IdentityLimit, "percent identity below which promer replaces nucmer")

	root.AddCommand(
		newRunCmd(st),
		newEndsCmd(st),
		newLinksCmd(st),
		newScaffoldCmd(st),
		newBreakpointsCmd(st),
		newStatsCmd(st),
	)
	return root
}

func loadConfig(st *State, cmd *cobra.Command, cfgFile string) error {
	v := st.Viper
	if err := v.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return err
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return err
		}
		log.Debug().Str("config", v.ConfigFileUsed()).Msg("config loaded")
	}

	p, err := config.FromViper(v)
	if err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}
	st.Params = p
	return nil
}

// Execute runs the root command; it is the whole program behind main.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("ggscaf failed")
		return 1
	}
	return 0
}

// openOut opens path for writing, with "-" meaning stdout.
func openOut(path string) (*os.File, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	fh, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return fh, fh.Close, nil
}
