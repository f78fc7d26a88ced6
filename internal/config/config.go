// Package config holds the scaffolding parameters shared by the
// subcommands and validates them before any stage runs.
package config

import (
	"runtime"

	"github.com/spf13/viper"

	"ggscaf-core/scaferr"
)

// Params are the knobs of the link/consensus/scaffold pipeline.
type Params struct {
	NGuides       int     `mapstructure:"n-guides"`       // guiding genomes considered (0 = all supplied)
	WindowSize    int     `mapstructure:"window-size"`    // gap-agreement tolerance across genomes, bases
	Threshold     float64 `mapstructure:"threshold"`      // min support: fraction of guides (<1) or absolute count (>=1)
	NCut          int     `mapstructure:"n-cut"`          // contig end-trim length for alignment (0 = whole contigs)
	MinFill       int     `mapstructure:"min-fill"`       // smallest N filler between joined contigs
	MergeOverlaps bool    `mapstructure:"merge-overlaps"` // merge contigs on confirmed negative-gap overlap
	Threads       int     `mapstructure:"threads"`        // parallel aligner invocations (0 = all CPUs)
	IdentityLimit float64 `mapstructure:"identity-limit"` // avg identity below which promer replaces nucmer
}

// Defaults mirror the documented parameter semantics.
func Defaults() Params {
	return Params{
		NGuides:       0,
		WindowSize:    1000,
		Threshold:     1,
		NCut:          2000,
		MinFill:       1,
		Threads:       0,
		IdentityLimit: 90,
	}
}

// FromViper decodes the bound configuration.
func FromViper(v *viper.Viper) (Params, error) {
	p := Defaults()
	if err := v.Unmarshal(&p); err != nil {
		return p, err
	}
	return p, nil
}

// Validate rejects parameter combinations the pipeline cannot honour.
// Violations are fatal; no stage runs with an invalid configuration.
func (p Params) Validate() error {
	if p.NGuides < 0 {
		return &scaferr.ConfigurationError{Param: "n-guides", Msg: "must be >= 0"}
	}
	if p.WindowSize <= 0 {
		return &scaferr.ConfigurationError{Param: "window-size", Msg: "must be positive"}
	}
	if p.Threshold <= 0 {
		return &scaferr.ConfigurationError{Param: "threshold", Msg: "must be positive"}
	}
	if p.NCut < 0 {
		return &scaferr.ConfigurationError{Param: "n-cut", Msg: "must be >= 0"}
	}
	if p.MinFill < 1 {
		return &scaferr.ConfigurationError{Param: "min-fill", Msg: "must be >= 1"}
	}
	if p.Threads < 0 {
		return &scaferr.ConfigurationError{Param: "threads", Msg: "must be >= 0"}
	}
	if p.IdentityLimit < 0 || p.IdentityLimit > 100 {
		return &scaferr.ConfigurationError{Param: "identity-limit", Msg: "must be a percentage"}
	}
	return nil
}

// EffectiveThreads resolves 0 to the CPU count.
func (p Params) EffectiveThreads() int {
	if p.Threads > 0 {
		return p.Threads
	}
	return runtime.NumCPU()
}
