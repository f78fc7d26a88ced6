// Package scaferr defines the error taxonomy shared by the scaffolding
// pipeline: parse failures, missing alignment artefacts, link-graph
// topology violations and invalid parameters. All types are matchable
// with errors.As.
package scaferr

import "fmt"

// ParseError reports a malformed record in a tiling, link or FASTA file.
type ParseError struct {
	File string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("parse: line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("parse %s: line %d: %s", e.File, e.Line, e.Msg)
}

// MissingInputError reports an expected tiling or alignment output that
// is absent on disk.
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing input: %s", e.Path)
}

// TopologyError reports residual branching in a consensus link set.
// It signals an internal-consistency failure: conflict resolution must
// leave every contig end with at most one link per direction.
type TopologyError struct {
	End string
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("link topology: branching at %s", e.End)
}

// ConfigurationError reports an invalid pipeline parameter.
type ConfigurationError struct {
	Param string
	Msg   string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Param, e.Msg)
}
