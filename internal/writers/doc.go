// Package writers provides output goroutines and table renderers for
// scaffold sequences, link tables, assembly statistics and breakpoint
// reports.
package writers
