package writers

import (
	"io"

	"ggscaf-core/fasta"
)

// StartScaffoldWriter spins up a writer goroutine for assembled scaffold
// records. Close the returned channel to flush; the error channel yields
// exactly one value.
func StartScaffoldWriter(out io.Writer, width int, bufSize int) (chan<- fasta.Record, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	if width <= 0 {
		width = fasta.DefaultWidth
	}
	in := make(chan fasta.Record, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		for rec := range in {
			if err != nil {
				continue // drain after first failure
			}
			err = fasta.Write(out, []fasta.Record{rec}, width)
		}
		errCh <- err
	}()

	return in, errCh
}
