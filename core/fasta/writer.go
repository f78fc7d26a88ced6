package fasta

import (
	"bufio"
	"io"
)

// DefaultWidth is the column at which sequence lines wrap.
const DefaultWidth = 80

// Write emits records as multi-FASTA with sequence lines wrapped at
// width columns (DefaultWidth when width <= 0).
func Write(w io.Writer, recs []Record, width int) error {
	if width <= 0 {
		width = DefaultWidth
	}
	bw := bufio.NewWriter(w)
	for _, r := range recs {
		if _, err := bw.WriteString(">" + r.ID + "\n"); err != nil {
			return err
		}
		for off := 0; off < len(r.Seq); off += width {
			end := off + width
			if end > len(r.Seq) {
				end = len(r.Seq)
			}
			if _, err := bw.Write(r.Seq[off:end]); err != nil {
				return err
			}
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
		if len(r.Seq) == 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
