// Package fasta reads and writes multi-FASTA files and provides the
// sequence-level helpers the scaffolder needs: reverse complement and
// contig-end extraction.
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"ggscaf-core/scaferr"
)

// Record is a single FASTA sequence. ID is the header up to the first
// whitespace.
type Record struct {
	ID  string
	Seq []byte
}

// Set is an ordered collection of records with id lookup. Input order is
// preserved so output stays reproducible.
type Set struct {
	Records []Record
	index   map[string]int
}

// NewSet builds a Set from records. Later duplicates of an id override
// earlier ones in the index but keep their slice position.
func NewSet(recs []Record) *Set {
	s := &Set{Records: recs, index: make(map[string]int, len(recs))}
	for i, r := range recs {
		s.index[r.ID] = i
	}
	return s
}

// Get returns the sequence for id.
func (s *Set) Get(id string) ([]byte, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.Records[i].Seq, true
}

// Has reports whether id is present.
func (s *Set) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Len returns the number of records.
func (s *Set) Len() int { return len(s.Records) }

// Read parses multi-FASTA from r. name is used in error messages only.
// Sequence lines are concatenated; blank lines are skipped. Sequence
// data before the first header is a ParseError.
func Read(r io.Reader, name string) (*Set, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // tolerate single-line genomes
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		recs   []Record
		id     string
		seq    []byte
		lineNo int
		inRec  bool
	)
	flush := func() {
		recs = append(recs, Record{ID: id, Seq: seq})
		seq = nil
	}
	for sc.Scan() {
		lineNo++
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if inRec {
				flush()
			}
			id = headerID(line[1:])
			inRec = true
			continue
		}
		if !inRec {
			return nil, &scaferr.ParseError{File: name, Line: lineNo, Msg: "sequence data before first FASTA header"}
		}
		seq = append(seq, line...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan %s: %w", name, err)
	}
	if inRec {
		flush()
	}
	return NewSet(recs), nil
}

// Open reads a multi-FASTA file from path ("-" for stdin, .gz accepted).
func Open(path string) (*Set, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return Read(rc, path)
}

func headerID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
