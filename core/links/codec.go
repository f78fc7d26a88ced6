package links

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ggscaf-core/scaferr"
)

// The contig-link file is the durable output of consensus selection:
// one retained link per line, tab-delimited as
//
//	from-contig  from-orientation  to-contig  to-orientation  gap
//
// Line order is not significant. Blank lines and '#' comments are
// ignored on read.

// WriteLinks persists a consensus link set.
func WriteLinks(w io.Writer, ls []Link) error {
	bw := bufio.NewWriter(w)
	for _, l := range ls {
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\t%s\t%d\n",
			l.From, l.FromOrient, l.To, l.ToOrient, l.Gap); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadLinks parses a contig-link file. name labels errors. Malformed
// lines are ParseErrors; the returned set is topology-checked so a
// hand-edited file cannot smuggle branching into the scaffold builder.
func ReadLinks(r io.Reader, name string) ([]Link, error) {
	sc := bufio.NewScanner(r)
	var (
		out    []Link
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) != 5 {
			return nil, &scaferr.ParseError{File: name, Line: lineNo, Msg: fmt.Sprintf("expected 5 fields, got %d", len(f))}
		}
		fo, err := parseOrient(f[1])
		if err != nil {
			return nil, &scaferr.ParseError{File: name, Line: lineNo, Msg: err.Error()}
		}
		to, err := parseOrient(f[3])
		if err != nil {
			return nil, &scaferr.ParseError{File: name, Line: lineNo, Msg: err.Error()}
		}
		gap, err := strconv.Atoi(f[4])
		if err != nil {
			return nil, &scaferr.ParseError{File: name, Line: lineNo, Msg: fmt.Sprintf("bad gap %q", f[4])}
		}
		out = append(out, Link{
			From:       f[0],
			FromOrient: fo,
			To:         f[2],
			ToOrient:   to,
			Gap:        gap,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("links scan %s: %w", name, err)
	}
	if err := CheckTopology(out); err != nil {
		return nil, err
	}
	return out, nil
}

func parseOrient(s string) (Orient, error) {
	switch s {
	case "+":
		return Forward, nil
	case "-":
		return Reverse, nil
	}
	return 0, fmt.Errorf("bad orientation %q", s)
}
