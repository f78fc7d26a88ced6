package tiling

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"ggscaf-core/scaferr"
)

const recordFields = 10

// Parse reads one guiding genome's tiling from r. name labels errors
// and becomes the Genome id. Malformed records are rejected with a
// ParseError; use ParseSkipping for the lenient variant.
func Parse(r io.Reader, name string) (*Tiling, error) {
	t, _, err := parse(r, name, false)
	return t, err
}

// ParseSkipping reads a tiling, dropping malformed records instead of
// failing. The number of skipped lines is returned so callers can
// report the degradation.
func ParseSkipping(r io.Reader, name string) (*Tiling, int, error) {
	return parse(r, name, true)
}

func parse(r io.Reader, name string, skipMalformed bool) (*Tiling, int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)

	t := &Tiling{Genome: name}
	var (
		cur     Cluster
		started bool // a '>' header or record has been seen
		lineNo  int
		skipped int
	)
	flush := func() {
		if len(cur.Records) > 0 {
			t.Clusters = append(t.Clusters, cur)
		}
		cur = Cluster{}
	}
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, ">") {
			flush()
			cur.Ref = firstField(line[1:])
			started = true
			continue
		}
		rec, err := parseRecord(line)
		if err != nil {
			// show-tiling emits the reference path as a preamble
			// before the first header; tolerate it once.
			if !started {
				started = true
				continue
			}
			if skipMalformed {
				skipped++
				continue
			}
			return nil, skipped, &scaferr.ParseError{File: name, Line: lineNo, Msg: err.Error()}
		}
		started = true
		cur.Records = append(cur.Records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, skipped, fmt.Errorf("tiling scan %s: %w", name, err)
	}
	flush()
	return t, skipped, nil
}

func parseRecord(line string) (Record, error) {
	f := strings.Fields(line)
	if len(f) != recordFields {
		return Record{}, fmt.Errorf("expected %d fields, got %d", recordFields, len(f))
	}
	var (
		rec Record
		err error
	)
	if rec.RefStart, err = strconv.Atoi(f[0]); err != nil {
		return Record{}, fmt.Errorf("bad start %q", f[0])
	}
	if rec.RefEnd, err = strconv.Atoi(f[1]); err != nil {
		return Record{}, fmt.Errorf("bad end %q", f[1])
	}
	if rec.GapToNext, err = strconv.Atoi(f[2]); err != nil {
		return Record{}, fmt.Errorf("bad gap %q", f[2])
	}
	if rec.AlignLen, err = strconv.Atoi(f[3]); err != nil {
		return Record{}, fmt.Errorf("bad length %q", f[3])
	}
	if rec.Identity, err = strconv.ParseFloat(f[4], 64); err != nil {
		return Record{}, fmt.Errorf("bad identity %q", f[4])
	}
	if rec.ContigLen, err = strconv.Atoi(f[5]); err != nil {
		return Record{}, fmt.Errorf("bad contig length %q", f[5])
	}
	if rec.Coverage, err = strconv.ParseFloat(f[6], 64); err != nil {
		return Record{}, fmt.Errorf("bad coverage %q", f[6])
	}
	switch f[7] {
	case "+", "-":
		rec.Strand = f[7][0]
	default:
		return Record{}, fmt.Errorf("bad strand %q", f[7])
	}
	rec.Tag = f[8]
	rec.ContigID = f[9]
	return rec, nil
}

// ParseFile reads the tiling at path, using the file's base name
// (without extension) as the genome id.
func ParseFile(path string) (*Tiling, error) {
	fh, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &scaferr.MissingInputError{Path: path}
		}
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return Parse(fh, genomeName(path))
}

// SelectFile locates the tiling for genome at trim length nCut in dir.
// Tilings are named <genome>_<nCut>.tiling; a missing file is a
// MissingInputError.
func SelectFile(dir, genome string, nCut int) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("%s_%d.tiling", genome, nCut))
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", &scaferr.MissingInputError{Path: path}
		}
		return "", err
	}
	return path, nil
}

func genomeName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func firstField(s string) string {
	f := strings.Fields(s)
	if len(f) == 0 {
		return ""
	}
	return f[0]
}
