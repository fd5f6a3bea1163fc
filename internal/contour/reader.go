package contour

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// FormatError reports a malformed line in a contour file.
type FormatError struct {
	Line int // 1-based line number
	Msg  string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("contour: line %d: %s", e.Line, e.Msg)
}

// Read parses a Slab 1.0 contour file into a Set. Files ending in .gz
// are decompressed transparently.
//
// The format is a sequence of records: a single integer line opens a
// depth key, followed by lines of three whitespace-separated floats
// (longitude, latitude, depth-in-km), closed by a literal END line.
func Read(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("contour: open %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}
	return ReadFrom(r)
}

// ReadFrom parses contour records from r. Parsing is strictly
// sequential: exactly one depth key and one point list are open at a
// time, and a partial parse is never returned.
func ReadFrom(r io.Reader) (*Set, error) {
	set := NewSet()
	var (
		cur     []Point
		key     int
		haveKey bool
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if text == "END" {
			if !haveKey {
				return nil, &FormatError{Line: line, Msg: "END with no open contour"}
			}
			if len(cur) == 0 {
				return nil, &FormatError{Line: line, Msg: fmt.Sprintf("contour %d has no points", key)}
			}
			set.Put(&Contour{Depth: key, Points: cur})
			cur = nil
			haveKey = false
			continue
		}
		fields := strings.Fields(text)
		if len(fields) == 1 {
			k, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, &FormatError{Line: line, Msg: "bad depth key " + strconv.Quote(fields[0])}
			}
			if haveKey {
				return nil, &FormatError{Line: line, Msg: "depth key inside open contour"}
			}
			key = k
			haveKey = true
			cur = nil
			continue
		}
		if !haveKey {
			return nil, &FormatError{Line: line, Msg: "point before depth key"}
		}
		if len(fields) != 3 {
			return nil, &FormatError{Line: line, Msg: fmt.Sprintf("want 3 fields, got %d", len(fields))}
		}
		var pt Point
		for i, fv := range fields {
			v, err := strconv.ParseFloat(fv, 64)
			if err != nil {
				return nil, &FormatError{Line: line, Msg: "bad coordinate " + strconv.Quote(fv)}
			}
			pt[i] = v
		}
		cur = append(cur, pt)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if haveKey {
		return nil, &FormatError{Line: line, Msg: "unterminated contour (missing END)"}
	}
	return set, nil
}
