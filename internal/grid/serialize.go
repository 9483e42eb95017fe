package grid

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const header = "tilemap"

// Serialize dumps the grid as text: a "tilemap" line, a " tileSize N" line,
// then every value followed by one space with a newline after each row of
// Cols values.
func (g *Grid) Serialize() string {
	var b strings.Builder
	b.Grow(len(header) + 16 + len(g.cells)*2 + g.rows)
	b.WriteString(header)
	b.WriteString("\n tileSize ")
	b.WriteString(strconv.Itoa(g.tileSize))
	b.WriteByte('\n')
	for i, v := range g.cells {
		b.WriteString(strconv.Itoa(v))
		b.WriteByte(' ')
		if (i+1)%g.cols == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Parse reads text produced by Serialize. Rows come from the non-empty
// lines after the header and the column count from the first of them.
func Parse(text string) (*Grid, error) {
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<24)

	if !sc.Scan() || strings.TrimSpace(sc.Text()) != header {
		return nil, fmt.Errorf("%w: missing %q header", ErrMalformed, header)
	}
	if !sc.Scan() {
		return nil, fmt.Errorf("%w: missing tileSize line", ErrMalformed)
	}
	f := strings.Fields(sc.Text())
	if len(f) != 2 || f[0] != "tileSize" {
		return nil, fmt.Errorf("%w: bad tileSize line %q", ErrMalformed, sc.Text())
	}
	tileSize, err := strconv.Atoi(f[1])
	if err != nil || tileSize <= 0 {
		return nil, fmt.Errorf("%w: bad tile size %q", ErrMalformed, f[1])
	}

	var cells []int
	cols, rows := 0, 0
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if cols == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrMalformed, rows, len(fields), cols)
		}
		for _, s := range fields {
			v, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d: %v", ErrMalformed, rows, err)
			}
			cells = append(cells, v)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformed)
	}
	return &Grid{rows: rows, cols: cols, tileSize: tileSize, cells: cells}, nil
}

// Checksum hashes the shape, tile size and cell values. Two grids with the
// same Serialize output have the same checksum.
func (g *Grid) Checksum() uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, n := range [...]int{g.rows, g.cols, g.tileSize} {
		binary.LittleEndian.PutUint64(buf[:], uint64(n))
		_, _ = d.Write(buf[:])
	}
	for _, v := range g.cells {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
