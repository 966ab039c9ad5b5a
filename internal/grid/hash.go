package grid

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cespare/xxhash"
)

// Hash fingerprints the board contents (dimensions, then type and level of
// every cell). Tile IDs are not included, so two boards that look the same
// hash the same.
func (g *Grid) Hash() uint64 {
	buf := make([]byte, 0, 16+len(g.cells)*16)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(g.rows))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(g.cols))
	for _, t := range g.cells {
		if t == nil {
			buf = binary.LittleEndian.AppendUint64(buf, ^uint64(0))
			buf = binary.LittleEndian.AppendUint64(buf, 0)
			continue
		}
		buf = binary.LittleEndian.AppendUint64(buf, uint64(t.Type))
		buf = binary.LittleEndian.AppendUint64(buf, uint64(t.Level))
	}
	return xxhash.Sum64(buf)
}

// String renders the board one row per line. Empty cells print as ".",
// level-1 tiles as their type, higher levels as type^level.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := range g.rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range g.cols {
			if c > 0 {
				sb.WriteByte(' ')
			}
			t := g.Get(C(r, c))
			switch {
			case t == nil:
				sb.WriteByte('.')
			case t.Level > 1:
				fmt.Fprintf(&sb, "%d^%d", t.Type, t.Level)
			default:
				fmt.Fprintf(&sb, "%d", t.Type)
			}
		}
	}
	return sb.String()
}
