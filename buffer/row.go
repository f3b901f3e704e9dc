// Package buffer implements the line-oriented text buffer and its
// incremental syntax highlighter. The two stay in one package because
// every mutation that can change a row's rendered bytes must also re-run
// the highlighter and, when its open-comment state flips, cascade into
// the rows that follow.
package buffer

import (
	"strings"

	"github.com/mbrdg/kilo-go/syntax"
)

// TabStop is the column width tabs expand to.
const TabStop = 8

// Row is one line of text. Raw holds the on-disk bytes (sans trailing
// newline); Render is the tab-expanded bytes used for display and search;
// HL is parallel to Render, one attribute per rendered byte.
type Row struct {
	idx           int
	Raw           []byte
	Render        []byte
	HL            []syntax.Attr
	OpenMLComment bool // true iff this row ends inside an unterminated multi-line comment
}

// Idx returns the row's current position in the buffer.
func (r *Row) Idx() int { return r.idx }

// Len returns the raw (unrendered) length of the row, used to keep the
// cursor's column within [0, row length].
func (r *Row) Len() int { return len(r.Raw) }

// RawToRender maps a raw-byte column to its rendered column, expanding
// tabs to the next multiple of TabStop.
func (r *Row) RawToRender(rawX int) int {
	rx := 0
	for i := 0; i < rawX && i < len(r.Raw); i++ {
		if r.Raw[i] == '\t' {
			rx += (TabStop - 1) - (rx % TabStop)
		}
		rx++
	}
	return rx
}

// RenderToRaw maps a rendered column back to a raw-byte column by walking
// forward until the render pointer passes the target.
func (r *Row) RenderToRaw(renderX int) int {
	curRX := 0
	cx := 0
	for ; cx < len(r.Raw); cx++ {
		if r.Raw[cx] == '\t' {
			curRX += (TabStop - 1) - (curRX % TabStop)
		}
		curRX++
		if curRX > renderX {
			return cx
		}
	}
	return cx
}

// updateRender recomputes Render from Raw, expanding tabs.
func (r *Row) updateRender() {
	var b strings.Builder
	b.Grow(len(r.Raw))
	col := 0
	for _, c := range r.Raw {
		if c == '\t' {
			b.WriteByte(' ')
			col++
			for col%TabStop != 0 {
				b.WriteByte(' ')
				col++
			}
			continue
		}
		b.WriteByte(c)
		col++
	}
	r.Render = []byte(b.String())
}
