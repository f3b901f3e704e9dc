package buffer

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"github.com/mbrdg/kilo-go/syntax"
)

// Buffer is the ordered sequence of Rows that make up the file being
// edited.
type Buffer struct {
	rows     []Row
	dirty    int
	filename string
	profile  *syntax.Profile
}

// RowCount returns the number of rows currently in the buffer.
func (b *Buffer) RowCount() int { return len(b.rows) }

// Row returns a pointer to the row at i. Callers must keep i in
// [0, RowCount()).
func (b *Buffer) Row(i int) *Row { return &b.rows[i] }

// Dirty reports whether the buffer has unsaved mutations.
func (b *Buffer) Dirty() bool { return b.dirty > 0 }

// Filename returns the buffer's associated path, or "" if unnamed.
func (b *Buffer) Filename() string { return b.filename }

// Profile returns the syntax profile selected for this buffer, or nil.
func (b *Buffer) Profile() *syntax.Profile { return b.profile }

// FileType returns the profile's display name, or "no ft" if none is
// selected.
func (b *Buffer) FileType() string {
	if b.profile == nil {
		return "no ft"
	}
	return b.profile.Name
}

// markDirty increments the dirty counter.
func (b *Buffer) markDirty() { b.dirty++ }

// InsertRow inserts a new row with the given raw bytes at position at,
// shifting every row from at onward down by one. It triggers a highlight update on the new row, which may
// cascade forward.
func (b *Buffer) InsertRow(at int, raw []byte) {
	if at < 0 || at > len(b.rows) {
		return
	}
	row := Row{Raw: append([]byte(nil), raw...)}
	row.updateRender()

	b.rows = append(b.rows, Row{})
	copy(b.rows[at+1:], b.rows[at:])
	b.rows[at] = row

	for i := at; i < len(b.rows); i++ {
		b.rows[i].idx = i
	}

	b.markDirty()
	b.rehighlightFrom(at)
}

// DeleteRow removes the row at position at, shifting subsequent rows up
// and cascading a highlight update into the row that takes its place.
func (b *Buffer) DeleteRow(at int) {
	if at < 0 || at >= len(b.rows) {
		return
	}
	b.rows = append(b.rows[:at], b.rows[at+1:]...)
	for i := at; i < len(b.rows); i++ {
		b.rows[i].idx = i
	}
	b.markDirty()
	if at < len(b.rows) {
		b.rehighlightFrom(at)
	}
}

// RowInsertChar inserts c at raw offset at within the given row and
// regenerates its render/highlight state.
func (b *Buffer) RowInsertChar(row *Row, at int, c byte) {
	if at < 0 || at > len(row.Raw) {
		at = len(row.Raw)
	}
	row.Raw = append(row.Raw, 0)
	copy(row.Raw[at+1:], row.Raw[at:])
	row.Raw[at] = c
	row.updateRender()
	b.markDirty()
	b.rehighlightFrom(row.idx)
}

// RowDeleteChar deletes the byte at raw offset at within row.
func (b *Buffer) RowDeleteChar(row *Row, at int) {
	if at < 0 || at >= len(row.Raw) {
		return
	}
	row.Raw = append(row.Raw[:at], row.Raw[at+1:]...)
	row.updateRender()
	b.markDirty()
	b.rehighlightFrom(row.idx)
}

// RowAppend appends text to the end of row's raw bytes, used to join rows
// on backspace-at-column-0.
func (b *Buffer) RowAppend(row *Row, text []byte) {
	row.Raw = append(row.Raw, text...)
	row.updateRender()
	b.markDirty()
	b.rehighlightFrom(row.idx)
}

// SplitRow splits row at raw offset at: a new row is inserted immediately
// after it containing the suffix, and row truncates to the prefix.
func (b *Buffer) SplitRow(row *Row, at int) {
	suffix := append([]byte(nil), row.Raw[at:]...)
	at0 := row.idx
	row.Raw = row.Raw[:at]
	row.updateRender()
	b.InsertRow(at0+1, suffix)
	// InsertRow already marked dirty and rehighlighted from at0+1; the
	// truncated row itself also needs its own highlight recomputed since
	// its render bytes changed.
	b.rehighlightFrom(at0)
}

// rehighlightFrom recomputes highlight state starting at row index `from`
// and walks forward iteratively (not recursively, to avoid unbounded
// stack depth on long files with an open multi-line comment), stopping as
// soon as a row's OpenMLComment flag does not change.
func (b *Buffer) rehighlightFrom(from int) {
	if from < 0 || from >= len(b.rows) {
		return
	}
	for i := from; i < len(b.rows); i++ {
		prevOpen := false
		if i > 0 {
			prevOpen = b.rows[i-1].OpenMLComment
		}
		changed := highlight(&b.rows[i], b.profile, prevOpen)
		if !changed {
			break
		}
	}
}

// RehighlightAll unconditionally recomputes every row's highlight state
// from scratch, used after a full file load or after selecting a new
// syntax profile. Unlike rehighlightFrom, it never stops early:
// an unchanged OpenMLComment flag partway through does not mean the rows
// after it are already correctly highlighted, since they may never have
// been highlighted at all yet.
func (b *Buffer) RehighlightAll() {
	for i := range b.rows {
		prevOpen := false
		if i > 0 {
			prevOpen = b.rows[i-1].OpenMLComment
		}
		highlight(&b.rows[i], b.profile, prevOpen)
	}
}

// Load reads filename line by line into a fresh buffer, stripping a
// trailing \r\n or \n per row. It also
// selects a syntax profile from the filename and highlights every row.
func (b *Buffer) Load(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("open %s: %w", filename, err)
	}
	defer f.Close()

	b.rows = nil
	b.filename = filename
	b.profile = syntax.Select(filename)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimRight(scanner.Bytes(), "\r")
		row := Row{Raw: append([]byte(nil), line...)}
		row.updateRender()
		row.idx = len(b.rows)
		b.rows = append(b.rows, row)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", filename, err)
	}

	b.RehighlightAll()
	b.dirty = 0
	return nil
}

// SelectProfile re-selects and applies a syntax profile for the buffer's
// current filename, re-highlighting every row. Used after a Save-As
// prompt assigns a filename to a previously unnamed buffer.
func (b *Buffer) SelectProfile() {
	b.profile = syntax.Select(b.filename)
	b.RehighlightAll()
}

// SetFilename assigns filename (used by the Save-As prompt) without
// touching row contents.
func (b *Buffer) SetFilename(filename string) { b.filename = filename }

// Serialize renders the buffer as row[0] + "\n" + row[1] + "\n" + ....
func (b *Buffer) Serialize() []byte {
	var buf bytes.Buffer
	for i := range b.rows {
		buf.Write(b.rows[i].Raw)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Save truncates and rewrites the buffer's filename with its serialized
// contents, zeroing the dirty counter on success. filename must already be
// set (the caller is responsible for prompting).
func (b *Buffer) Save() (int, error) {
	contents := b.Serialize()
	if err := os.WriteFile(b.filename, contents, 0644); err != nil {
		return 0, fmt.Errorf("write %s: %w", b.filename, err)
	}
	b.dirty = 0
	return len(contents), nil
}
