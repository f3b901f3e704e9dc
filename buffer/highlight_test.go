package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbrdg/kilo-go/syntax"
)

func cProfile() *syntax.Profile {
	for i := range syntax.Table {
		if syntax.Table[i].Name == "c" {
			return &syntax.Table[i]
		}
	}
	return nil
}

func TestHighlightKeywordsStringsNumbers(t *testing.T) {
	var b Buffer
	b.InsertRow(0, []byte(`int x = 42;`))
	b.InsertRow(1, []byte(`"hi"`))

	profile := cProfile()
	require.NotNil(t, profile)
	b.profile = profile
	b.RehighlightAll()

	row0 := b.Row(0)
	assert.Equal(t, syntax.Keyword2, row0.HL[0]) // 'i' of "int"
	assert.Equal(t, syntax.Keyword2, row0.HL[2]) // 't' of "int"
	assert.Equal(t, syntax.Normal, row0.HL[4])   // 'x'
	assert.Equal(t, syntax.Number, row0.HL[8])   // '4' of "42"
	assert.Equal(t, syntax.Number, row0.HL[9])   // '2' of "42"

	row1 := b.Row(1)
	for i := range row1.HL {
		assert.Equal(t, syntax.String, row1.HL[i])
	}
}

func TestHighlightMultilineCommentCascade(t *testing.T) {
	var b Buffer
	b.InsertRow(0, []byte("/* a"))
	b.InsertRow(1, []byte("b"))
	b.InsertRow(2, []byte("c */"))
	b.InsertRow(3, []byte("d"))

	b.profile = cProfile()
	b.RehighlightAll()

	for r := 0; r < 3; r++ {
		row := b.Row(r)
		for i := range row.HL {
			assert.Equalf(t, syntax.MultilineComment, row.HL[i], "row %d byte %d", r, i)
		}
	}
	assert.True(t, b.Row(0).OpenMLComment)
	assert.True(t, b.Row(1).OpenMLComment)
	assert.False(t, b.Row(2).OpenMLComment)

	row3 := b.Row(3)
	for i := range row3.HL {
		assert.Equal(t, syntax.Normal, row3.HL[i])
	}
}

func TestHighlightCascadeStopsWhenCommentStateUnchanged(t *testing.T) {
	var b Buffer
	b.InsertRow(0, []byte("int a;"))
	b.InsertRow(1, []byte("int b;"))
	b.profile = cProfile()
	b.RehighlightAll()

	before := append([]syntax.Attr(nil), b.Row(1).HL...)

	row0 := b.Row(0)
	b.RowInsertChar(row0, len(row0.Raw), 'x')

	assert.Equal(t, before, b.Row(1).HL, "editing row 0 must not change row 1's highlight when comment state is unaffected")
}

func TestSingleLineComment(t *testing.T) {
	var b Buffer
	b.InsertRow(0, []byte("int x; // trailing"))
	b.profile = cProfile()
	b.RehighlightAll()

	row := b.Row(0)
	commentStart := len("int x; ")
	for i := commentStart; i < len(row.HL); i++ {
		assert.Equal(t, syntax.Comment, row.HL[i])
	}
}
