package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectByExtension(t *testing.T) {
	p := Select("main.c")
	if assert.NotNil(t, p) {
		assert.Equal(t, "c", p.Name)
	}

	assert.NotNil(t, Select("lib.h"))
	assert.NotNil(t, Select("app.cpp"))
	assert.Nil(t, Select("main.go"))
	assert.Nil(t, Select(""))
}

func TestIsSeparator(t *testing.T) {
	for _, b := range []byte(" \t\n,.()+-/*=~%<>[];") {
		assert.Truef(t, IsSeparator(b), "expected %q to be a separator", b)
	}
	assert.True(t, IsSeparator(0))
	assert.False(t, IsSeparator('a'))
	assert.False(t, IsSeparator('_'))
}

func TestAttrColor(t *testing.T) {
	assert.Equal(t, ColorCyan, Comment.Color())
	assert.Equal(t, ColorCyan, MultilineComment.Color())
	assert.Equal(t, ColorYellow, Keyword1.Color())
	assert.Equal(t, ColorGreen, Keyword2.Color())
	assert.Equal(t, ColorMagenta, String.Color())
	assert.Equal(t, ColorRed, Number.Color())
	assert.Equal(t, ColorBlue, Match.Color())
	assert.Equal(t, ColorWhite, Normal.Color())
}
