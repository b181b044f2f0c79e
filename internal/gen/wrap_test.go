package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFill_ShortInputStaysOnOneLine(t *testing.T) {
	assert.Equal(t, "        aaa bbb ccc", fill("aaa bbb ccc"))
}

func TestFill_BreaksAtWidth(t *testing.T) {
	w := strings.Repeat("a", 30)

	// indent(8) + 30 + 1 + 30 = 69 fits; the third token does not.
	got := fill(w + " " + w + " " + w)
	want := "        " + w + " " + w + "\n        " + w

	assert.Equal(t, want, got)
}

func TestFill_NeverSplitsTokens(t *testing.T) {
	long := strings.Repeat("x", 90)

	got := fill("aa " + long + " bb")
	lines := strings.Split(got, "\n")

	// The oversized token gets a line of its own, intact.
	assert.Equal(t, []string{
		"        aa",
		"        " + long,
		"        bb",
	}, lines)
}

func TestFill_LinesRespectWidth(t *testing.T) {
	tokens := []string{
		"x=x,", "y=y,", "s=s,", "c=c,", "marker=marker,", "cmap=cmap,",
		"norm=norm,", "vmin=vmin,", "vmax=vmax,", "alpha=alpha,",
		"linewidths=linewidths,", "verts=verts,", "**kwargs)",
	}

	got := fill(strings.Join(tokens, " "))

	for _, line := range strings.Split(got, "\n") {
		assert.True(t, strings.HasPrefix(line, fillIndent))
		assert.LessOrEqual(t, len(line), fillWidth)
	}

	// Re-joining the wrapped tokens reproduces the input.
	assert.Equal(t, strings.Join(tokens, " "), strings.Join(strings.Fields(got), " "))
}

func TestFill_Empty(t *testing.T) {
	assert.Equal(t, "", fill(""))
}
