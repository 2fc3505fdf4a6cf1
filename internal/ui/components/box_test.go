package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxBlockStacksChildren(t *testing.T) {
	view := NewBox(NewText("one"), nil, NewText("two")).View()
	assert.Equal(t, []string{"one", "two"}, trimLines(view))
}

func TestRowJoinsWithGap(t *testing.T) {
	view := Row(NewText("a"), NewText("b")).WithSpace(1).View()
	assert.Equal(t, "a  b", view)
}

func TestRowWrapsAtAvailableWidth(t *testing.T) {
	row := Row(NewText("aaaa"), NewText("bbbb"), NewText("cccc")).WithSpace(1)
	ctx := DefaultContext().WithParentWidth(10)

	assert.Equal(t, []string{"aaaa  bbbb", "cccc"}, trimLines(row.ViewWithContext(ctx)))

	row.WithNoWrap(true)
	assert.Len(t, strings.Split(row.ViewWithContext(ctx), "\n"), 1)
}

func TestRowJustify(t *testing.T) {
	ctx := DefaultContext().WithParentWidth(10)

	between := Row(NewText("a"), NewText("b")).WithJustify(JustifySpaceBetween).ViewWithContext(ctx)
	assert.Equal(t, "a        b", between)

	end := Row(NewText("a")).WithJustify(JustifyEnd).ViewWithContext(ctx)
	assert.Equal(t, "         a", end)
}

func TestColumnGapAndStretch(t *testing.T) {
	view := Column(NewText("a"), NewText("b")).WithSpace(2).View()
	assert.Equal(t, []string{"a", "", "", "b"}, trimLines(view))

	ctx := DefaultContext().WithParentWidth(6)
	stretched := Column(NewText("a"), NewText("bb")).WithAlign(AlignStretch).ViewWithContext(ctx)
	for _, line := range strings.Split(stretched, "\n") {
		assert.Equal(t, 6, lipgloss.Width(line))
	}
}

func TestGridUsesThemeColumnsAndSpans(t *testing.T) {
	ctx := DefaultContext().WithParentWidth(22)
	grid := Grid(GridDefault,
		NewText("a"), NewText("b"),
		Span(2, NewText("wide")),
		NewText("c"),
	)
	lines := strings.Split(grid.ViewWithContext(ctx), "\n")

	// two columns of 10 with a gap of 2, one blank line between rows
	require.Len(t, lines, 5)
	assert.Equal(t, 22, lipgloss.Width(lines[0]))
	assert.True(t, strings.HasPrefix(lines[0], "a"))
	assert.Equal(t, "b", strings.TrimSpace(lines[0][12:]))
	assert.Equal(t, "wide", strings.TrimSpace(lines[2]))
	assert.Equal(t, "c", strings.TrimSpace(lines[4]))
}

func TestGridWithZeroThemeFallsBackToDefaultColumns(t *testing.T) {
	ctx := RenderContext{ParentWidth: 40}
	grid := Grid(GridDefault, NewText("a"), NewText("b"))

	var out string
	require.NotPanics(t, func() { out = grid.ViewWithContext(ctx) })

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "a"))
	assert.Contains(t, lines[0], "b")
}

func TestContainerCapsAndCentres(t *testing.T) {
	ctx := DefaultContext().WithParentWidth(120)
	box := NewBox(NewText("x")).AsContainer(ContainerS).WithGrow(true)

	view := box.ViewWithContext(ctx)
	assert.Equal(t, 120, lipgloss.Width(view))
	idx := strings.Index(view, "x")
	// (120-50)/2 cells of centring plus the container's own padding
	assert.Equal(t, 35+DefaultTheme().Layout.ColGap, idx)
}

func TestContainerWidths(t *testing.T) {
	assert.Equal(t, 0, ContainerWidth(ContainerMax))
	assert.Equal(t, 125, ContainerWidth(ContainerXL))
	assert.Equal(t, 100, ContainerWidth(ContainerL))
	assert.Equal(t, 75, ContainerWidth(ContainerM))
	assert.Equal(t, 50, ContainerWidth(ContainerS))
	assert.Equal(t, 100, ContainerWidth("huge"))
}

func trimLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}
