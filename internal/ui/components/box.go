package components

import (
	"strings"

	"github.com/alexisbeaulieu97/mora/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Direction specifies the main axis of a flex Box.
type Direction int

const (
	DirectionRow Direction = iota
	DirectionColumn
)

// Align positions children on the cross axis.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	AlignStretch
)

// Justify distributes children on the main axis of a row.
type Justify int

const (
	JustifyStart Justify = iota
	JustifyCenter
	JustifyEnd
	JustifySpaceBetween
)

// ContainerSize names a maximum container width.
type ContainerSize string

const (
	ContainerMax ContainerSize = "max"
	ContainerXL  ContainerSize = "xl"
	ContainerL   ContainerSize = "l"
	ContainerM   ContainerSize = "m"
	ContainerS   ContainerSize = "s"
)

// containerWidths are in cells; zero means the full available width.
var containerWidths = map[ContainerSize]int{
	ContainerMax: 0,
	ContainerXL:  125,
	ContainerL:   100,
	ContainerM:   75,
	ContainerS:   50,
}

// ContainerWidth returns the cell width for size, defaulting to ContainerL.
func ContainerWidth(size ContainerSize) int {
	if w, ok := containerWidths[size]; ok {
		return w
	}
	return containerWidths[ContainerL]
}

// GridDefault asks a Box grid to use the theme's column count.
const GridDefault = -1

// Box is the layout primitive: a block, a flex row or column, a grid, or a
// centred container.
type Box struct {
	BaseComponent
	children       []ui.Renderable
	flex           bool
	direction      Direction
	noWrap         bool
	align          Align
	justify        Justify
	space          int
	colCount       int
	container      bool
	containerWidth int
	grow           bool
}

// NewBox creates a block box; children stack top to bottom.
func NewBox(children ...ui.Renderable) *Box {
	return &Box{
		BaseComponent: NewBaseComponent(),
		children:      children,
	}
}

// Row creates a flex row.
func Row(children ...ui.Renderable) *Box {
	return NewBox(children...).WithFlex(DirectionRow)
}

// Column creates a flex column.
func Column(children ...ui.Renderable) *Box {
	return NewBox(children...).WithFlex(DirectionColumn)
}

// Grid creates a grid with cols columns; GridDefault uses the theme's count.
func Grid(cols int, children ...ui.Renderable) *Box {
	return NewBox(children...).WithColumns(cols)
}

// View renders the box and its children.
func (b *Box) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the box with layout context.
func (b *Box) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	avail := ctx.availableWidth()

	padX := 0
	if b.container {
		padX = theme.Layout.ColGap
		if b.containerWidth > 0 && (avail == 0 || b.containerWidth < avail) {
			avail = b.containerWidth
		}
	}
	inner := avail
	if inner > 0 {
		inner -= 2 * padX
		if inner < 1 {
			inner = 1
		}
	}

	childCtx := ctx.WithParentWidth(inner).WithConstraints(Unconstrained())

	var content string
	switch {
	case b.colCount != 0:
		content = b.renderGrid(childCtx, inner)
	case b.flex && b.direction == DirectionRow:
		content = b.renderRow(childCtx, inner)
	case b.flex:
		content = b.renderColumn(childCtx, inner)
	default:
		content = lipgloss.JoinVertical(lipgloss.Left, b.renderChildren(childCtx)...)
	}

	style := b.ComputeStyle(theme)
	if padX > 0 {
		style = style.PaddingLeft(padX).PaddingRight(padX)
	}
	if b.grow && avail > 0 {
		style = style.Width(avail)
	}
	out := style.Render(content)

	if b.container && ctx.ParentWidth > lipgloss.Width(out) {
		out = lipgloss.PlaceHorizontal(ctx.ParentWidth, lipgloss.Center, out)
	}
	return out
}

func (b *Box) renderChildren(ctx RenderContext) []string {
	views := make([]string, 0, len(b.children))
	for _, child := range b.children {
		if child == nil {
			continue
		}
		if s, ok := child.(*spanned); ok {
			child = s.child
		}
		views = append(views, render(child, ctx))
	}
	return views
}

func (b *Box) renderRow(ctx RenderContext, width int) string {
	views := b.renderChildren(ctx)
	if len(views) == 0 {
		return ""
	}
	gap := SpaceX(ctx.Theme, b.space)
	pos := b.crossPosition(lipgloss.Top, lipgloss.Center, lipgloss.Bottom)

	lines := [][]string{views}
	if !b.noWrap && width > 0 {
		lines = wrapRow(views, gap, width)
	}

	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, b.justifyRow(line, gap, width, pos))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (b *Box) justifyRow(views []string, gap, width int, pos lipgloss.Position) string {
	joined := joinWithGap(views, gap, pos)
	if width <= 0 {
		return joined
	}
	used := lipgloss.Width(joined)
	if used >= width {
		return joined
	}
	switch b.justify {
	case JustifyCenter:
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, joined)
	case JustifyEnd:
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, joined)
	case JustifySpaceBetween:
		if len(views) < 2 {
			return joined
		}
		total := 0
		for _, v := range views {
			total += lipgloss.Width(v)
		}
		free := width - total
		slots := len(views) - 1
		parts := make([]string, 0, len(views)*2-1)
		for i, v := range views {
			if i > 0 {
				w := free / slots
				if i <= free%slots {
					w++
				}
				parts = append(parts, strings.Repeat(" ", w))
			}
			parts = append(parts, v)
		}
		return lipgloss.JoinHorizontal(pos, parts...)
	default:
		return joined
	}
}

func (b *Box) renderColumn(ctx RenderContext, width int) string {
	views := b.renderChildren(ctx)
	if len(views) == 0 {
		return ""
	}
	pos := b.crossPosition(lipgloss.Left, lipgloss.Center, lipgloss.Right)
	if b.align == AlignStretch && width > 0 {
		for i, v := range views {
			views[i] = lipgloss.NewStyle().Width(width).Render(v)
		}
	}

	gap := SpaceY(ctx.Theme, b.space)
	if gap == 0 {
		return lipgloss.JoinVertical(pos, views...)
	}
	spacer := strings.Repeat("\n", gap-1)
	parts := make([]string, 0, len(views)*2-1)
	for i, v := range views {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, v)
	}
	return lipgloss.JoinVertical(pos, parts...)
}

func (b *Box) renderGrid(ctx RenderContext, width int) string {
	layout := ctx.Theme.Normalize().Layout
	cols := b.colCount
	if cols == GridDefault || cols < 0 {
		cols = layout.ColCount
	}
	gap := layout.ColGap

	cell := 0
	if width > 0 {
		cell = (width - gap*(cols-1)) / cols
		if cell < 1 {
			cell = 1
		}
	}

	type item struct {
		child ui.Renderable
		span  int
	}
	items := make([]item, 0, len(b.children))
	for _, child := range b.children {
		if child == nil {
			continue
		}
		it := item{child: child, span: 1}
		if s, ok := child.(*spanned); ok {
			it = item{child: s.child, span: s.span}
		}
		if it.span > cols {
			it.span = cols
		}
		items = append(items, it)
	}

	if cell == 0 {
		for _, it := range items {
			if w := lipgloss.Width(render(it.child, ctx)) / it.span; w > cell {
				cell = w
			}
		}
	}

	var rows []string
	var current []string
	used := 0
	flush := func() {
		if len(current) > 0 {
			rows = append(rows, joinWithGap(current, gap, lipgloss.Top))
		}
		current, used = nil, 0
	}
	for _, it := range items {
		if used+it.span > cols {
			flush()
		}
		w := cell*it.span + gap*(it.span-1)
		view := render(it.child, ctx.WithParentWidth(w))
		current = append(current, lipgloss.NewStyle().Width(w).Render(view))
		used += it.span
	}
	flush()

	rowGap := gap / 2
	if rowGap == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, rows...)
	}
	return strings.Join(rows, strings.Repeat("\n", rowGap+1))
}

func (b *Box) crossPosition(start, center, end lipgloss.Position) lipgloss.Position {
	switch b.align {
	case AlignCenter:
		return center
	case AlignEnd:
		return end
	default:
		return start
	}
}

func joinWithGap(views []string, gap int, pos lipgloss.Position) string {
	if gap == 0 {
		return lipgloss.JoinHorizontal(pos, views...)
	}
	spacer := strings.Repeat(" ", gap)
	parts := make([]string, 0, len(views)*2-1)
	for i, v := range views {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, v)
	}
	return lipgloss.JoinHorizontal(pos, parts...)
}

// wrapRow breaks views into lines no wider than width. A view wider than
// width gets a line of its own.
func wrapRow(views []string, gap, width int) [][]string {
	var lines [][]string
	var line []string
	used := 0
	for _, v := range views {
		w := lipgloss.Width(v)
		need := w
		if len(line) > 0 {
			need += gap
		}
		if len(line) > 0 && used+need > width {
			lines = append(lines, line)
			line, used = nil, 0
			need = w
		}
		line = append(line, v)
		used += need
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

// WithFlex turns the box into a flex container along dir.
func (b *Box) WithFlex(dir Direction) *Box {
	b.flex = true
	b.direction = dir
	return b
}

// WithNoWrap keeps a row on one line regardless of width.
func (b *Box) WithNoWrap(noWrap bool) *Box {
	b.noWrap = noWrap
	return b
}

// WithAlign sets cross-axis alignment.
func (b *Box) WithAlign(align Align) *Box {
	b.align = align
	return b
}

// WithJustify sets main-axis distribution for rows.
func (b *Box) WithJustify(justify Justify) *Box {
	b.justify = justify
	return b
}

// WithSpace sets the gap between flex children in spacing units.
func (b *Box) WithSpace(units int) *Box {
	b.space = units
	return b
}

// WithColumns lays children out in a grid.
func (b *Box) WithColumns(cols int) *Box {
	b.colCount = cols
	return b
}

// AsContainer centres the box and caps it at the given size.
func (b *Box) AsContainer(size ContainerSize) *Box {
	b.container = true
	b.containerWidth = ContainerWidth(size)
	return b
}

// AsContainerWidth centres the box and caps it at width cells.
func (b *Box) AsContainerWidth(width int) *Box {
	b.container = true
	b.containerWidth = width
	return b
}

// WithGrow makes the box fill the available width.
func (b *Box) WithGrow(grow bool) *Box {
	b.grow = grow
	return b
}

// WithStyle sets the box style.
func (b *Box) WithStyle(style lipgloss.Style) *Box {
	b.SetStyle(style)
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Box) WithAppliers(appliers ...StyleFunc) *Box {
	b.AddAppliers(appliers...)
	return b
}

// Add appends children to the box.
func (b *Box) Add(children ...ui.Renderable) *Box {
	b.children = append(b.children, children...)
	return b
}

// Children returns the child renderables.
func (b *Box) Children() []ui.Renderable {
	return b.children
}

type spanned struct {
	child ui.Renderable
	span  int
}

func (s *spanned) View() string { return s.child.View() }

// Span makes child occupy n grid columns. Outside a grid it renders as child.
func Span(n int, child ui.Renderable) ui.Renderable {
	if n < 1 {
		n = 1
	}
	return &spanned{child: child, span: n}
}
