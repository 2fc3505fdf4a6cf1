package field

// Measurer reports the rendered width of adornment content. ok is false
// when no measurement is available.
type Measurer interface {
	Measure(content string) (width int, ok bool)
}

// MeasureFunc adapts a plain width function, such as lipgloss.Width, into a
// Measurer that always succeeds.
type MeasureFunc func(content string) int

// Measure implements Measurer.
func (f MeasureFunc) Measure(content string) (int, bool) {
	if f == nil {
		return 0, false
	}
	return f(content), true
}
