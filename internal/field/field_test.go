package field

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/mora/pkg/errors"
)

// toggleField mimics a checkbox: the accessor reads the negation of what is
// currently rendered.
func toggleField(t *testing.T, opts Options[bool]) (*Field[bool], *[]ChangeEvent[bool]) {
	t.Helper()
	events := &[]ChangeEvent[bool]{}
	var f *Field[bool]
	opts.Accessor = func(any) bool { return !f.Value() }
	opts.OnChange = func(ev ChangeEvent[bool]) { *events = append(*events, ev) }
	f = New(opts)
	return f, events
}

func TestNewInitializesFromValueThenDefaultThenZero(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "v", New(Options[string]{Value: Ptr("v")}).Value())
	assert.Equal(t, "d", New(Options[string]{DefaultValue: Ptr("d")}).Value())
	assert.Equal(t, "", New(Options[string]{}).Value())
	assert.False(t, New(Options[bool]{}).Value())

	f := New(Options[int]{})
	assert.True(t, f.Ready())
	assert.True(t, f.Valid())
	assert.False(t, f.RenderError())
}

func TestUncontrolledToggleUpdatesValueAndNotifies(t *testing.T) {
	t.Parallel()

	f, events := toggleField(t, Options[bool]{Name: "agree"})
	require.False(t, f.Controlled())
	require.False(t, f.Value())

	f.OnRawChange("click")

	assert.True(t, f.Value())
	require.Len(t, *events, 1)
	ev := (*events)[0]
	assert.True(t, ev.Value())
	assert.True(t, ev.Valid())
	assert.Equal(t, "click", ev.Raw())
	assert.Empty(t, ev.Message())
}

func TestToggleSequenceMatchesValue(t *testing.T) {
	t.Parallel()

	f, events := toggleField(t, Options[bool]{})
	var seen []bool
	var current []bool
	for i := 0; i < 3; i++ {
		seen = append(seen, f.OnRawChange(nil).Value())
		current = append(current, f.Value())
	}

	assert.Equal(t, []bool{true, false, true}, seen)
	assert.Equal(t, seen, current)
	assert.Len(t, *events, 3)
}

func TestControlledFieldKeepsCallerValue(t *testing.T) {
	t.Parallel()

	input := "ab"
	var got []ChangeEvent[string]
	f := New(Options[string]{
		Name:     "name",
		Value:    Ptr("ab"),
		Required: true,
		Accessor: func(any) string { return input },
		OnChange: func(ev ChangeEvent[string]) { got = append(got, ev) },
	})
	require.True(t, f.Controlled())

	input = ""
	ev := f.OnRawChange("clear")

	assert.Equal(t, "ab", f.Value())
	assert.Equal(t, "ab", f.State().Value)
	require.Len(t, got, 1)
	assert.Equal(t, "", ev.Value())
	assert.False(t, ev.Valid())
	assert.Equal(t, DefaultRequiredMessage, ev.Message())
	assert.True(t, f.RenderError())
}

func TestSyncUpdatesControlledValue(t *testing.T) {
	t.Parallel()

	f := New(Options[bool]{Value: Ptr(true)})
	f.Sync(Ptr(false))
	assert.False(t, f.Value())
	f.Sync(Ptr(true))
	assert.True(t, f.Value())
}

func TestRenderErrorStaysUntilValidationPasses(t *testing.T) {
	t.Parallel()

	input := ""
	f := New(Options[string]{
		Validations: []Validator[string]{
			Check(func(s string) bool { return len(s) >= 3 }, "too short"),
		},
		Accessor: func(any) string { return input },
	})

	input = "a"
	f.OnRawChange(nil)
	require.True(t, f.RenderError())
	require.Equal(t, "too short", f.ErrorMessage())

	input = "ab"
	f.OnRawChange(nil)
	assert.True(t, f.RenderError(), "still failing, error stays displayed")
	assert.False(t, f.Valid())

	input = "abc"
	f.OnRawChange(nil)
	assert.False(t, f.RenderError())
	assert.Empty(t, f.ErrorMessage())
	assert.True(t, f.Valid())
}

func TestRequiredRunsBeforeValidations(t *testing.T) {
	t.Parallel()

	f := New(Options[string]{
		Required:        true,
		RequiredMessage: "Name is required",
		Validations: []Validator[string]{
			func(string) error { return errors.New("never reached") },
		},
	})

	assert.EqualError(t, f.Validate(""), "Name is required")
	assert.EqualError(t, f.Validate("x"), "never reached")
}

func TestConflictingValueIsReported(t *testing.T) {
	t.Parallel()

	var reported []error
	f := New(Options[string]{
		Name:         "city",
		Value:        Ptr("Lima"),
		DefaultValue: Ptr("Quito"),
		OnMisuse:     func(err error) { reported = append(reported, err) },
	})

	assert.Equal(t, "Lima", f.Value())
	require.Len(t, reported, 1)
	var misuse *apperrors.MisuseError
	require.ErrorAs(t, reported[0], &misuse)
	assert.Equal(t, apperrors.MisuseConflictingValue, misuse.Kind)
	assert.Equal(t, "city", misuse.Field)
}

func TestModeSwitchIsReportedAndIgnored(t *testing.T) {
	t.Parallel()

	var reported []error
	onMisuse := func(err error) { reported = append(reported, err) }

	controlled := New(Options[bool]{Value: Ptr(true), OnMisuse: onMisuse})
	controlled.Sync(nil)
	assert.True(t, controlled.Controlled())
	assert.True(t, controlled.Value())

	uncontrolled := New(Options[bool]{OnMisuse: onMisuse})
	uncontrolled.Sync(Ptr(true))
	assert.False(t, uncontrolled.Controlled())
	assert.False(t, uncontrolled.Value())

	require.Len(t, reported, 2)
	for _, err := range reported {
		var misuse *apperrors.MisuseError
		require.ErrorAs(t, err, &misuse)
		assert.Equal(t, apperrors.MisuseModeSwitch, misuse.Kind)
	}
}

func TestResizeRecordsMeasuredWidth(t *testing.T) {
	t.Parallel()

	f := New(Options[string]{Measurer: MeasureFunc(func(s string) int { return len(s) })})
	f.Resize("pre", "$")
	f.Resize("post", "USD")
	assert.Equal(t, 1, f.AuxSize("pre"))
	assert.Equal(t, 3, f.AuxSize("post"))

	f.Resize("post", "")
	assert.Equal(t, 0, f.AuxSize("post"))

	state := f.State()
	state.AuxSizes["pre"] = 99
	assert.Equal(t, 1, f.AuxSize("pre"), "state snapshot must not alias")
}

type failingMeasurer struct{}

func (failingMeasurer) Measure(string) (int, bool) { return 12, false }

func TestResizeFallsBackToZero(t *testing.T) {
	t.Parallel()

	noMeasurer := New(Options[string]{})
	noMeasurer.Resize("pre", "abc")
	assert.Equal(t, 0, noMeasurer.AuxSize("pre"))

	failing := New(Options[string]{Measurer: failingMeasurer{}})
	failing.Resize("pre", "abc")
	assert.Equal(t, 0, failing.AuxSize("pre"))
}

func TestOnRawChangeRequiresInitialization(t *testing.T) {
	t.Parallel()

	var f Field[string]
	assert.False(t, f.Ready())
	assert.Panics(t, func() { f.OnRawChange(nil) })
}

func TestPanickingValidatorPropagates(t *testing.T) {
	t.Parallel()

	f := New(Options[string]{
		Validations: []Validator[string]{func(string) error { panic("broken validator") }},
	})
	assert.PanicsWithValue(t, "broken validator", func() { f.OnRawChange(nil) })
}
