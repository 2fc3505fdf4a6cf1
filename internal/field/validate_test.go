package field

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredTreatsFalsyAsMissing(t *testing.T) {
	t.Parallel()

	str := Required[string]("")
	require.EqualError(t, str(""), DefaultRequiredMessage)
	require.NoError(t, str("x"))

	boolean := Required[bool]("Please accept")
	require.EqualError(t, boolean(false), "Please accept")
	require.NoError(t, boolean(true))

	num := Required[int]("")
	require.Error(t, num(0))
	require.NoError(t, num(3))

	list := Required[[]string]("")
	require.Error(t, list(nil))
	require.Error(t, list([]string{}))
	require.NoError(t, list([]string{"a"}))
}

func TestChainShortCircuitsOnFirstFailure(t *testing.T) {
	t.Parallel()

	secondCalled := false
	v1 := func(string) error { return errors.New("bad") }
	v2 := func(string) error {
		secondCalled = true
		return nil
	}

	err := Chain[string](v1, v2)("x")
	require.EqualError(t, err, "bad")
	assert.False(t, secondCalled)
}

func TestChainReportsFirstFailingInOrder(t *testing.T) {
	t.Parallel()

	v := Chain[string](
		Check(func(s string) bool { return len(s) > 0 }, "empty"),
		nil,
		Check(func(s string) bool { return len(s) > 3 }, "too short"),
		Check(func(s string) bool { return s != "abcd" }, "reserved"),
	)

	require.EqualError(t, v(""), "empty")
	require.EqualError(t, v("ab"), "too short")
	require.EqualError(t, v("abcd"), "reserved")
	require.NoError(t, v("abcde"))
}

func TestTruthy(t *testing.T) {
	t.Parallel()

	var nilPtr *string
	assert.False(t, Truthy(nil))
	assert.False(t, Truthy(nilPtr))
	assert.False(t, Truthy(0.0))
	assert.False(t, Truthy(map[string]int{}))
	assert.True(t, Truthy(Ptr("x")))
	assert.True(t, Truthy(-1))
	assert.True(t, Truthy(uint8(1)))
}

func TestRuleUsesValidatorTags(t *testing.T) {
	t.Parallel()

	email := Rule[string]("email", "")
	require.EqualError(t, email("nope"), "Enter a valid email address")
	require.NoError(t, email("a@b.co"))

	minLen := Rule[string]("min=3", "")
	require.EqualError(t, minLen("ab"), "Must be at least 3")

	custom := Rule[string]("numeric", "Digits only")
	require.EqualError(t, custom("12a"), "Digits only")
	require.NoError(t, custom("125"))
}
