package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePrefersExternal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		resolved any
		want     any
	}{
		{name: "false external", resolved: Resolve(Ptr(false), true), want: false},
		{name: "zero external", resolved: Resolve(Ptr(0), 7), want: 0},
		{name: "empty string external", resolved: Resolve(Ptr(""), "internal"), want: ""},
		{name: "nil external", resolved: Resolve[string](nil, "internal"), want: "internal"},
		{name: "empty slice external", resolved: Resolve(Ptr([]string{}), []string{"a"}), want: []string{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.resolved)
		})
	}
}
