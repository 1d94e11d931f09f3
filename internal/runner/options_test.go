package runner

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseMinSupport(t *testing.T) {
	testcases := []struct {
		value    string
		expected float64
	}{
		{value: "0.05", expected: 0.05},
		{value: "1", expected: 1},
		{value: "5%", expected: 0.05},
		{value: " 50% ", expected: 0.5},
		{value: "100%", expected: 1},
	}
	for _, v := range testcases {
		got, err := parseMinSupport(v.value)
		require.Nil(t, err, "value %q", v.value)
		require.InDelta(t, v.expected, got, 1e-12, "value %q", v.value)
	}

	for _, value := range []string{"0", "-0.1", "1.5", "150%", "abc", "", "NaN"} {
		_, err := parseMinSupport(value)
		require.NotNil(t, err, "value %q must be rejected", value)
	}
}
