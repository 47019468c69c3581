package utils_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"nexora-backend/utils"
)

func TestCoerceNumber(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
		ok   bool
	}{
		{"json number", float64(49.99), 49.99, true},
		{"quoted number", "19.99", 19.99, true},
		{"quoted number with spaces", " 7 ", 7, true},
		{"json.Number", json.Number("300.5"), 300.5, true},
		{"negative", float64(-1), -1, true},
		{"zero", float64(0), 0, true},
		{"letters", "abc", 0, false},
		{"empty string", "", 0, false},
		{"NaN string", "NaN", 0, false},
		{"Inf string", "+Inf", 0, false},
		{"bool", true, 0, false},
		{"object", map[string]any{}, 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := utils.CoerceNumber(tt.in)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCoerceID(t *testing.T) {
	id, ok := utils.CoerceID(float64(42))
	require.True(t, ok)
	require.Equal(t, uint(42), id)

	id, ok = utils.CoerceID("7")
	require.True(t, ok)
	require.Equal(t, uint(7), id)

	_, ok = utils.CoerceID(float64(-3))
	require.False(t, ok)

	_, ok = utils.CoerceID(float64(3.5))
	require.False(t, ok)

	_, ok = utils.CoerceID("abc")
	require.False(t, ok)
}
