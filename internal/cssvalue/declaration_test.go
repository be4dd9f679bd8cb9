// Copyright (c) 2026 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package cssvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDeclaration(t *testing.T) {
	valid := []struct{ prop, value string }{
		{"opacity", "0"},
		{"opacity", "0.5"},
		{"transform", "translateY(12px)"},
		{"transform", "translateY(0) scale(0.95)"},
		{"background-color", "#22c55e"},
		{"--tw-enter-opacity", "1"},
	}
	for _, tt := range valid {
		t.Run(tt.prop+"="+tt.value, func(t *testing.T) {
			assert.NoError(t, CheckDeclaration(tt.prop, tt.value))
		})
	}

	invalid := []struct{ prop, value string }{
		{"", "1"},
		{"opacity", ""},
		{"opacity", "  "},
		{"opacity", "1; color: red"},
		{"opacity", "1 } body { color: red"},
	}
	for _, tt := range invalid {
		t.Run("invalid "+tt.prop+"="+tt.value, func(t *testing.T) {
			assert.Error(t, CheckDeclaration(tt.prop, tt.value))
		})
	}
}

func TestCheckpointOffset(t *testing.T) {
	tests := []struct {
		selector string
		want     float64
		wantErr  bool
	}{
		{"from", 0, false},
		{"TO", 100, false},
		{"0%", 0, false},
		{"37.5%", 37.5, false},
		{"100%", 100, false},
		{"101%", 0, true},
		{"-5%", 0, true},
		{"50", 0, true},
		{"middle", 0, true},
		{"nan%", 0, true},
		{"NaN%", 0, true},
		{"inf%", 0, true},
		{"-Infinity%", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			got, err := CheckpointOffset(tt.selector)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCheckpoint)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
