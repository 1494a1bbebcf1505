// SPDX-License-Identifier: MPL-2.0

package tui

import "testing"

func TestIsAffirmative(t *testing.T) {
	t.Parallel()

	tests := []struct {
		answer   string
		expected bool
	}{
		{"y", true},
		{"Y", true},
		{"yes", true},
		{"YES", true},
		{"s", true},
		{"S", true},
		{"si", true},
		{"  y  ", true},
		{"", false},
		{"n", false},
		{"no", false},
		{"maybe", false},
		{"yess", false},
	}

	for _, tt := range tests {
		t.Run("answer_"+tt.answer, func(t *testing.T) {
			t.Parallel()
			if got := IsAffirmative(tt.answer); got != tt.expected {
				t.Errorf("IsAffirmative(%q) = %v, expected %v", tt.answer, got, tt.expected)
			}
		})
	}
}
