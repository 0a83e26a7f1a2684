// ABOUTME: Tests for CLI helper functions.
// ABOUTME: Covers resolveDay, truncate, padRight, and progressBar.
package main

import (
	"strings"
	"testing"

	"rehealth/internal/models"
)

func TestResolveDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty means today", "", false},
		{"valid day", "2025-06-01", false},
		{"slashes rejected", "2025/06/01", true},
		{"reversed order rejected", "01-06-2025", true},
		{"random string rejected", "not a date", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logDay = tt.input
			t.Cleanup(func() { logDay = "" })

			day, err := resolveDay()
			if tt.wantErr {
				if err == nil {
					t.Errorf("resolveDay(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveDay(%q) failed: %v", tt.input, err)
			}
			if tt.input == "" {
				if !day.Equal(models.Today()) {
					t.Errorf("empty day = %v, want today", day)
				}
			} else if day.Format(models.DayFormat) != tt.input {
				t.Errorf("resolveDay(%q) = %v", tt.input, day)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"this is a long description", 10, "this is..."},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("abc", 6); got != "abc   " {
		t.Errorf("padRight = %q, want %q", got, "abc   ")
	}
	if got := padRight("toolong", 3); got != "toolong" {
		t.Errorf("padRight must not trim: got %q", got)
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		percent    float64
		wantFilled int
	}{
		{0, 0},
		{50, 15},
		{100, 30},
		{-5, 0},   // clamped
		{150, 30}, // clamped
	}
	for _, tt := range tests {
		bar := progressBar(tt.percent, 30)
		if len(bar) != 32 { // brackets plus width
			t.Errorf("progressBar(%v) length = %d, want 32", tt.percent, len(bar))
		}
		if got := strings.Count(bar, "#"); got != tt.wantFilled {
			t.Errorf("progressBar(%v) filled = %d, want %d", tt.percent, got, tt.wantFilled)
		}
	}
}
