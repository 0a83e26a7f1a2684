// ABOUTME: Tests for log entry constructors and derived values.
// ABOUTME: Covers day truncation, builders, and workout volume.
package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewStepEntryDefaults(t *testing.T) {
	userID := uuid.New()
	e := NewStepEntry(userID, 8000)

	if e.ID == uuid.Nil {
		t.Error("expected generated ID")
	}
	if e.UserID != userID {
		t.Errorf("UserID = %v, want %v", e.UserID, userID)
	}
	if !e.Day.Equal(Today()) {
		t.Errorf("Day = %v, want today", e.Day)
	}
	if e.Goal != 0 {
		t.Errorf("Goal = %d, want 0 by default", e.Goal)
	}

	e.WithGoal(10000)
	if e.Goal != 10000 {
		t.Errorf("Goal = %d, want 10000", e.Goal)
	}
}

func TestWithDayTruncatesToMidnight(t *testing.T) {
	stamp := time.Date(2025, time.June, 8, 15, 42, 7, 0, time.Local)
	e := NewSleepEntry(uuid.New(), 8, 4).WithDay(stamp)

	want := time.Date(2025, time.June, 8, 0, 0, 0, 0, time.Local)
	if !e.Day.Equal(want) {
		t.Errorf("Day = %v, want %v", e.Day, want)
	}
}

func TestWorkoutVolume(t *testing.T) {
	tests := []struct {
		weightKg float64
		sets     int
		reps     int
		want     float64
	}{
		{100, 3, 10, 3000},
		{62.5, 5, 5, 1562.5},
		{0, 3, 10, 0},
	}
	for _, tt := range tests {
		e := NewWorkoutEntry(uuid.New(), "squat", tt.weightKg, tt.sets, tt.reps)
		if got := e.Volume(); got != tt.want {
			t.Errorf("Volume(%v, %d, %d) = %v, want %v", tt.weightKg, tt.sets, tt.reps, got, tt.want)
		}
	}
}

func TestIsValidMetricKind(t *testing.T) {
	for _, k := range AllMetricKinds {
		if !IsValidMetricKind(string(k)) {
			t.Errorf("IsValidMetricKind(%q) = false, want true", k)
		}
	}
	for _, s := range []string{"", "weight", "mood", "Steps"} {
		if IsValidMetricKind(s) {
			t.Errorf("IsValidMetricKind(%q) = true, want false", s)
		}
	}
}

func TestUserPasswordRoundTrip(t *testing.T) {
	u := NewUser("frost")
	if err := u.SetPassword("correct horse"); err != nil {
		t.Fatalf("SetPassword failed: %v", err)
	}
	if u.PasswordHash == "correct horse" {
		t.Error("password stored in plaintext")
	}
	if !u.CheckPassword("correct horse") {
		t.Error("CheckPassword rejected the correct password")
	}
	if u.CheckPassword("wrong") {
		t.Error("CheckPassword accepted a wrong password")
	}
}
