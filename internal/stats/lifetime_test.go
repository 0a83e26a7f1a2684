// ABOUTME: Tests for lifetime totals reduction over a fake totals source.
// ABOUTME: A brand-new user degrades to all zeros, score 0, Bronze Beginner.
package stats

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

type fakeTotalsSource struct {
	steps    int64
	calories int64
	sleep    float64
	lifted   float64
	err      error
}

func (f *fakeTotalsSource) TotalSteps(uuid.UUID) (int64, error)          { return f.steps, f.err }
func (f *fakeTotalsSource) TotalCalories(uuid.UUID) (int64, error)       { return f.calories, f.err }
func (f *fakeTotalsSource) TotalSleepHours(uuid.UUID) (float64, error)   { return f.sleep, f.err }
func (f *fakeTotalsSource) TotalWeightLifted(uuid.UUID) (float64, error) { return f.lifted, f.err }

func TestLifetime(t *testing.T) {
	src := &fakeTotalsSource{steps: 123456, calories: 98000, sleep: 412.5, lifted: 15750}

	got, err := Lifetime(src, uuid.New())
	if err != nil {
		t.Fatalf("Lifetime failed: %v", err)
	}
	want := LifetimeTotals{Steps: 123456, SleepHours: 412.5, WeightLiftedKg: 15750, Calories: 98000}
	if got != want {
		t.Errorf("Lifetime = %+v, want %+v", got, want)
	}
}

func TestLifetimeEmptyHistory(t *testing.T) {
	got, err := Lifetime(&fakeTotalsSource{}, uuid.New())
	if err != nil {
		t.Fatalf("Lifetime failed: %v", err)
	}
	if got != (LifetimeTotals{}) {
		t.Errorf("Lifetime on empty history = %+v, want zeros", got)
	}

	score, err := Score(got)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if score != 0 {
		t.Errorf("new-user score = %d, want 0", score)
	}
	if rank := Rank(score); rank != "Bronze Beginner" {
		t.Errorf("new-user rank = %q, want Bronze Beginner", rank)
	}
}

func TestLifetimePropagatesStorageError(t *testing.T) {
	wantErr := errors.New("disk I/O error")
	_, err := Lifetime(&fakeTotalsSource{err: wantErr}, uuid.New())
	if !errors.Is(err, wantErr) {
		t.Errorf("Lifetime err = %v, want wrapped storage error", err)
	}
}
