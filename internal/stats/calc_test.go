// ABOUTME: Tests for the pure unit calculators.
// ABOUTME: Covers BMI boundaries, calorie fallback, and the sleep rating clamp.
package stats

import (
	"errors"
	"math"
	"testing"
)

func TestBMI(t *testing.T) {
	got, err := BMI(70, 175)
	if err != nil {
		t.Fatalf("BMI(70, 175) failed: %v", err)
	}
	if got != 22.9 {
		t.Errorf("BMI(70, 175) = %v, want 22.9", got)
	}
}

func TestBMIInvalidInputs(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		heightCm float64
	}{
		{"zero height", 70, 0},
		{"negative height", 70, -175},
		{"zero weight", 0, 175},
		{"NaN weight", math.NaN(), 175},
		{"infinite height", 70, math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BMI(tt.weightKg, tt.heightCm)
			if !errors.Is(err, ErrInvalidMeasurement) {
				t.Errorf("BMI(%v, %v) err = %v, want ErrInvalidMeasurement", tt.weightKg, tt.heightCm, err)
			}
		})
	}
}

func TestClassifyBMI(t *testing.T) {
	tests := []struct {
		bmi  float64
		want BMICategory
	}{
		{18.4, Underweight},
		{18.5, Healthy}, // boundary belongs to the upper bucket
		{22.9, Healthy},
		{24.9, Healthy},
		{25.0, Overweight},
		{29.9, Overweight},
		{30.0, Obese},
		{45.0, Obese},
		{10.0, Underweight},
	}
	for _, tt := range tests {
		if got := ClassifyBMI(tt.bmi); got != tt.want {
			t.Errorf("ClassifyBMI(%v) = %v, want %v", tt.bmi, got, tt.want)
		}
	}
}

func TestCaloriesBurned(t *testing.T) {
	tests := []struct {
		name     string
		steps    int
		weightKg float64
		want     float64
	}{
		{"fallback constant with no recorded weight", 10000, 0, 390.0},
		{"known weight", 10000, 70, 546.0},
		{"zero steps", 0, 70, 0},
		{"zero steps and weight", 0, 0, 0},
		{"small walk", 1000, 80, 62.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CaloriesBurned(tt.steps, tt.weightKg)
			if got != tt.want {
				t.Errorf("CaloriesBurned(%d, %v) = %v, want %v", tt.steps, tt.weightKg, got, tt.want)
			}
			if got < 0 {
				t.Errorf("CaloriesBurned(%d, %v) = %v, must never be negative", tt.steps, tt.weightKg, got)
			}
		})
	}
}

func TestSleepRating(t *testing.T) {
	tests := []struct {
		name          string
		durationHours float64
		quality       int
		want          float64
	}{
		{"ideal duration max quality", 8, 5, 1.0},
		{"lower band edge", 7, 5, 1.0},
		{"upper band edge", 9, 5, 1.0},
		{"short sleep", 3.5, 5, 0.7},  // 0.6*(3.5/7) + 0.4
		{"one hour over", 10, 5, 0.94}, // 0.6*0.9 + 0.4
		{"floor engaged", 12, 5, 0.82}, // 1 - 0.3 = 0.7 exactly
		{"far past the floor", 20, 5, 0.82},
		{"extreme duration still floored", 24, 5, 0.82},
		{"mid quality", 8, 3, 0.84}, // 0.6 + 0.4*(3/5)
		{"no sleep", 0, 1, 0.08},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SleepRating(tt.durationHours, tt.quality)
			if err != nil {
				t.Fatalf("SleepRating(%v, %d) failed: %v", tt.durationHours, tt.quality, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SleepRating(%v, %d) = %v, want %v", tt.durationHours, tt.quality, got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("SleepRating(%v, %d) = %v, outside [0,1]", tt.durationHours, tt.quality, got)
			}
		})
	}
}

func TestSleepRatingInvalidInputs(t *testing.T) {
	tests := []struct {
		name          string
		durationHours float64
		quality       int
	}{
		{"quality below range", 8, 0},
		{"quality above range", 8, 6},
		{"negative duration", -1, 3},
		{"NaN duration", math.NaN(), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SleepRating(tt.durationHours, tt.quality)
			if !errors.Is(err, ErrInvalidMeasurement) {
				t.Errorf("SleepRating(%v, %d) err = %v, want ErrInvalidMeasurement", tt.durationHours, tt.quality, err)
			}
		})
	}
}
