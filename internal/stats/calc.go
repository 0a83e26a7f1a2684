// ABOUTME: Pure unit calculators: BMI, BMI category, calories burned, sleep rating.
// ABOUTME: No I/O; out-of-domain inputs fail with ErrInvalidMeasurement.
package stats

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidMeasurement marks a non-numeric or out-of-domain calculator input.
// Callers test for it with errors.Is and surface it as a validation message.
var ErrInvalidMeasurement = errors.New("invalid measurement")

// BMICategory is a named BMI band.
type BMICategory string

const (
	Underweight BMICategory = "Underweight"
	Healthy     BMICategory = "Healthy"
	Overweight  BMICategory = "Overweight"
	Obese       BMICategory = "Obese"
)

// BMI computes body mass index from weight in kg and height in cm,
// rounded to one decimal place.
func BMI(weightKg, heightCm float64) (float64, error) {
	if !isFinite(weightKg) || !isFinite(heightCm) {
		return 0, fmt.Errorf("bmi: non-numeric input: %w", ErrInvalidMeasurement)
	}
	if heightCm <= 0 {
		return 0, fmt.Errorf("bmi: height must be positive, got %.1f cm: %w", heightCm, ErrInvalidMeasurement)
	}
	if weightKg <= 0 {
		return 0, fmt.Errorf("bmi: weight must be positive, got %.1f kg: %w", weightKg, ErrInvalidMeasurement)
	}
	heightM := heightCm / 100
	return round1(weightKg / (heightM * heightM)), nil
}

// ClassifyBMI maps a BMI value to its category. Each band is half-open on
// the upper side: exactly 18.5 is Healthy, exactly 25 is Overweight.
func ClassifyBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return Healthy
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}

// metersPerStep is the assumed average walking stride.
const metersPerStep = 0.78

// fallbackKcalPerKm is used when the user has no recorded weight.
const fallbackKcalPerKm = 50.0

// CaloriesBurned estimates walking calories from a step count. With a known
// weight the model is 1 kcal per kg per km; with weightKg == 0 a flat
// constant per km stands in. Rounded to two decimals.
func CaloriesBurned(steps int, weightKg float64) float64 {
	distanceKm := float64(steps) * metersPerStep / 1000
	if weightKg == 0 {
		return round2(distanceKm * fallbackKcalPerKm)
	}
	return round2(weightKg * distanceKm)
}

// SleepRating scores one night of sleep on [0,1] from duration in hours and
// a 1-5 quality. Duration scores 1.0 inside the 7-9h band, ramps linearly
// below 7, and loses 0.1 per hour over 9, never dropping below 0.7.
func SleepRating(durationHours float64, quality int) (float64, error) {
	if !isFinite(durationHours) || durationHours < 0 {
		return 0, fmt.Errorf("sleep rating: bad duration %.1f: %w", durationHours, ErrInvalidMeasurement)
	}
	if quality < 1 || quality > 5 {
		return 0, fmt.Errorf("sleep rating: quality %d outside 1-5: %w", quality, ErrInvalidMeasurement)
	}

	var duration float64
	switch {
	case durationHours < 7:
		duration = durationHours / 7
	case durationHours <= 9:
		duration = 1.0
	default:
		duration = math.Max(0.7, 1.0-0.1*(durationHours-9))
	}

	qual := float64(quality) / 5
	return 0.6*duration + 0.4*qual, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
