// ABOUTME: Tests for the full-history export dump.
// ABOUTME: Verifies per-table contents and both output formats.
package storage

import (
	"encoding/json"
	"strings"
	"testing"

	"rehealth/internal/models"
)

func TestGetAllData(t *testing.T) {
	db := setupTestDB(t)
	u := createTestUser(t, db, "frost")

	if err := db.AddSteps(models.NewStepEntry(u.ID, 9000).WithGoal(10000)); err != nil {
		t.Fatalf("AddSteps failed: %v", err)
	}
	if err := db.AddSleep(models.NewSleepEntry(u.ID, 7.5, 5)); err != nil {
		t.Fatalf("AddSleep failed: %v", err)
	}
	if err := db.AddFood(models.NewFoodEntry(u.ID, "salad", 250).WithMealType("Dinner")); err != nil {
		t.Fatalf("AddFood failed: %v", err)
	}
	if err := db.AddWorkout(models.NewWorkoutEntry(u.ID, "squat", 80, 5, 5)); err != nil {
		t.Fatalf("AddWorkout failed: %v", err)
	}
	if err := db.AddMeasurement(models.NewMeasurement(u.ID, 175, 70)); err != nil {
		t.Fatalf("AddMeasurement failed: %v", err)
	}

	data, err := db.GetAllData(u)
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}

	if data.Username != "frost" {
		t.Errorf("Username = %q, want frost", data.Username)
	}
	if len(data.Steps) != 1 || data.Steps[0].Goal != 10000 {
		t.Errorf("Steps = %+v, want one entry with goal 10000", data.Steps)
	}
	if len(data.Sleep) != 1 || data.Sleep[0].Quality != 5 {
		t.Errorf("Sleep = %+v, want one entry with quality 5", data.Sleep)
	}
	if len(data.Food) != 1 || data.Food[0].MealType != "dinner" {
		t.Errorf("Food = %+v, want meal type normalized to dinner", data.Food)
	}
	if len(data.Workouts) != 1 || data.Workouts[0].Volume() != 2000 {
		t.Errorf("Workouts = %+v, want one session of volume 2000", data.Workouts)
	}
	if len(data.Measurements) != 1 {
		t.Errorf("Measurements = %+v, want one row", data.Measurements)
	}
}

func TestExportMarshalFormats(t *testing.T) {
	db := setupTestDB(t)
	u := createTestUser(t, db, "frost")

	if err := db.AddSteps(models.NewStepEntry(u.ID, 1234)); err != nil {
		t.Fatalf("AddSteps failed: %v", err)
	}

	data, err := db.GetAllData(u)
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}

	jsonOut, err := data.Marshal("json")
	if err != nil {
		t.Fatalf("Marshal json failed: %v", err)
	}
	var roundTrip ExportData
	if err := json.Unmarshal(jsonOut, &roundTrip); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(roundTrip.Steps) != 1 {
		t.Errorf("round-tripped steps = %d entries, want 1", len(roundTrip.Steps))
	}

	yamlOut, err := data.Marshal("yaml")
	if err != nil {
		t.Fatalf("Marshal yaml failed: %v", err)
	}
	if !strings.Contains(string(yamlOut), "username: frost") {
		t.Errorf("yaml export missing username: %s", yamlOut)
	}

	if _, err := data.Marshal("xml"); err == nil {
		t.Error("Marshal accepted an unknown format")
	}
}
