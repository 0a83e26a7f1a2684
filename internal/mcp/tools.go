// ABOUTME: MCP tool implementations for logging entries and reading reports.
// ABOUTME: Write tools append rows; read tools expose dashboard, trend, rank.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"rehealth/internal/models"
	"rehealth/internal/report"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_steps",
		Description: "Record a step count for a day (defaults to today)",
	}, s.handleLogSteps)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_sleep",
		Description: "Record one night of sleep: duration in hours and quality 1-5",
	}, s.handleLogSleep)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_food",
		Description: "Record a consumed food item and its calories",
	}, s.handleLogFood)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Record a resistance-training session (exercise, weight, sets, reps)",
	}, s.handleLogWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_measurement",
		Description: "Record a body measurement: height in cm and weight in kg",
	}, s.handleLogMeasurement)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_dashboard",
		Description: "Get today's steps, calories, sleep rating, BMI, and calories burned",
	}, s.handleGetDashboard)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_trend",
		Description: "Get the 7-day trend for a metric (steps, calories, or sleep)",
	}, s.handleGetTrend)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_achievements",
		Description: "Get lifetime totals, achievement score, rank, and progress to the next rank",
	}, s.handleGetAchievements)
}

// Tool input/output types

type logStepsInput struct {
	Count int    `json:"count" jsonschema:"Number of steps taken"`
	Goal  int    `json:"goal,omitempty" jsonschema:"Daily step goal"`
	Day   string `json:"day,omitempty" jsonschema:"Calendar day (YYYY-MM-DD), defaults to today"`
}

type logSleepInput struct {
	DurationHours float64 `json:"duration_hours" jsonschema:"Hours slept"`
	Quality       int     `json:"quality" jsonschema:"Sleep quality 1-5"`
	Day           string  `json:"day,omitempty" jsonschema:"Calendar day (YYYY-MM-DD), defaults to today"`
}

type logFoodInput struct {
	Name     string `json:"name" jsonschema:"Name of the food"`
	Calories int    `json:"calories" jsonschema:"Calories in the portion"`
	MealType string `json:"meal_type,omitempty" jsonschema:"breakfast, lunch, dinner, or snack"`
	Day      string `json:"day,omitempty" jsonschema:"Calendar day (YYYY-MM-DD), defaults to today"`
}

type logWorkoutInput struct {
	Exercise string  `json:"exercise" jsonschema:"Exercise name"`
	WeightKg float64 `json:"weight_kg" jsonschema:"Weight lifted in kg"`
	Sets     int     `json:"sets" jsonschema:"Number of sets"`
	Reps     int     `json:"reps" jsonschema:"Reps per set"`
	Day      string  `json:"day,omitempty" jsonschema:"Calendar day (YYYY-MM-DD), defaults to today"`
}

type logMeasurementInput struct {
	HeightCm float64 `json:"height_cm" jsonschema:"Height in centimeters"`
	WeightKg float64 `json:"weight_kg" jsonschema:"Weight in kilograms"`
	Day      string  `json:"day,omitempty" jsonschema:"Calendar day (YYYY-MM-DD), defaults to today"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type getTrendInput struct {
	Metric string `json:"metric" jsonschema:"Metric kind: steps, calories, or sleep"`
}

type trendOutput struct {
	Metric  string    `json:"metric"`
	Labels  []string  `json:"labels"`
	Indices []int     `json:"indices"`
	Values  []float64 `json:"values"`
}

type achievementsOutput struct {
	TotalSteps       int64   `json:"total_steps"`
	TotalSleepHours  float64 `json:"total_sleep_hours"`
	TotalWeightKg    float64 `json:"total_weight_lifted_kg"`
	TotalCalories    int64   `json:"total_calories"`
	Score            int     `json:"score"`
	Rank             string  `json:"rank"`
	NextRank         string  `json:"next_rank,omitempty"`
	ProgressPercent  float64 `json:"progress_percent"`
}

func parseDay(s string) (time.Time, error) {
	if s == "" {
		return models.Today(), nil
	}
	t, err := time.ParseInLocation(models.DayFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q, want YYYY-MM-DD", s)
	}
	return t, nil
}

// Tool handlers

func (s *Server) handleLogSteps(ctx context.Context, req *mcp.CallToolRequest, input logStepsInput) (*mcp.CallToolResult, simpleOutput, error) {
	day, err := parseDay(input.Day)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	if input.Count < 0 {
		return nil, simpleOutput{}, fmt.Errorf("step count must not be negative, got %d", input.Count)
	}

	e := models.NewStepEntry(s.user.ID, input.Count).WithDay(day)
	if input.Goal > 0 {
		e.WithGoal(input.Goal)
	}
	if err := s.db.AddSteps(e); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log steps: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %d steps for %s", input.Count, day.Format(models.DayFormat)),
	}, nil
}

func (s *Server) handleLogSleep(ctx context.Context, req *mcp.CallToolRequest, input logSleepInput) (*mcp.CallToolResult, simpleOutput, error) {
	day, err := parseDay(input.Day)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	if input.DurationHours < 0 {
		return nil, simpleOutput{}, fmt.Errorf("sleep duration must not be negative, got %v", input.DurationHours)
	}
	if input.Quality < 1 || input.Quality > 5 {
		return nil, simpleOutput{}, fmt.Errorf("quality must be 1-5, got %d", input.Quality)
	}

	e := models.NewSleepEntry(s.user.ID, input.DurationHours, input.Quality).WithDay(day)
	if err := s.db.AddSleep(e); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log sleep: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %.1f hours of sleep (quality %d) for %s",
			input.DurationHours, input.Quality, day.Format(models.DayFormat)),
	}, nil
}

func (s *Server) handleLogFood(ctx context.Context, req *mcp.CallToolRequest, input logFoodInput) (*mcp.CallToolResult, simpleOutput, error) {
	day, err := parseDay(input.Day)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	if input.Calories < 0 {
		return nil, simpleOutput{}, fmt.Errorf("calories must not be negative, got %d", input.Calories)
	}

	e := models.NewFoodEntry(s.user.ID, input.Name, input.Calories).WithDay(day)
	if input.MealType != "" {
		e.WithMealType(input.MealType)
	}
	if err := s.db.AddFood(e); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log food: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %s (%d kcal) for %s", input.Name, input.Calories, day.Format(models.DayFormat)),
	}, nil
}

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, simpleOutput, error) {
	day, err := parseDay(input.Day)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	if input.WeightKg < 0 {
		return nil, simpleOutput{}, fmt.Errorf("weight must not be negative, got %v", input.WeightKg)
	}
	if input.Sets <= 0 || input.Reps <= 0 {
		return nil, simpleOutput{}, fmt.Errorf("sets and reps must be positive, got %d x %d", input.Sets, input.Reps)
	}

	e := models.NewWorkoutEntry(s.user.ID, input.Exercise, input.WeightKg, input.Sets, input.Reps).WithDay(day)
	if err := s.db.AddWorkout(e); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log workout: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %s: %.1f kg x %d x %d (%.0f kg moved) for %s",
			input.Exercise, input.WeightKg, input.Sets, input.Reps, e.Volume(), day.Format(models.DayFormat)),
	}, nil
}

func (s *Server) handleLogMeasurement(ctx context.Context, req *mcp.CallToolRequest, input logMeasurementInput) (*mcp.CallToolResult, simpleOutput, error) {
	day, err := parseDay(input.Day)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	if input.HeightCm <= 0 || input.WeightKg <= 0 {
		return nil, simpleOutput{}, fmt.Errorf("height and weight must be positive, got %v cm / %v kg", input.HeightCm, input.WeightKg)
	}

	m := models.NewMeasurement(s.user.ID, input.HeightCm, input.WeightKg).WithDay(day)
	if err := s.db.AddMeasurement(m); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log measurement: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged measurement %.1f cm / %.1f kg for %s",
			input.HeightCm, input.WeightKg, day.Format(models.DayFormat)),
	}, nil
}

func (s *Server) handleGetDashboard(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	d, err := report.BuildDashboard(s.db, s.user.ID, models.Today())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build dashboard: %w", err)
	}
	return nil, d, nil
}

func (s *Server) handleGetTrend(ctx context.Context, req *mcp.CallToolRequest, input getTrendInput) (*mcp.CallToolResult, trendOutput, error) {
	if !models.IsValidMetricKind(input.Metric) {
		return nil, trendOutput{}, fmt.Errorf("unknown metric %q, want steps, calories, or sleep", input.Metric)
	}

	w, err := report.BuildTrend(s.db, s.user.ID, models.MetricKind(input.Metric), models.Today())
	if err != nil {
		return nil, trendOutput{}, fmt.Errorf("failed to build trend: %w", err)
	}

	return nil, trendOutput{
		Metric:  input.Metric,
		Labels:  w.Labels,
		Indices: w.Indices(),
		Values:  w.Values,
	}, nil
}

func (s *Server) handleGetAchievements(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, achievementsOutput, error) {
	a, err := report.BuildAchievements(s.db, s.user.ID)
	if err != nil {
		return nil, achievementsOutput{}, fmt.Errorf("failed to build achievements: %w", err)
	}

	return nil, achievementsOutput{
		TotalSteps:      a.Totals.Steps,
		TotalSleepHours: a.Totals.SleepHours,
		TotalWeightKg:   a.Totals.WeightLiftedKg,
		TotalCalories:   a.Totals.Calories,
		Score:           a.Score,
		Rank:            a.RankName,
		NextRank:        a.NextRank,
		ProgressPercent: a.ProgressPercent,
	}, nil
}
