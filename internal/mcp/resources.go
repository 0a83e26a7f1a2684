// ABOUTME: MCP resource implementations for ReHealth.
// ABOUTME: Provides rehealth://today and rehealth://rank JSON snapshots.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"rehealth/internal/models"
	"rehealth/internal/report"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "rehealth://today",
		Name:        "Today's Dashboard",
		Description: "Steps, calories, sleep rating, and BMI for the current day",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "rehealth://rank",
		Name:        "Achievement Rank",
		Description: "Lifetime totals, score, current rank, and progress to the next tier",
		MIMEType:    "application/json",
	}, s.handleRankResource)
}

// Resource handlers

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	d, err := report.BuildDashboard(s.db, s.user.ID, models.Today())
	if err != nil {
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}
	return jsonResource("rehealth://today", d)
}

func (s *Server) handleRankResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	a, err := report.BuildAchievements(s.db, s.user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to build achievements: %w", err)
	}
	return jsonResource("rehealth://rank", a)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
