// ABOUTME: MCP resource implementations for the nutrition tracker.
// ABOUTME: Provides nutriscan://today, nutriscan://week, and nutriscan://catalog resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/nutriscan/internal/calc"
	"github.com/harperreed/nutriscan/internal/catalog"
	"github.com/harperreed/nutriscan/internal/journal"
	"github.com/harperreed/nutriscan/internal/models"
	"github.com/harperreed/nutriscan/internal/report"
	"github.com/harperreed/nutriscan/internal/storage"
)

func (s *Server) registerResources() {
	// nutriscan://today - Today's journal with totals and progress
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "nutriscan://today",
		Name:        "Today's Journal",
		Description: "Today's food entries, nutrition totals, water, and target progress",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// nutriscan://week - Rolling 7-day report
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "nutriscan://week",
		Name:        "Weekly Report",
		Description: "Rolling 7-day nutrition report with active days and averages",
		MIMEType:    "application/json",
	}, s.handleWeekResource)

	// nutriscan://catalog - The food catalog grouped by category
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "nutriscan://catalog",
		Name:        "Food Catalog",
		Description: "The built-in food catalog grouped by category",
		MIMEType:    "application/json",
	}, s.handleCatalogResource)
}

// Resource handlers

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
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

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	date := storage.Today()
	j := s.gateway.Journal(date)
	totals := journal.Sum(j.Foods)

	var target int
	if p := s.gateway.Profile(); p != nil {
		target = calc.DailyNeeds(*p).TargetCalories
	}

	result := map[string]interface{}{
		"date":             date,
		"entries":          j.Foods,
		"totals":           totals,
		"target_calories":  target,
		"progress_percent": journal.ProgressPercent(totals.Calories, float64(target)),
		"water_glasses":    j.WaterGlasses,
		"water_ml":         journal.WaterML(j),
		"additives":        catalog.UniqueAdditivesOf(j.Foods),
	}

	return jsonResource("nutriscan://today", result)
}

func (s *Server) handleWeekResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	r := report.WeeklySnapshot(s.gateway, time.Now())

	result := map[string]interface{}{
		"report": r,
		"chart":  r.Chart(),
	}

	return jsonResource("nutriscan://week", result)
}

func (s *Server) handleCatalogResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	byCategory := make(map[string][]models.FoodDefinition)
	for _, cat := range catalog.Categories {
		if cat.ID == models.CategoryAll {
			continue
		}
		foods := catalog.FoodsByCategory(cat.ID)
		if len(foods) > 0 {
			byCategory[string(cat.ID)] = foods
		}
	}

	result := map[string]interface{}{
		"categories": catalog.Categories,
		"foods":      byCategory,
		"count":      len(catalog.Foods),
	}

	return jsonResource("nutriscan://catalog", result)
}
