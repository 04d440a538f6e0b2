// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, tool handlers, and resource handlers.
package mcp

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/nutriscan/internal/models"
	"github.com/harperreed/nutriscan/internal/storage"
)

// setupTestGateway creates a badger-backed gateway in a temp directory.
func setupTestGateway(t *testing.T) *storage.Gateway {
	t.Helper()

	store, err := storage.OpenBadger(filepath.Join(t.TempDir(), "kv"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	g := storage.NewGateway(store)
	t.Cleanup(func() { _ = g.Close() })

	return g
}

func TestNewServer(t *testing.T) {
	g := setupTestGateway(t)

	server, err := NewServer(g)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}

	if server == nil {
		t.Fatal("Expected non-nil server")
	}
	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.gateway == nil {
		t.Error("Expected non-nil gateway")
	}
}

func TestHandleSearchFoods(t *testing.T) {
	server, _ := NewServer(setupTestGateway(t))
	ctx := context.Background()

	tests := []struct {
		name    string
		input   searchFoodsInput
		wantErr bool
	}{
		{
			name:  "simple query",
			input: searchFoodsInput{Query: "nasi"},
		},
		{
			name:  "query with category filter",
			input: searchFoodsInput{Query: "ayam", Category: "hewani"},
		},
		{
			name:  "query with nutrition filters",
			input: searchFoodsInput{Query: "nasi", MaxCalories: 200, MinProtein: 2},
		},
		{
			name:    "query too short",
			input:   searchFoodsInput{Query: "n"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := server.handleSearchFoods(ctx, &mcp.CallToolRequest{}, tt.input)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}
			if output == nil {
				t.Error("Expected non-nil output")
			}
		})
	}
}

func TestHandleSearchFoodsNoMatch(t *testing.T) {
	server, _ := NewServer(setupTestGateway(t))
	ctx := context.Background()

	_, output, err := server.handleSearchFoods(ctx, &mcp.CallToolRequest{}, searchFoodsInput{
		Query: "zzzzz",
	})
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if output == nil {
		t.Error("Expected message map for no matches")
	}
}

func TestHandleAdditiveInfo(t *testing.T) {
	server, _ := NewServer(setupTestGateway(t))
	ctx := context.Background()

	_, output, err := server.handleAdditiveInfo(ctx, &mcp.CallToolRequest{}, additiveInfoInput{
		Code: "E621",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	info, ok := output.(models.AdditiveDefinition)
	if !ok {
		t.Fatal("Expected AdditiveDefinition output")
	}
	if info.Code != "E621" {
		t.Errorf("Code = %s, want E621", info.Code)
	}
	if info.Name == "" {
		t.Error("Expected non-empty name")
	}
}

func TestHandleAdditiveInfoUnknown(t *testing.T) {
	server, _ := NewServer(setupTestGateway(t))
	ctx := context.Background()

	_, output, err := server.handleAdditiveInfo(ctx, &mcp.CallToolRequest{}, additiveInfoInput{
		Code: "E999",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	info, ok := output.(models.AdditiveDefinition)
	if !ok {
		t.Fatal("Expected AdditiveDefinition output")
	}
	if info.Name != "Unknown Additive" {
		t.Errorf("Name = %s, want Unknown Additive placeholder", info.Name)
	}
	if info.Level != models.RiskCaution {
		t.Errorf("Level = %s, want caution", info.Level)
	}
}

func TestHandleLogFood(t *testing.T) {
	g := setupTestGateway(t)
	server, _ := NewServer(g)
	ctx := context.Background()

	_, output, err := server.handleLogFood(ctx, &mcp.CallToolRequest{}, logFoodInput{
		Name:        "Nasi Putih",
		AmountGrams: 150,
		Meal:        "lunch",
		Date:        "2026-09-01",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if output.ID == "" {
		t.Error("Expected non-empty ID")
	}
	if output.Calories != 195 {
		t.Errorf("Calories = %v, want 195", output.Calories)
	}

	j := g.Journal("2026-09-01")
	if len(j.Foods) != 1 {
		t.Fatalf("journal has %d entries, want 1", len(j.Foods))
	}
	if j.Foods[0].Meal != models.MealLunch {
		t.Errorf("Meal = %s, want lunch", j.Foods[0].Meal)
	}
}

func TestHandleLogFoodErrors(t *testing.T) {
	server, _ := NewServer(setupTestGateway(t))
	ctx := context.Background()

	tests := []struct {
		name  string
		input logFoodInput
	}{
		{
			name:  "unknown food",
			input: logFoodInput{Name: "Pizza Hawaii", AmountGrams: 100},
		},
		{
			name:  "zero amount",
			input: logFoodInput{Name: "Nasi Putih", AmountGrams: 0},
		},
		{
			name:  "negative amount",
			input: logFoodInput{Name: "Nasi Putih", AmountGrams: -50},
		},
		{
			name:  "bad meal slot",
			input: logFoodInput{Name: "Nasi Putih", AmountGrams: 100, Meal: "brunch"},
		},
		{
			name:  "bad date",
			input: logFoodInput{Name: "Nasi Putih", AmountGrams: 100, Date: "01-09-2026"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := server.handleLogFood(ctx, &mcp.CallToolRequest{}, tt.input)
			if err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestHandleRemoveFood(t *testing.T) {
	g := setupTestGateway(t)
	server, _ := NewServer(g)
	ctx := context.Background()

	_, _, err := server.handleLogFood(ctx, &mcp.CallToolRequest{}, logFoodInput{
		Name: "Nasi Putih", AmountGrams: 100, Date: "2026-09-01",
	})
	if err != nil {
		t.Fatal(err)
	}

	_, output, err := server.handleRemoveFood(ctx, &mcp.CallToolRequest{}, removeFoodInput{
		Index: 0, Date: "2026-09-01",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if output.Message == "" {
		t.Error("Expected non-empty message")
	}

	if j := g.Journal("2026-09-01"); len(j.Foods) != 0 {
		t.Errorf("journal has %d entries after removal, want 0", len(j.Foods))
	}
}

func TestHandleRemoveFoodOutOfRange(t *testing.T) {
	server, _ := NewServer(setupTestGateway(t))
	ctx := context.Background()

	_, _, err := server.handleRemoveFood(ctx, &mcp.CallToolRequest{}, removeFoodInput{
		Index: 5, Date: "2026-09-01",
	})
	if err == nil {
		t.Error("Expected error for out-of-range index")
	}
}

func TestHandleAddWater(t *testing.T) {
	g := setupTestGateway(t)
	server, _ := NewServer(g)
	ctx := context.Background()

	for i := 0; i < models.WaterTarget; i++ {
		_, _, err := server.handleAddWater(ctx, &mcp.CallToolRequest{}, dateInput{Date: "2026-09-01"})
		if err != nil {
			t.Fatalf("glass %d: unexpected error: %v", i+1, err)
		}
	}

	// Target reached: the next glass is rejected.
	_, _, err := server.handleAddWater(ctx, &mcp.CallToolRequest{}, dateInput{Date: "2026-09-01"})
	if err == nil {
		t.Error("Expected error past water target")
	}

	if j := g.Journal("2026-09-01"); j.WaterGlasses != models.WaterTarget {
		t.Errorf("WaterGlasses = %d, want %d", j.WaterGlasses, models.WaterTarget)
	}
}

func TestHandleDaySummary(t *testing.T) {
	g := setupTestGateway(t)
	server, _ := NewServer(g)
	ctx := context.Background()

	if err := g.PutProfile(models.Profile{Age: 25, Weight: 70, Height: 175, Sex: models.SexMale, ActivityFactor: 1.55}); err != nil {
		t.Fatal(err)
	}
	_, _, err := server.handleLogFood(ctx, &mcp.CallToolRequest{}, logFoodInput{
		Name: "Mie Instan", AmountGrams: 100, Date: "2026-09-01",
	})
	if err != nil {
		t.Fatal(err)
	}

	_, output, err := server.handleDaySummary(ctx, &mcp.CallToolRequest{}, dateInput{Date: "2026-09-01"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if output.Entries != 1 {
		t.Errorf("Entries = %d, want 1", output.Entries)
	}
	if output.Totals.Calories != 436 {
		t.Errorf("Calories = %v, want 436", output.Totals.Calories)
	}
	if output.TargetCalories == 0 {
		t.Error("Expected non-zero target with a saved profile")
	}
	if len(output.Additives) == 0 {
		t.Error("Expected additives from instant noodles")
	}
}

func TestHandleWeeklyReport(t *testing.T) {
	server, _ := NewServer(setupTestGateway(t))
	ctx := context.Background()

	_, output, err := server.handleWeeklyReport(ctx, &mcp.CallToolRequest{}, dateInput{Date: "2026-09-01"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if output == nil {
		t.Error("Expected non-nil report")
	}
}

func TestHandleComputeNeedsDefaults(t *testing.T) {
	server, _ := NewServer(setupTestGateway(t))
	ctx := context.Background()

	// No saved profile: falls back to defaults rather than erroring.
	_, output, err := server.handleComputeNeeds(ctx, &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if output == nil {
		t.Error("Expected non-nil needs result")
	}
}

func TestHandleSetProfile(t *testing.T) {
	g := setupTestGateway(t)
	server, _ := NewServer(g)
	ctx := context.Background()

	_, output, err := server.handleSetProfile(ctx, &mcp.CallToolRequest{}, setProfileInput{
		Age: 25, Weight: 70, Height: 175, Sex: "male", ActivityFactor: 1.55,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if output.Message == "" {
		t.Error("Expected non-empty message")
	}

	p := g.Profile()
	if p == nil {
		t.Fatal("Profile not saved")
	}
	if p.Weight != 70 {
		t.Errorf("Weight = %v, want 70", p.Weight)
	}
}

func TestHandleSetProfileInvalidSex(t *testing.T) {
	server, _ := NewServer(setupTestGateway(t))
	ctx := context.Background()

	_, _, err := server.handleSetProfile(ctx, &mcp.CallToolRequest{}, setProfileInput{
		Age: 25, Weight: 70, Height: 175, Sex: "other",
	})
	if err == nil {
		t.Error("Expected error for invalid sex")
	}
}

func TestHandleTodayResource(t *testing.T) {
	server, _ := NewServer(setupTestGateway(t))
	ctx := context.Background()

	result, err := server.handleTodayResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result == nil {
		t.Fatal("Expected non-nil result")
	}
	if len(result.Contents) == 0 {
		t.Fatal("Expected non-empty contents")
	}
	if result.Contents[0].URI != "nutriscan://today" {
		t.Errorf("URI = %s, want nutriscan://today", result.Contents[0].URI)
	}
	if result.Contents[0].MIMEType != "application/json" {
		t.Errorf("MIMEType = %s, want application/json", result.Contents[0].MIMEType)
	}
}

func TestHandleWeekResource(t *testing.T) {
	server, _ := NewServer(setupTestGateway(t))
	ctx := context.Background()

	result, err := server.handleWeekResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result == nil || len(result.Contents) == 0 {
		t.Fatal("Expected non-empty result")
	}
	if result.Contents[0].URI != "nutriscan://week" {
		t.Errorf("URI = %s, want nutriscan://week", result.Contents[0].URI)
	}
}

func TestHandleCatalogResource(t *testing.T) {
	server, _ := NewServer(setupTestGateway(t))
	ctx := context.Background()

	result, err := server.handleCatalogResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result == nil || len(result.Contents) == 0 {
		t.Fatal("Expected non-empty result")
	}
	if result.Contents[0].Text == "" {
		t.Error("Expected non-empty catalog text")
	}
}
