// ABOUTME: MCP tool implementations for the nutrition tracker.
// ABOUTME: Food search, journal logging, needs calculation, and reports.
package mcp

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/nutriscan/internal/calc"
	"github.com/harperreed/nutriscan/internal/catalog"
	"github.com/harperreed/nutriscan/internal/journal"
	"github.com/harperreed/nutriscan/internal/models"
	"github.com/harperreed/nutriscan/internal/report"
	"github.com/harperreed/nutriscan/internal/storage"
)

func (s *Server) registerTools() {
	// search_foods
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_foods",
		Description: "Search the food catalog by name, with optional category and nutrition filters",
	}, s.handleSearchFoods)

	// additive_info
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "additive_info",
		Description: "Look up a food additive by E-number code",
	}, s.handleAdditiveInfo)

	// log_food
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_food",
		Description: "Log a catalog food into the daily journal",
	}, s.handleLogFood)

	// remove_food
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "remove_food",
		Description: "Remove an entry from the daily journal by index",
	}, s.handleRemoveFood)

	// add_water
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_water",
		Description: "Record one glass of water for the day",
	}, s.handleAddWater)

	// day_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "day_summary",
		Description: "Get a day's journal with totals, progress, and additives",
	}, s.handleDaySummary)

	// weekly_report
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "weekly_report",
		Description: "Get the rolling 7-day nutrition report",
	}, s.handleWeeklyReport)

	// compute_needs
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "compute_needs",
		Description: "Compute BMR, TDEE, BMI, and macro targets for the saved profile",
	}, s.handleComputeNeeds)

	// set_profile
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_profile",
		Description: "Save the user profile used for needs calculation",
	}, s.handleSetProfile)
}

// Tool input/output types

type searchFoodsInput struct {
	Query       string  `json:"query" jsonschema:"Search query (minimum 2 characters)"`
	Category    string  `json:"category,omitempty" jsonschema:"Filter by category ID (pokok, hewani, nabati, sayuran, buah, masakan, snack, minuman, bumbu, fastfood)"`
	MaxCalories float64 `json:"max_calories,omitempty" jsonschema:"Maximum calories per 100g"`
	MinProtein  float64 `json:"min_protein,omitempty" jsonschema:"Minimum protein per 100g"`
}

type additiveInfoInput struct {
	Code string `json:"code" jsonschema:"Additive E-number code (e.g. E621)"`
}

type logFoodInput struct {
	Name        string  `json:"name" jsonschema:"Exact catalog food name"`
	AmountGrams float64 `json:"amount_grams" jsonschema:"Amount in grams"`
	Meal        string  `json:"meal,omitempty" jsonschema:"Meal slot (breakfast, lunch, dinner, snack, other), defaults to other"`
	Date        string  `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
}

type logFoodOutput struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Message  string  `json:"message"`
}

type removeFoodInput struct {
	Index int    `json:"index" jsonschema:"Zero-based entry index within the day"`
	Date  string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
}

type dateInput struct {
	Date string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
}

type daySummaryOutput struct {
	Date            string         `json:"date"`
	Entries         int            `json:"entries"`
	Totals          journal.Totals `json:"totals"`
	TargetCalories  int            `json:"target_calories"`
	ProgressPercent float64        `json:"progress_percent"`
	WaterGlasses    int            `json:"water_glasses"`
	WaterML         int            `json:"water_ml"`
	Additives       []string       `json:"additives"`
}

type setProfileInput struct {
	Age            int     `json:"age" jsonschema:"Age in years"`
	Weight         float64 `json:"weight" jsonschema:"Weight in kilograms"`
	Height         float64 `json:"height" jsonschema:"Height in centimeters"`
	Sex            string  `json:"sex" jsonschema:"Biological sex (male or female)"`
	ActivityFactor float64 `json:"activity_factor,omitempty" jsonschema:"Activity multiplier (1.2, 1.375, 1.55, 1.725, or 1.9), defaults to 1.55"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// resolveDate defaults an empty date to today and validates the layout.
func resolveDate(date string) (string, error) {
	if date == "" {
		return storage.Today(), nil
	}
	if _, err := time.Parse(storage.DateLayout, date); err != nil {
		return "", fmt.Errorf("invalid date %q: want YYYY-MM-DD", date)
	}
	return date, nil
}

// Tool handlers

func (s *Server) handleSearchFoods(ctx context.Context, req *mcp.CallToolRequest, input searchFoodsInput) (*mcp.CallToolResult, any, error) {
	if utf8.RuneCountInString(input.Query) < catalog.MinQueryLength {
		return nil, nil, fmt.Errorf("query must be at least %d characters", catalog.MinQueryLength)
	}

	results := catalog.SearchFoods(input.Query, catalog.Filters{
		Category:    models.Category(input.Category),
		MaxCalories: input.MaxCalories,
		MinProtein:  input.MinProtein,
	})

	if len(results) == 0 {
		return nil, map[string]interface{}{"message": "No foods found."}, nil
	}
	return nil, results, nil
}

func (s *Server) handleAdditiveInfo(ctx context.Context, req *mcp.CallToolRequest, input additiveInfoInput) (*mcp.CallToolResult, any, error) {
	if input.Code == "" {
		return nil, nil, fmt.Errorf("code is required")
	}
	return nil, catalog.AdditiveInfo(input.Code), nil
}

func (s *Server) handleLogFood(ctx context.Context, req *mcp.CallToolRequest, input logFoodInput) (*mcp.CallToolResult, logFoodOutput, error) {
	food, ok := catalog.FoodByName(input.Name)
	if !ok {
		return nil, logFoodOutput{}, fmt.Errorf("food not found in catalog: %s", input.Name)
	}

	date, err := resolveDate(input.Date)
	if err != nil {
		return nil, logFoodOutput{}, err
	}

	meal := models.MealOther
	if input.Meal != "" {
		if !models.IsValidMealSlot(input.Meal) {
			return nil, logFoodOutput{}, fmt.Errorf("unknown meal slot: %s", input.Meal)
		}
		meal = models.MealSlot(input.Meal)
	}

	j := s.gateway.Journal(date)
	entry, err := journal.AddEntry(j, food, input.AmountGrams, meal)
	if err != nil {
		return nil, logFoodOutput{}, err
	}
	if err := s.gateway.PutJournal(date, j); err != nil {
		return nil, logFoodOutput{}, fmt.Errorf("failed to save journal: %w", err)
	}

	cal := journal.EntryCalories(entry)
	return nil, logFoodOutput{
		ID:       entry.ID.String(),
		Name:     entry.Name,
		Calories: cal,
		Message:  fmt.Sprintf("Logged %s (%.0fg, %.0f kcal) to %s", entry.Name, entry.AmountGrams, cal, date),
	}, nil
}

func (s *Server) handleRemoveFood(ctx context.Context, req *mcp.CallToolRequest, input removeFoodInput) (*mcp.CallToolResult, simpleOutput, error) {
	date, err := resolveDate(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	j := s.gateway.Journal(date)
	if err := journal.RemoveEntry(j, input.Index); err != nil {
		return nil, simpleOutput{}, err
	}
	if err := s.gateway.PutJournal(date, j); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save journal: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Removed entry %d from %s", input.Index, date),
	}, nil
}

func (s *Server) handleAddWater(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, simpleOutput, error) {
	date, err := resolveDate(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	j := s.gateway.Journal(date)
	if err := journal.AddWater(j); err != nil {
		return nil, simpleOutput{}, err
	}
	if err := s.gateway.PutJournal(date, j); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save journal: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Water: %d/%d glasses (%d ml)", j.WaterGlasses, models.WaterTarget, journal.WaterML(j)),
	}, nil
}

func (s *Server) handleDaySummary(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, daySummaryOutput, error) {
	date, err := resolveDate(input.Date)
	if err != nil {
		return nil, daySummaryOutput{}, err
	}

	j := s.gateway.Journal(date)
	totals := journal.Sum(j.Foods)

	var target int
	if p := s.gateway.Profile(); p != nil {
		target = calc.DailyNeeds(*p).TargetCalories
	}

	return nil, daySummaryOutput{
		Date:            date,
		Entries:         len(j.Foods),
		Totals:          totals,
		TargetCalories:  target,
		ProgressPercent: journal.ProgressPercent(totals.Calories, float64(target)),
		WaterGlasses:    j.WaterGlasses,
		WaterML:         journal.WaterML(j),
		Additives:       catalog.UniqueAdditivesOf(j.Foods),
	}, nil
}

func (s *Server) handleWeeklyReport(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, any, error) {
	today := time.Now()
	if input.Date != "" {
		t, err := time.Parse(storage.DateLayout, input.Date)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid date %q: want YYYY-MM-DD", input.Date)
		}
		today = t
	}

	return nil, report.WeeklySnapshot(s.gateway, today), nil
}

func (s *Server) handleComputeNeeds(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	p := models.DefaultProfile()
	if saved := s.gateway.Profile(); saved != nil {
		p = *saved
	}
	return nil, calc.DailyNeeds(p), nil
}

func (s *Server) handleSetProfile(ctx context.Context, req *mcp.CallToolRequest, input setProfileInput) (*mcp.CallToolResult, simpleOutput, error) {
	if !models.IsValidSex(input.Sex) {
		return nil, simpleOutput{}, fmt.Errorf("unknown sex: %s", input.Sex)
	}

	p := models.Profile{
		Age:            input.Age,
		Weight:         input.Weight,
		Height:         input.Height,
		Sex:            models.Sex(input.Sex),
		ActivityFactor: input.ActivityFactor,
	}.Normalize()

	if err := s.gateway.PutProfile(p); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save profile: %w", err)
	}

	needs := calc.DailyNeeds(p)
	return nil, simpleOutput{
		Message: fmt.Sprintf("Profile saved. Daily target: %d kcal (BMR %.1f, BMI %.1f)", needs.TargetCalories, needs.BMR, needs.BMI),
	}, nil
}
