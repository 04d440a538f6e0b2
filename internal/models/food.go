// ABOUTME: Food catalog and additive reference models.
// ABOUTME: Catalog entries are immutable reference data keyed by name and E-number.
package models

// Category identifies a food catalog category.
type Category string

const (
	CategoryAll      Category = "all"
	CategoryStaple   Category = "pokok"
	CategoryAnimal   Category = "hewani"
	CategoryPlant    Category = "nabati"
	CategoryVeggie   Category = "sayuran"
	CategoryFruit    Category = "buah"
	CategoryDish     Category = "masakan"
	CategorySnack    Category = "snack"
	CategoryDrink    Category = "minuman"
	CategorySauce    Category = "bumbu"
	CategoryFastFood Category = "fastfood"
)

// CategoryInfo pairs a category ID with its display name.
type CategoryInfo struct {
	ID   Category `json:"id"`
	Name string   `json:"name"`
}

// FoodDefinition is one immutable catalog entry. All nutritional values are
// per 100 grams.
type FoodDefinition struct {
	Name      string   `json:"name"`
	Calories  float64  `json:"cal"`
	Protein   float64  `json:"prot"`
	Fat       float64  `json:"fat"`
	Carbs     float64  `json:"carb"`
	Category  Category `json:"category"`
	Additives []string `json:"additives"`
}

// RiskLevel classifies the health impact of a food additive.
type RiskLevel string

const (
	RiskSafe    RiskLevel = "safe"
	RiskCaution RiskLevel = "caution"
	RiskDanger  RiskLevel = "danger"
)

// RiskLabels maps risk levels to their display labels.
var RiskLabels = map[RiskLevel]string{
	RiskSafe:    "Aman",
	RiskCaution: "Perhatian",
	RiskDanger:  "Bahaya",
}

// AdditiveDefinition describes a food additive by E-number.
type AdditiveDefinition struct {
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Formula   string    `json:"formula"`
	Structure string    `json:"structure"`
	Desc      string    `json:"desc"`
	Impact    string    `json:"impact"`
	Level     RiskLevel `json:"level"`
}
