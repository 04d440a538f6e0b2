// ABOUTME: Daily nutritional needs calculator: BMR, TDEE, BMI, macro targets.
// ABOUTME: Pure functions based on the Mifflin-St Jeor equation; never errors.
package calc

import (
	"math"

	"github.com/harperreed/nutriscan/internal/models"
)

// Energy densities used for macro target distribution (kcal per gram).
const (
	FatKcalPerGram  = 9
	CarbKcalPerGram = 4

	proteinGramsPerKg = 1.2
	fatEnergyShare    = 0.25
	carbEnergyShare   = 0.50
)

// BMICategoryKey identifies a WHO weight classification.
type BMICategoryKey string

const (
	BMIUnderweight BMICategoryKey = "underweight"
	BMINormal      BMICategoryKey = "normal"
	BMIOverweight  BMICategoryKey = "overweight"
	BMIObese       BMICategoryKey = "obese"
)

// BMICategory carries the display label, color, and advisory tip for a
// classification. The presentation layer consumes these as-is.
type BMICategory struct {
	Key   BMICategoryKey
	Label string
	Color string
	Tip   string
}

var bmiCategories = map[BMICategoryKey]BMICategory{
	BMIUnderweight: {BMIUnderweight, "Kurus (Underweight)", "#3b82f6", "Perbanyak asupan protein dan karbohidrat kompleks."},
	BMINormal:      {BMINormal, "Normal (Ideal)", "#22c55e", "Pertahankan gaya hidup sehat Anda!"},
	BMIOverweight:  {BMIOverweight, "Gemuk (Overweight)", "#f59e0b", "Kurangi gula/lemak, tambah aktivitas fisik."},
	BMIObese:       {BMIObese, "Obesitas", "#ef4444", "Segera konsultasikan ke dokter/ahli gizi."},
}

// MacroTargets is the recommended daily macro distribution in grams.
type MacroTargets struct {
	ProteinG int `json:"protein_g"`
	FatG     int `json:"fat_g"`
	CarbG    int `json:"carb_g"`
}

// NeedsResult is the full derived output for one profile. It is recomputed
// on every profile change and never persisted.
type NeedsResult struct {
	BMR            float64     `json:"bmr"`
	TDEE           int         `json:"tdee"`
	BMI            float64     `json:"bmi"`
	BMICategory    BMICategory `json:"bmi_category"`
	TargetCalories int         `json:"target_calories"`
	Targets        MacroTargets
}

// BMR computes the Basal Metabolic Rate (kcal/day) using Mifflin-St Jeor:
//
//	male:   10*weight + 6.25*height - 5*age + 5
//	female: 10*weight + 6.25*height - 5*age - 161
//
// No rounding is applied here.
func BMR(weight, height float64, age int, sex models.Sex) float64 {
	base := 10*weight + 6.25*height - 5*float64(age)
	if sex == models.SexMale {
		return base + 5
	}
	return base - 161
}

// TDEE scales a BMR by an activity factor and rounds to whole kcal.
func TDEE(bmr, activityFactor float64) int {
	return int(math.Round(bmr * activityFactor))
}

// BMI computes weight/(height/100)^2. Returns 0 as a "not computable"
// sentinel when either input is non-positive; callers must not treat 0 as a
// real BMI.
func BMI(weight, height float64) float64 {
	if weight <= 0 || height <= 0 {
		return 0
	}
	m := height / 100
	return weight / (m * m)
}

// ClassifyBMI maps a BMI to its WHO category. Thresholds are strict upper
// bounds: <18.5 underweight, <25 normal, <30 overweight, else obese.
func ClassifyBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return bmiCategories[BMIUnderweight]
	case bmi < 25:
		return bmiCategories[BMINormal]
	case bmi < 30:
		return bmiCategories[BMIOverweight]
	default:
		return bmiCategories[BMIObese]
	}
}

// Macros computes the recommended macro targets: 1.2 g protein per kg body
// weight, 25% of TDEE from fat, 50% from carbohydrate.
func Macros(weight float64, tdee int) MacroTargets {
	return MacroTargets{
		ProteinG: int(math.Round(weight * proteinGramsPerKg)),
		FatG:     int(math.Round(float64(tdee) * fatEnergyShare / FatKcalPerGram)),
		CarbG:    int(math.Round(float64(tdee) * carbEnergyShare / CarbKcalPerGram)),
	}
}

// DailyNeeds composes the calculators above for a complete profile. Missing
// or invalid fields degrade to the documented defaults rather than erroring.
func DailyNeeds(p models.Profile) NeedsResult {
	p = p.Normalize()

	bmr := BMR(p.Weight, p.Height, p.Age, p.Sex)
	tdee := TDEE(bmr, p.ActivityFactor)
	bmi := BMI(p.Weight, p.Height)

	return NeedsResult{
		BMR:            bmr,
		TDEE:           tdee,
		BMI:            bmi,
		BMICategory:    ClassifyBMI(bmi),
		TargetCalories: tdee,
		Targets:        Macros(p.Weight, tdee),
	}
}

// BMIIndicatorPosition maps a BMI from the display domain [15,35] onto a
// gauge position in [0,100], clamped at both ends.
func BMIIndicatorPosition(bmi float64) float64 {
	const minBMI, maxBMI = 15.0, 35.0
	percent := (bmi - minBMI) / (maxBMI - minBMI) * 100
	return math.Max(0, math.Min(100, percent))
}
