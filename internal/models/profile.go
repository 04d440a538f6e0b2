// ABOUTME: Profile model with sex and activity-level enums.
// ABOUTME: Carries the defaults used when no profile has been saved yet.
package models

// Sex is the biological sex used by the Mifflin-St Jeor equation.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// IsValidSex checks if a string is a valid sex value.
func IsValidSex(s string) bool {
	return s == string(SexMale) || s == string(SexFemale)
}

// ActivityLevel pairs a TDEE multiplier with its display label.
type ActivityLevel struct {
	Factor float64
	Label  string
}

// ActivityLevels lists the supported TDEE multipliers, least active first.
var ActivityLevels = []ActivityLevel{
	{1.2, "Sedentari (jarang olahraga)"},
	{1.375, "Ringan (1-3x/minggu)"},
	{1.55, "Moderat (3-5x/minggu)"},
	{1.725, "Aktif (6-7x/minggu)"},
	{1.9, "Sangat Aktif (atlet)"},
}

// IsValidActivityFactor checks a multiplier against the fixed set.
func IsValidActivityFactor(f float64) bool {
	for _, lvl := range ActivityLevels {
		if lvl.Factor == f {
			return true
		}
	}
	return false
}

// Profile is the physiological profile daily needs are derived from.
type Profile struct {
	Age            int     `json:"age" yaml:"age"`
	Weight         float64 `json:"weight" yaml:"weight"`
	Height         float64 `json:"height" yaml:"height"`
	Sex            Sex     `json:"sex" yaml:"sex"`
	ActivityFactor float64 `json:"activity_factor" yaml:"activity_factor"`
}

// DefaultProfile returns the baseline profile used when no profile has been
// saved: a reasonably active student.
func DefaultProfile() Profile {
	return Profile{
		Age:            17,
		Weight:         60,
		Height:         165,
		Sex:            SexMale,
		ActivityFactor: 1.55,
	}
}

// Normalize fills any missing or invalid field from the defaults so that
// needs calculation always has a complete profile to work with.
func (p Profile) Normalize() Profile {
	def := DefaultProfile()
	if p.Age <= 0 {
		p.Age = def.Age
	}
	if p.Weight <= 0 {
		p.Weight = def.Weight
	}
	if p.Height <= 0 {
		p.Height = def.Height
	}
	if !IsValidSex(string(p.Sex)) {
		p.Sex = def.Sex
	}
	if !IsValidActivityFactor(p.ActivityFactor) {
		p.ActivityFactor = def.ActivityFactor
	}
	return p
}
