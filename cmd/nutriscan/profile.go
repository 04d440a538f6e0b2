// ABOUTME: CLI commands for the user profile and daily needs.
// ABOUTME: Shows and updates the profile driving BMR/TDEE/BMI calculation.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/nutriscan/internal/calc"
	"github.com/harperreed/nutriscan/internal/models"
)

var (
	profileAge      int
	profileWeight   float64
	profileHeight   float64
	profileSex      string
	profileActivity float64
)

var profileCmd = &cobra.Command{
	Use:     "profile",
	Aliases: []string{"p"},
	Short:   "Show profile and daily needs",
	Long: `Show the saved profile along with the derived daily needs:
BMR (Mifflin-St Jeor), TDEE, BMI with category, and macro targets.

With no saved profile the defaults are used (age 17, 60 kg, 165 cm,
male, moderate activity).

EXAMPLES:

  nutriscan profile                 # Show profile and needs
  nutriscan profile set --age 25 --weight 70 --height 175 --sex male`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := models.DefaultProfile()
		saved := gateway.Profile()
		if saved != nil {
			p = *saved
		}
		needs := calc.DailyNeeds(p)

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		bold.Println("Profile")
		if saved == nil {
			faint.Println("  (defaults, nothing saved yet)")
		}
		fmt.Printf("  Age       %d\n", p.Age)
		fmt.Printf("  Weight    %.1f kg\n", p.Weight)
		fmt.Printf("  Height    %.1f cm\n", p.Height)
		fmt.Printf("  Sex       %s\n", p.Sex)
		fmt.Printf("  Activity  %.3g (%s)\n", p.ActivityFactor, activityLabel(p.ActivityFactor))

		fmt.Println()
		bold.Println("Daily Needs")
		fmt.Printf("  BMR       %.1f kcal\n", needs.BMR)
		fmt.Printf("  TDEE      %d kcal\n", needs.TDEE)
		fmt.Printf("  BMI       %.1f  %s\n", needs.BMI, needs.BMICategory.Label)
		faint.Printf("            %s\n", needs.BMICategory.Tip)
		fmt.Printf("  Targets   %dg protein, %dg fat, %dg carbs\n",
			needs.Targets.ProteinG, needs.Targets.FatG, needs.Targets.CarbG)

		return nil
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Save the profile",
	Long: `Save the profile used for needs calculation. Omitted or invalid
fields fall back to the defaults.

Activity factors: 1.2 sedentary, 1.375 light, 1.55 moderate,
1.725 active, 1.9 very active.

EXAMPLES:

  nutriscan profile set --age 25 --weight 70 --height 175 --sex male
  nutriscan profile set --weight 68.5 --activity 1.725`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if profileSex != "" && !models.IsValidSex(profileSex) {
			return fmt.Errorf("unknown sex: %s (use male or female)", profileSex)
		}

		// Start from the saved profile so partial updates keep the rest
		p := models.DefaultProfile()
		if saved := gateway.Profile(); saved != nil {
			p = *saved
		}

		if cmd.Flags().Changed("age") {
			p.Age = profileAge
		}
		if cmd.Flags().Changed("weight") {
			p.Weight = profileWeight
		}
		if cmd.Flags().Changed("height") {
			p.Height = profileHeight
		}
		if profileSex != "" {
			p.Sex = models.Sex(profileSex)
		}
		if cmd.Flags().Changed("activity") {
			p.ActivityFactor = profileActivity
		}
		p = p.Normalize()

		if err := gateway.PutProfile(p); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}

		needs := calc.DailyNeeds(p)
		color.Green("✓ Profile saved")
		fmt.Printf("  Daily target: %d kcal (BMI %.1f, %s)\n",
			needs.TargetCalories, needs.BMI, needs.BMICategory.Label)

		return nil
	},
}

func activityLabel(factor float64) string {
	for _, level := range models.ActivityLevels {
		if level.Factor == factor {
			return level.Label
		}
	}
	return "?"
}

func init() {
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "age in years")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "weight in kg")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "height in cm")
	profileSetCmd.Flags().StringVar(&profileSex, "sex", "", "male or female")
	profileSetCmd.Flags().Float64Var(&profileActivity, "activity", 0, "activity factor (1.2-1.9)")

	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}
