package tips

import (
	"github.com/JanviMahajan/watts-wise-flow/internal/models"

	"github.com/segmentio/ksuid"
)

type Tip struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	PotentialSavings string `json:"potential_savings"`
	Difficulty       string `json:"difficulty"` // "easy" | "medium" | "hard"
	Category         string `json:"category"`
}

var houseTips = withIDs([]Tip{
	{
		Title:            "Switch to LED lighting",
		Description:      "Replace incandescent and CFL bulbs with LEDs; they use up to 80% less energy and last far longer.",
		PotentialSavings: "5-10% of lighting costs",
		Difficulty:       "easy",
		Category:         "lighting",
	},
	{
		Title:            "Unplug idle electronics",
		Description:      "TVs, chargers and consoles draw standby power around the clock. Use a power strip to cut them off fully.",
		PotentialSavings: "Up to 10% of your bill",
		Difficulty:       "easy",
		Category:         "appliances",
	},
	{
		Title:            "Adjust thermostat by 1-2 degrees",
		Description:      "Each degree of heating or cooling you give up saves roughly 3% of HVAC energy.",
		PotentialSavings: "3-6% of heating/cooling costs",
		Difficulty:       "easy",
		Category:         "hvac",
	},
	{
		Title:            "Run appliances off-peak",
		Description:      "Shift dishwasher and laundry loads to off-peak hours if your tariff has time-of-use pricing.",
		PotentialSavings: "Varies by tariff",
		Difficulty:       "medium",
		Category:         "scheduling",
	},
	{
		Title:            "Improve insulation and seal drafts",
		Description:      "Seal window and door gaps and top up attic insulation to stop conditioned air leaking out.",
		PotentialSavings: "10-20% of heating/cooling costs",
		Difficulty:       "hard",
		Category:         "building",
	},
})

var shopTips = withIDs([]Tip{
	{
		Title:            "Schedule HVAC around opening hours",
		Description:      "Program heating and cooling to wind down 30 minutes before close and start shortly before open.",
		PotentialSavings: "10-15% of HVAC costs",
		Difficulty:       "easy",
		Category:         "hvac",
	},
	{
		Title:            "Switch display lighting to LED",
		Description:      "Display and signage lighting runs all day; LEDs cut that load by up to 80% with better colour rendering.",
		PotentialSavings: "15-25% of lighting costs",
		Difficulty:       "easy",
		Category:         "lighting",
	},
	{
		Title:            "Maintain refrigeration seals and coils",
		Description:      "Dirty condenser coils and worn door seals make fridges work much harder. Check them monthly.",
		PotentialSavings: "5-10% of refrigeration costs",
		Difficulty:       "medium",
		Category:         "refrigeration",
	},
	{
		Title:            "Compare usage across branches",
		Description:      "Use per-branch data to find outlier locations; a single poorly-performing site often dominates waste.",
		PotentialSavings: "Varies by site",
		Difficulty:       "medium",
		Category:         "monitoring",
	},
	{
		Title:            "Install sub-metering on heavy equipment",
		Description:      "Meter ovens, compressors and cold rooms separately to see where the base load really comes from.",
		PotentialSavings: "Enables targeted cuts of 10%+",
		Difficulty:       "hard",
		Category:         "monitoring",
	},
})

// withIDs stamps each tip with a generated id; the frontend treats tip
// ids as opaque strings.
func withIDs(ts []Tip) []Tip {
	for i := range ts {
		ts[i].ID = ksuid.New().String()
	}
	return ts
}

// For returns the tip set for a user type. Unknown types get the
// household set.
func For(userType models.UserType) []Tip {
	if userType == models.UserTypeShop {
		return shopTips
	}
	return houseTips
}
