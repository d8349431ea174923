package types

// Base point values for eco-actions.
const (
	WATER_REFILL_POINTS   = 20
	WASTE_DEPOSIT_POINTS  = 30
	ECO_RESTAURANT_POINTS = 50
	VISIT_POINTS          = 40
	STORY_UNLOCK_POINTS   = 25
)

// Himachal Pradesh regional bonuses applied on top of the action's base
// value during check-in evaluation.
const (
	MOUNTAIN_BONUS_POINTS      = 5
	HERITAGE_BONUS_POINTS      = 10
	HIGH_ALTITUDE_BONUS_POINTS = 8
	// Present in the bonus table but not wired to any rule; an earlier
	// API variant computed it without ever returning it.
	LOCAL_CULTURE_BONUS_POINTS = 12
)

// Daily step milestone bonuses.
const (
	STEPS_5K_POINTS  = 50
	STEPS_8K_POINTS  = 100
	STEPS_12K_POINTS = 200
	STEPS_15K_POINTS = 300
)

// Himachal latitude band qualifying for the mountain bonus: [min, max).
const (
	MountainLatMin = 30.0
	MountainLatMax = 33.0
)

// Towns above ~2000m whose presence in a location address qualifies for
// the high-altitude bonus. Matched case-insensitively as substrings.
var HighAltitudeTowns = []string{"shimla", "manali", "dharamshala"}

type ActionType string

const (
	ActionWaterRefill        ActionType = "water-refill"
	ActionWasteDeposit       ActionType = "waste-deposit"
	ActionVisit              ActionType = "visit"
	ActionStoryUnlock        ActionType = "story-unlock"
	ActionEcoRestaurantVisit ActionType = "eco-restaurant-visit"
)

// ActionPoints maps an action type to its base point value.
var ActionPoints = map[ActionType]int{
	ActionWaterRefill:        WATER_REFILL_POINTS,
	ActionWasteDeposit:       WASTE_DEPOSIT_POINTS,
	ActionVisit:              VISIT_POINTS,
	ActionStoryUnlock:        STORY_UNLOCK_POINTS,
	ActionEcoRestaurantVisit: ECO_RESTAURANT_POINTS,
}

type LocationType string

const (
	LocationWaterRefill      LocationType = "water-refill"
	LocationEcoRestaurant    LocationType = "eco-restaurant"
	LocationWasteDisposal    LocationType = "waste-disposal"
	LocationCulturalSite     LocationType = "cultural-site"
	LocationCulturalHeritage LocationType = "cultural-heritage"
	LocationEcoAccommodation LocationType = "eco-accommodation"
)

// StepMilestone is one daily step threshold and its bonus.
type StepMilestone struct {
	Steps  int
	Points int
}

// StepMilestones is ordered highest first; the first threshold a step
// count reaches determines the day's bonus tier.
var StepMilestones = []StepMilestone{
	{15000, STEPS_15K_POINTS},
	{12000, STEPS_12K_POINTS},
	{8000, STEPS_8K_POINTS},
	{5000, STEPS_5K_POINTS},
}

// StepBonusFor returns the bonus tier for a step count, 0 below 5k.
func StepBonusFor(steps int) int {
	for _, m := range StepMilestones {
		if steps >= m.Steps {
			return m.Points
		}
	}
	return 0
}
