package gamification

import (
	"errors"
	"strings"

	"github.com/prithvi-path/api-go/models"
	"github.com/prithvi-path/api-go/types"
)

// Check-in rejections the caller must be able to tell apart.
var (
	ErrCodeMismatch      = errors.New("qr code mismatch")
	ErrActionUnavailable = errors.New("action not available at this location")
)

// Award is the outcome of evaluating a valid check-in. Evaluation is
// side-effect free; applying the award to a ledger is the caller's job.
type Award struct {
	ActionType        types.ActionType `json:"actionType"`
	ActionDescription string           `json:"actionDescription"`
	BasePoints        int              `json:"basePoints"`
	BonusPoints       int              `json:"bonusPoints"`
	TotalPoints       int              `json:"totalPoints"`
	BonusReasons      []string         `json:"bonusReasons"`
	StoryEligible     bool             `json:"storyEligible"`
}

// bonusRule is one independent regional bonus. Rules are additive and
// order-insensitive; reasons are reported in catalog order.
type bonusRule struct {
	Points  int
	Reason  string
	Applies func(loc *models.EcoLocation) bool
}

var regionBonusRules = []bonusRule{
	{
		Points: types.MOUNTAIN_BONUS_POINTS,
		Reason: "Mountain location bonus",
		Applies: func(loc *models.EcoLocation) bool {
			return loc.Latitude >= types.MountainLatMin && loc.Latitude < types.MountainLatMax
		},
	},
	{
		Points: types.HERITAGE_BONUS_POINTS,
		Reason: "Cultural heritage site bonus",
		Applies: func(loc *models.EcoLocation) bool {
			return loc.Type == types.LocationCulturalHeritage
		},
	},
	{
		Points: types.HIGH_ALTITUDE_BONUS_POINTS,
		Reason: "High altitude location bonus",
		Applies: func(loc *models.EcoLocation) bool {
			addr := strings.ToLower(loc.Address)
			for _, town := range types.HighAltitudeTowns {
				if strings.Contains(addr, town) {
					return true
				}
			}
			return false
		},
	},
}

// EvaluateCheckin validates a presented code and action against a
// location and computes the award. It never mutates the location or any
// ledger state.
func EvaluateCheckin(loc *models.EcoLocation, qrCode string, actionType types.ActionType) (*Award, error) {
	if qrCode != loc.QRCode {
		return nil, ErrCodeMismatch
	}

	action := loc.ActionOfType(actionType)
	if action == nil {
		return nil, ErrActionUnavailable
	}

	award := &Award{
		ActionType:        action.Type,
		ActionDescription: action.Description,
		BasePoints:        action.Points,
		BonusReasons:      []string{},
	}
	for _, rule := range regionBonusRules {
		if rule.Applies(loc) {
			award.BonusPoints += rule.Points
			award.BonusReasons = append(award.BonusReasons, rule.Reason)
		}
	}
	award.TotalPoints = award.BasePoints + award.BonusPoints
	award.StoryEligible = actionType == types.ActionStoryUnlock && loc.Story != nil

	return award, nil
}
