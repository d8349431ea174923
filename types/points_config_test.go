package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepBonusFor(t *testing.T) {
	cases := []struct {
		steps int
		want  int
	}{
		{0, 0},
		{4999, 0},
		{5000, STEPS_5K_POINTS},
		{7999, STEPS_5K_POINTS},
		{8000, STEPS_8K_POINTS},
		{12000, STEPS_12K_POINTS},
		{14999, STEPS_12K_POINTS},
		{15000, STEPS_15K_POINTS},
		{40000, STEPS_15K_POINTS},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, StepBonusFor(c.steps), "steps=%d", c.steps)
	}
}

func TestActionPointsCoversAllActions(t *testing.T) {
	for _, a := range []ActionType{ActionWaterRefill, ActionWasteDeposit, ActionVisit, ActionStoryUnlock, ActionEcoRestaurantVisit} {
		assert.Positive(t, ActionPoints[a], "action %s has no base value", a)
	}
}
