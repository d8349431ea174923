package gamification

import (
	"fmt"
	"testing"

	"github.com/prithvi-path/api-go/types"
	"github.com/stretchr/testify/assert"
)

func TestWasteBadgeUnlocksAtThreshold(t *testing.T) {
	ledger := NewRegistry().ForUser("user-1")

	var unlocked []string
	for i := 0; i < WASTE_DEPOSITS_THRESHOLD; i++ {
		unlocked = ledger.Award(string(types.ActionWasteDeposit), types.WASTE_DEPOSIT_POINTS, "shimla-mall-waste")
	}
	assert.Contains(t, unlocked, "2")

	// Already unlocked; the next deposit reports nothing new.
	assert.NotContains(t, ledger.Award(string(types.ActionWasteDeposit), types.WASTE_DEPOSIT_POINTS, "shimla-mall-waste"), "2")
}

func TestVisitBadgeCombinesVisitKinds(t *testing.T) {
	ledger := NewRegistry().ForUser("user-1")

	for i := 0; i < 6; i++ {
		ledger.Award(string(types.ActionVisit), types.VISIT_POINTS, "kangra-eco-lodge")
	}
	var unlocked []string
	for i := 0; i < 4; i++ {
		unlocked = ledger.Award(string(types.ActionEcoRestaurantVisit), types.ECO_RESTAURANT_POINTS, "kangra-eco-lodge")
	}
	assert.Contains(t, unlocked, "3")
}

func TestStoryBadgesUnlockAtBothTiers(t *testing.T) {
	ledger := NewRegistry().ForUser("user-1")

	var unlocked []string
	for i := 0; i < CULTURAL_BRIDGE_THRESHOLD; i++ {
		unlocked = ledger.Award(string(types.ActionStoryUnlock), types.STORY_UNLOCK_POINTS, fmt.Sprintf("loc-%d", i))
	}
	assert.Contains(t, unlocked, "8")
	assert.NotContains(t, unlocked, "4")

	for i := CULTURAL_BRIDGE_THRESHOLD; i < STORY_COLLECTOR_THRESHOLD; i++ {
		unlocked = ledger.Award(string(types.ActionStoryUnlock), types.STORY_UNLOCK_POINTS, fmt.Sprintf("loc-%d", i))
	}
	assert.Contains(t, unlocked, "4")
}

func TestHighAltitudeBadgeCountsCheckins(t *testing.T) {
	ledger := NewRegistry().ForUser("user-1")

	// Repeat check-ins at one high-altitude location count individually.
	ledger.Award(string(types.ActionVisit), types.VISIT_POINTS, "shimla-jakhoo-temple")
	ledger.Award(string(types.ActionVisit), types.VISIT_POINTS, "shimla-jakhoo-temple")
	unlocked := ledger.Award(string(types.ActionVisit), types.VISIT_POINTS, "shimla-jakhoo-temple")
	assert.Contains(t, unlocked, "7")
}

func TestExplorerBadgeNeedsDistinctLocations(t *testing.T) {
	ledger := NewRegistry().ForUser("user-1")

	for i := 0; i < 10; i++ {
		ledger.Award(string(types.ActionVisit), types.VISIT_POINTS, "loc-same")
	}
	assert.NotContains(t, ledger.Snapshot().Badges, "6")

	for i := 0; i < DISTINCT_LOCATIONS_THRESHOLD; i++ {
		ledger.Award(string(types.ActionVisit), types.VISIT_POINTS, fmt.Sprintf("loc-%d", i))
	}
	assert.Contains(t, ledger.Snapshot().Badges, "6")
}

func TestEvaluateBadgesIdempotentOnUnchangedState(t *testing.T) {
	ledger := NewRegistry().ForUser("user-1")
	ledger.Award(string(types.ActionVisit), types.VISIT_POINTS, "kangra-eco-lodge")

	assert.Empty(t, ledger.EvaluateBadges())
	assert.Empty(t, ledger.EvaluateBadges())
}
