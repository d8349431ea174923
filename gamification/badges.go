package gamification

import (
	"github.com/prithvi-path/api-go/types"
)

// Badge criterion thresholds.
const (
	BOTTLES_SAVED_THRESHOLD      = 50
	WASTE_DEPOSITS_THRESHOLD     = 25
	VISITS_THRESHOLD             = 10
	STORY_COLLECTOR_THRESHOLD    = 15
	DISTANCE_WALKED_THRESHOLD    = 100.0
	DISTINCT_LOCATIONS_THRESHOLD = 5
	HIGH_ALTITUDE_THRESHOLD      = 3
	CULTURAL_BRIDGE_THRESHOLD    = 5
)

// badgeCriterion pairs a catalog badge id with its unlock predicate.
// Predicates are pure and recomputed from scratch on every evaluation;
// only a false->true transition unlocks, tracked per user on the ledger.
type badgeCriterion struct {
	ID  string
	Met func(s Snapshot) bool
}

var badgeCriteria = []badgeCriterion{
	{"1", func(s Snapshot) bool { // Plastic-Free Pro
		return s.BottlesSaved >= BOTTLES_SAVED_THRESHOLD
	}},
	{"2", func(s Snapshot) bool { // Mountain Guardian
		return s.ActionCounts[string(types.ActionWasteDeposit)] >= WASTE_DEPOSITS_THRESHOLD
	}},
	{"3", func(s Snapshot) bool { // Local Patron
		visits := s.ActionCounts[string(types.ActionVisit)] +
			s.ActionCounts[string(types.ActionEcoRestaurantVisit)]
		return visits >= VISITS_THRESHOLD
	}},
	{"4", func(s Snapshot) bool { // Story Collector
		return s.ActionCounts[string(types.ActionStoryUnlock)] >= STORY_COLLECTOR_THRESHOLD
	}},
	{"5", func(s Snapshot) bool { // Step Master
		return s.DistanceWalked >= DISTANCE_WALKED_THRESHOLD
	}},
	{"6", func(s Snapshot) bool { // Himalayan Explorer
		return s.DistinctLocations >= DISTINCT_LOCATIONS_THRESHOLD
	}},
	{"7", func(s Snapshot) bool { // High Altitude Hero
		return s.HighAltitudeVisits >= HIGH_ALTITUDE_THRESHOLD
	}},
	{"8", func(s Snapshot) bool { // Cultural Bridge
		return s.ActionCounts[string(types.ActionStoryUnlock)] >= CULTURAL_BRIDGE_THRESHOLD
	}},
}

// evaluateBadgesLocked runs every criterion against the current state
// and unlocks first-time-true ones. Caller holds the ledger lock.
func (l *Ledger) evaluateBadgesLocked() []string {
	s := l.snapshotLocked()
	var newlyUnlocked []string
	for _, c := range badgeCriteria {
		if _, unlocked := l.badges[c.ID]; unlocked {
			continue
		}
		if c.Met(s) {
			l.badges[c.ID] = l.now()
			newlyUnlocked = append(newlyUnlocked, c.ID)
		}
	}
	return newlyUnlocked
}

// EvaluateBadges re-runs all criteria for this ledger, outside of an
// award. Unchanged inputs yield an empty result.
func (l *Ledger) EvaluateBadges() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.evaluateBadgesLocked()
}
