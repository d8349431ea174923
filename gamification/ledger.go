package gamification

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/prithvi-path/api-go/models"
	"github.com/prithvi-path/api-go/types"
)

// RecentActivityLimit bounds the per-user recent check-in view.
const RecentActivityLimit = 10

// kmPerStep converts a step delta into walked distance.
const kmPerStep = 0.00075

// Ledger holds one user's running totals and activity state. Every
// mutation goes through the ledger's mutex, so award, badge evaluation
// and story unlock are serialized per user and badge evaluation always
// observes the award that triggered it.
type Ledger struct {
	mu     sync.Mutex
	userID string
	now    func() time.Time

	ecoPoints      int
	bottlesSaved   int
	distanceWalked float64

	recent        []models.CheckIn // newest first, capped
	actionCounts  map[string]int
	locations     map[string]struct{}
	highAltitude  int // check-ins at locations with a high-altitude town in the id
	badges        map[string]time.Time
	stories       map[string]struct{}

	dailySteps      int
	stepPointsToday int
	lastStepUpdate  time.Time
}

// Snapshot is a read-only copy of ledger state, safe to hand to badge
// criteria and HTTP responses.
type Snapshot struct {
	UserID              string               `json:"userId"`
	EcoPoints           int                  `json:"ecoPoints"`
	BottlesSaved        int                  `json:"totalBottlesSaved"`
	DistanceWalked      float64              `json:"totalDistanceWalked"`
	Recent              []models.CheckIn     `json:"recentCheckIns"`
	ActionCounts        map[string]int       `json:"-"`
	DistinctLocations   int                  `json:"distinctLocations"`
	HighAltitudeVisits  int                  `json:"-"`
	StoriesUnlocked     []string             `json:"unlockedStories"`
	Badges              map[string]time.Time `json:"badges"`
	DailySteps          int                  `json:"dailySteps"`
	StepPointsToday     int                  `json:"stepPoints"`
}

// Registry hands out the per-user ledger, creating it on first use.
type Registry struct {
	mu      sync.Mutex
	ledgers map[string]*Ledger
	now     func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{ledgers: make(map[string]*Ledger), now: time.Now}
}

// NewRegistryAt uses a caller-supplied clock, for tests.
func NewRegistryAt(now func() time.Time) *Registry {
	return &Registry{ledgers: make(map[string]*Ledger), now: now}
}

func (r *Registry) ForUser(userID string) *Ledger {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.ledgers[userID]
	if !ok {
		l = &Ledger{
			userID:       userID,
			now:          r.now,
			actionCounts: make(map[string]int),
			locations:    make(map[string]struct{}),
			badges:       make(map[string]time.Time),
			stories:      make(map[string]struct{}),
		}
		r.ledgers[userID] = l
	}
	return l
}

// Users returns the ids of all users with a ledger this session.
func (r *Registry) Users() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.ledgers))
	for id := range r.ledgers {
		ids = append(ids, id)
	}
	return ids
}

// Award applies points for an activity, records it on the bounded
// activity view, and re-evaluates badges. Returns the ids of badges
// newly unlocked by this award.
func (l *Ledger) Award(kind string, points int, locationID string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.awardLocked(kind, points, locationID)
}

func (l *Ledger) awardLocked(kind string, points int, locationID string) []string {
	l.ecoPoints += points
	if kind == string(types.ActionWaterRefill) {
		l.bottlesSaved++
	}
	l.actionCounts[kind]++
	if locationID != "" {
		l.locations[locationID] = struct{}{}
		if isHighAltitudeLocation(locationID) {
			l.highAltitude++
		}
	}

	entry := models.CheckIn{
		ID:          fmt.Sprintf("%s-%d", kind, l.now().UnixNano()),
		UserID:      l.userID,
		LocationID:  locationID,
		Action:      kind,
		TotalPoints: points,
		Timestamp:   l.now(),
	}
	l.recordCheckInLocked(entry)

	return l.evaluateBadgesLocked()
}

// RecordCheckIn prepends a fully-built check-in record (the check-in
// endpoint builds richer entries than Award does) without granting
// points again.
func (l *Ledger) RecordCheckIn(entry models.CheckIn) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.recordCheckInLocked(entry)
}

func (l *Ledger) recordCheckInLocked(entry models.CheckIn) {
	l.recent = append([]models.CheckIn{entry}, l.recent...)
	if len(l.recent) > RecentActivityLimit {
		l.recent = l.recent[:RecentActivityLimit]
	}
}

// ApplyAward applies an evaluated check-in award: totals, counters, the
// activity entry, and a badge pass, all under one lock acquisition.
func (l *Ledger) ApplyAward(award *Award, rec models.CheckIn) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.ecoPoints += award.TotalPoints
	if award.ActionType == types.ActionWaterRefill {
		l.bottlesSaved++
	}
	l.actionCounts[string(award.ActionType)]++
	if rec.LocationID != "" {
		l.locations[rec.LocationID] = struct{}{}
		if isHighAltitudeLocation(rec.LocationID) {
			l.highAltitude++
		}
	}
	l.recordCheckInLocked(rec)

	return l.evaluateBadgesLocked()
}

// UnlockStory flips a story to unlocked for this user, exactly once.
// The second and later calls are no-ops that still report success and
// award nothing. First unlock awards the given points through the
// regular award path under kind story-unlock so badge criteria observe
// it.
func (l *Ledger) UnlockStory(storyID, locationID string, points int) (alreadyUnlocked bool, awarded int, newBadges []string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.stories[storyID]; ok {
		return true, 0, nil
	}
	l.stories[storyID] = struct{}{}
	newBadges = l.awardLocked(string(types.ActionStoryUnlock), points, locationID)
	return false, points, newBadges
}

// HasStory reports whether this user already unlocked a story.
func (l *Ledger) HasStory(storyID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.stories[storyID]
	return ok
}

// DailyStepUpdate records the day's step count and awards the milestone
// bonus delta. The granted amount per calendar day is monotone: a higher
// count later the same day tops up the difference, a repeat of the same
// tier grants nothing, and the counter resets at day rollover. Safe to
// call from a polling loop.
func (l *Ledger) DailyStepUpdate(steps int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if !sameDay(l.lastStepUpdate, now) {
		l.stepPointsToday = 0
		l.dailySteps = 0
	}
	if steps > l.dailySteps {
		l.distanceWalked += float64(steps-l.dailySteps) * kmPerStep
		l.dailySteps = steps
	}

	tier := types.StepBonusFor(l.dailySteps)
	delta := tier - l.stepPointsToday
	l.lastStepUpdate = now
	if delta <= 0 {
		return 0
	}
	l.stepPointsToday = tier
	l.awardLocked(fmt.Sprintf("%d steps", l.dailySteps), delta, "steps")
	return delta
}

// AddStories marks stories as already unlocked without awarding points,
// used when hydrating a ledger from persisted user state.
func (l *Ledger) AddStories(storyIDs []string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, id := range storyIDs {
		l.stories[id] = struct{}{}
	}
}

// Snapshot copies the ledger state for readers.
func (l *Ledger) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

func (l *Ledger) snapshotLocked() Snapshot {
	recent := make([]models.CheckIn, len(l.recent))
	copy(recent, l.recent)

	counts := make(map[string]int, len(l.actionCounts))
	for k, v := range l.actionCounts {
		counts[k] = v
	}

	stories := make([]string, 0, len(l.stories))
	for id := range l.stories {
		stories = append(stories, id)
	}

	badges := make(map[string]time.Time, len(l.badges))
	for id, at := range l.badges {
		badges[id] = at
	}

	return Snapshot{
		UserID:             l.userID,
		EcoPoints:          l.ecoPoints,
		BottlesSaved:       l.bottlesSaved,
		DistanceWalked:     l.distanceWalked,
		Recent:             recent,
		ActionCounts:       counts,
		DistinctLocations:  len(l.locations),
		HighAltitudeVisits: l.highAltitude,
		StoriesUnlocked:    stories,
		Badges:             badges,
		DailySteps:         l.dailySteps,
		StepPointsToday:    l.stepPointsToday,
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func isHighAltitudeLocation(locationID string) bool {
	lower := strings.ToLower(locationID)
	for _, town := range types.HighAltitudeTowns {
		if strings.Contains(lower, town) {
			return true
		}
	}
	return false
}
