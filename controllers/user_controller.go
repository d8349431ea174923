package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prithvi-path/api-go/gamification"
	"github.com/prithvi-path/api-go/models"
	"github.com/prithvi-path/api-go/store"
	"gorm.io/gorm"
)

type UserController struct {
	DB      *gorm.DB // nil when running without a database
	Ledgers *gamification.Registry
}

type SimulateStepsRequest struct {
	Steps int `json:"steps" binding:"required,min=0"`
}

func NewUserController(db *gorm.DB, ledgers *gamification.Registry) *UserController {
	return &UserController{DB: db, Ledgers: ledgers}
}

// GetUserProfile godoc
// @Summary Get a user's gamification profile
// @Description Ledger totals, recent activity, badges and today's stats
// @Tags users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} StandardResponse
// @Router /user/{userId}/profile [get]
func (uc *UserController) GetUserProfile(c *gin.Context) {
	snap := uc.Ledgers.ForUser(c.Param("userId")).Snapshot()

	badges := make([]gin.H, 0, len(snap.Badges))
	for _, b := range store.SeedBadges() {
		unlockedAt, unlocked := snap.Badges[b.ID]
		entry := gin.H{
			"id":          b.ID,
			"name":        b.Name,
			"description": b.Description,
			"icon":        b.Icon,
			"criteria":    b.Criteria,
			"isUnlocked":  unlocked,
		}
		if unlocked {
			entry["unlockedAt"] = unlockedAt
		}
		badges = append(badges, entry)
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: gin.H{
			"ledger":     snap,
			"badges":     badges,
			"todayStats": todayStats(snap),
		},
	})
}

// SimulateSteps godoc
// @Summary Report the day's step count and collect the milestone bonus
// @Description Awards only the delta over what was already granted today
// @Tags users
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param steps body SimulateStepsRequest true "Step count"
// @Success 200 {object} StandardResponse
// @Router /user/{userId}/steps [post]
func (uc *UserController) SimulateSteps(c *gin.Context) {
	var req SimulateStepsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	ledger := uc.Ledgers.ForUser(c.Param("userId"))
	awarded := ledger.DailyStepUpdate(req.Steps)
	snap := ledger.Snapshot()
	if awarded > 0 {
		uc.persistLedger(c.Param("userId"), snap)
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data: gin.H{
			"dailySteps":    snap.DailySteps,
			"stepPoints":    snap.StepPointsToday,
			"pointsAwarded": awarded,
			"ecoPoints":     snap.EcoPoints,
		},
	})
}

// GetRecentActivity godoc
// @Summary Get the user's bounded recent activity view
// @Tags users
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} StandardResponse
// @Router /user/{userId}/activity [get]
func (uc *UserController) GetRecentActivity(c *gin.Context) {
	snap := uc.Ledgers.ForUser(c.Param("userId")).Snapshot()
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: snap.Recent})
}

// todayStats summarizes today's slice of the recent activity view.
func todayStats(snap gamification.Snapshot) gin.H {
	today := time.Now()
	bottles, waste, points := 0, 0, 0
	for _, entry := range snap.Recent {
		if !sameDate(entry.Timestamp, today) {
			continue
		}
		switch entry.Action {
		case "water-refill":
			bottles++
		case "waste-deposit":
			waste++
		}
		points += entry.TotalPoints
	}
	return gin.H{
		"bottlesRefilled": bottles,
		"wasteDisposed":   waste,
		"stepsWalked":     snap.DailySteps,
		"pointsEarned":    points,
	}
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// persistLedger mirrors ledger totals onto the users table when a
// database is configured. Best effort; session state stays canonical.
func (uc *UserController) persistLedger(userID string, snap gamification.Snapshot) {
	if uc.DB == nil {
		return
	}
	uc.DB.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"eco_points":            snap.EcoPoints,
		"total_bottles_saved":   snap.BottlesSaved,
		"total_distance_walked": snap.DistanceWalked,
	})
}
