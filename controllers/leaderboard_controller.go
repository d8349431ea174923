package controllers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/prithvi-path/api-go/gamification"
	"github.com/prithvi-path/api-go/models"
	"gorm.io/gorm"
)

type LeaderboardController struct {
	DB      *gorm.DB // nil when running without a database
	Ledgers *gamification.Registry
}

type LeaderboardQuery struct {
	Page     int `form:"page,default=1" binding:"min=1"`
	PageSize int `form:"pageSize,default=10" binding:"min=1,max=50"`
}

type LeaderboardEntry struct {
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	EcoPoints int    `json:"ecoPoints"`
	Rank      int    `json:"rank"`
}

func NewLeaderboardController(db *gorm.DB, ledgers *gamification.Registry) *LeaderboardController {
	return &LeaderboardController{DB: db, Ledgers: ledgers}
}

// GetLeaderboard godoc
// @Summary Rank users by eco-points
// @Tags leaderboard
// @Produce json
// @Param page query integer false "Page number"
// @Param pageSize query integer false "Items per page"
// @Success 200 {object} StandardResponse
// @Router /leaderboard [get]
func (lc *LeaderboardController) GetLeaderboard(c *gin.Context) {
	var query LeaderboardQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	entries := lc.databaseEntries()
	if entries == nil {
		entries = lc.sessionEntries()
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].EcoPoints > entries[j].EcoPoints })
	for i := range entries {
		entries[i].Rank = i + 1
	}

	total := len(entries)
	offset := (query.Page - 1) * query.PageSize
	if offset > total {
		offset = total
	}
	end := offset + query.PageSize
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    entries[offset:end],
		Pagination: &PaginationMeta{
			CurrentPage: query.Page,
			PageSize:    query.PageSize,
			TotalItems:  int64(total),
			TotalPages:  (total + query.PageSize - 1) / query.PageSize,
		},
	})
}

func (lc *LeaderboardController) databaseEntries() []LeaderboardEntry {
	if lc.DB == nil {
		return nil
	}
	var users []models.User
	if err := lc.DB.Order("eco_points DESC").Limit(500).Find(&users).Error; err != nil {
		return nil
	}
	entries := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, LeaderboardEntry{UserID: u.ID, UserName: u.Name, EcoPoints: u.EcoPoints})
	}
	return entries
}

// sessionEntries ranks from in-memory ledgers when no database is
// reachable, so the endpoint still works in degraded mode.
func (lc *LeaderboardController) sessionEntries() []LeaderboardEntry {
	userIDs := lc.Ledgers.Users()
	entries := make([]LeaderboardEntry, 0, len(userIDs))
	for _, id := range userIDs {
		snap := lc.Ledgers.ForUser(id).Snapshot()
		entries = append(entries, LeaderboardEntry{UserID: id, UserName: id, EcoPoints: snap.EcoPoints})
	}
	return entries
}
