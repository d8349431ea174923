package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prithvi-path/api-go/models"
	"github.com/prithvi-path/api-go/store"
	"github.com/prithvi-path/api-go/utils"
	"gorm.io/gorm"
)

type ReviewController struct {
	DB    *gorm.DB // nil when running without a database
	Store store.LocationStore
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func NewReviewController(db *gorm.DB, st store.LocationStore) *ReviewController {
	return &ReviewController{DB: db, Store: st}
}

// GetReviews godoc
// @Summary List reviews for a location
// @Tags reviews
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} StandardResponse
// @Router /locations/{id}/reviews [get]
func (rc *ReviewController) GetReviews(c *gin.Context) {
	if _, err := rc.Store.FindLocationByID(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Location not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error fetching reviews"})
		return
	}

	var reviews []models.Review
	if rc.DB != nil {
		if err := rc.DB.Where("location_id = ?", c.Param("id")).
			Order("created_at DESC").
			Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error fetching reviews"})
			return
		}
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: reviews})
}

// CreateReview godoc
// @Summary Review a location and update its rating aggregate
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Param review body CreateReviewRequest true "Review"
// @Success 201 {object} StandardResponse
// @Router /locations/{id}/reviews [post]
func (rc *ReviewController) CreateReview(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	location, err := rc.Store.FindLocationByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Location not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error creating review"})
		return
	}

	if rc.DB == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "Reviews are unavailable right now"})
		return
	}

	review := models.Review{
		LocationID: location.ID,
		UserID:     user.UserID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		CreatedAt:  time.Now(),
	}

	// Review insert and aggregate update stay consistent or not at all.
	err = rc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		newCount := location.TotalReviews + 1
		newAverage := (location.AverageRating*float64(location.TotalReviews) + float64(req.Rating)) / float64(newCount)
		return tx.Model(&models.EcoLocation{}).Where("id = ?", location.ID).Updates(map[string]interface{}{
			"total_reviews":  newCount,
			"average_rating": newAverage,
		}).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create review"})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: review})
}
