package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prithvi-path/api-go/models"
	"github.com/prithvi-path/api-go/types"
	"gorm.io/gorm"
)

// AdminController manages the eco-location catalog and the user roster.
// Catalog writes need the database; without one the API stays read-only
// on the seeded data.
type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

type LocationInput struct {
	Name        string  `json:"name" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Latitude    float64 `json:"latitude" binding:"required"`
	Longitude   float64 `json:"longitude" binding:"required"`
	Address     string  `json:"address" binding:"required"`
	Description string  `json:"description"`
	EcoRating   int     `json:"ecoRating" binding:"min=0,max=5"`
	Image       string  `json:"image"`
	QRCode      string  `json:"qrCode" binding:"required"`

	Actions []struct {
		Type        string `json:"type" binding:"required"`
		Points      int    `json:"points"`
		Icon        string `json:"icon"`
		Description string `json:"description"`
	} `json:"actions"`
}

// CreateLocation godoc
// @Summary Add a new eco-location to the catalog
func (ac *AdminController) CreateLocation(c *gin.Context) {
	if ac.DB == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Catalog management requires a database", "success": false})
		return
	}

	var input LocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	loc := models.EcoLocation{
		ID:          locationID(input.Name),
		Name:        input.Name,
		Type:        types.LocationType(input.Type),
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Address:     input.Address,
		Description: input.Description,
		EcoRating:   input.EcoRating,
		Image:       input.Image,
		QRCode:      input.QRCode,
	}
	for _, a := range input.Actions {
		points := a.Points
		if points == 0 {
			points = types.ActionPoints[types.ActionType(a.Type)]
		}
		loc.AvailableActions = append(loc.AvailableActions, models.EcoAction{
			ID:          uuid.New().String(),
			LocationID:  loc.ID,
			Type:        types.ActionType(a.Type),
			Points:      points,
			Icon:        a.Icon,
			Description: a.Description,
		})
	}

	if err := ac.DB.Create(&loc).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create location", "success": false})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: loc, Message: "Location created"})
}

// UpdateLocation godoc
// @Summary Update catalog fields of an eco-location
func (ac *AdminController) UpdateLocation(c *gin.Context) {
	if ac.DB == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Catalog management requires a database", "success": false})
		return
	}

	var loc models.EcoLocation
	if err := ac.DB.Preload("AvailableActions").First(&loc, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found", "success": false})
		return
	}

	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	// Rating aggregates are owned by the review pipeline.
	delete(updates, "id")
	delete(updates, "average_rating")
	delete(updates, "total_reviews")

	if err := ac.DB.Model(&loc).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update location", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: loc, Message: "Location updated"})
}

// DeleteLocation godoc
// @Summary Remove an eco-location and its actions
func (ac *AdminController) DeleteLocation(c *gin.Context) {
	if ac.DB == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Catalog management requires a database", "success": false})
		return
	}

	id := c.Param("id")
	err := ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.EcoAction{}, "location_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.CulturalStory{}, "location_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.EcoLocation{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found", "success": false})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete location", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Location deleted"})
}

// ListUsers godoc
// @Summary List registered users, newest first
func (ac *AdminController) ListUsers(c *gin.Context) {
	if ac.DB == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "User management requires a database", "success": false})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var total int64
	ac.DB.Model(&models.User{}).Count(&total)

	var users []models.User
	if err := ac.DB.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    users,
		Pagination: &PaginationMeta{
			CurrentPage: page,
			PageSize:    limit,
			TotalItems:  total,
			TotalPages:  int((total + int64(limit) - 1) / int64(limit)),
		},
	})
}

// locationID derives a url-safe id from the location name, suffixed for
// uniqueness. Seeded locations use the same region-prefixed shape.
func locationID(name string) string {
	slug := strings.ToLower(strings.Join(strings.Fields(name), "-"))
	if len(slug) > 40 {
		slug = slug[:40]
	}
	return fmt.Sprintf("%s-%s", slug, uuid.New().String()[:8])
}
