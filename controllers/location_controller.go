package controllers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prithvi-path/api-go/store"
)

type LocationController struct {
	Store store.LocationStore
}

func NewLocationController(st store.LocationStore) *LocationController {
	return &LocationController{Store: st}
}

// GetLocations godoc
// @Summary List eco-locations with optional filters
// @Tags locations
// @Produce json
// @Param type query string false "Location type, or all"
// @Param search query string false "Name/address substring"
// @Param lat query number false "Latitude for radius filter"
// @Param lng query number false "Longitude for radius filter"
// @Param radius query number false "Radius in kilometers"
// @Success 200 {object} StandardResponse
// @Router /locations [get]
func (lc *LocationController) GetLocations(c *gin.Context) {
	filters := store.LocationFilters{
		Type:   c.Query("type"),
		Search: c.Query("search"),
	}
	// The radius filter only applies when all three of lat, lng and
	// radius parse; a partial set is ignored rather than rejected.
	if lat, ok := parseFloatParam(c.Request.URL.Query(), "lat"); ok {
		if lng, ok := parseFloatParam(c.Request.URL.Query(), "lng"); ok {
			if radius, ok := parseFloatParam(c.Request.URL.Query(), "radius"); ok {
				filters.Lat, filters.Lng, filters.Radius = &lat, &lng, &radius
			}
		}
	}

	locations, err := lc.Store.ListLocations(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error fetching locations"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    locations,
		Meta:    gin.H{"total": len(locations)},
	})
}

// GetLocation godoc
// @Summary Get one eco-location by id
// @Tags locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} StandardResponse
// @Router /locations/{id} [get]
func (lc *LocationController) GetLocation(c *gin.Context) {
	location, err := lc.Store.FindLocationByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Location not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error fetching location"})
		return
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: location})
}

// GetUserLocations godoc
// @Summary Get a user's check-in history
// @Tags locations
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} StandardResponse
// @Router /user/{userId}/locations [get]
func (lc *LocationController) GetUserLocations(c *gin.Context) {
	checkins, err := lc.Store.ListUserCheckins(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error fetching check-in history"})
		return
	}
	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: checkins})
}

func parseFloatParam(query url.Values, key string) (float64, bool) {
	raw := query.Get(key)
	if raw == "" {
		return 0, false
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return val, true
}
