package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prithvi-path/api-go/gamification"
	"github.com/prithvi-path/api-go/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userRouter(ledgers *gamification.Registry) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewUserController(nil, ledgers)

	router := gin.New()
	router.GET("/api/user/:userId/profile", controller.GetUserProfile)
	router.POST("/api/user/:userId/steps", controller.SimulateSteps)
	router.GET("/api/user/:userId/activity", controller.GetRecentActivity)
	return router
}

func postSteps(t *testing.T, router *gin.Engine, userID string, steps int) map[string]interface{} {
	t.Helper()
	payload, err := json.Marshal(gin.H{"steps": steps})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/user/"+userID+"/steps", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["data"].(map[string]interface{})
}

func TestSimulateStepsAwardsMilestoneOnce(t *testing.T) {
	ledgers := gamification.NewRegistry()
	router := userRouter(ledgers)

	data := postSteps(t, router, "user-1", 6000)
	assert.Equal(t, float64(types.STEPS_5K_POINTS), data["pointsAwarded"])
	assert.Equal(t, float64(6000), data["dailySteps"])

	// Re-reporting the same count grants nothing new.
	data = postSteps(t, router, "user-1", 6000)
	assert.Equal(t, float64(0), data["pointsAwarded"])
	assert.Equal(t, float64(types.STEPS_5K_POINTS), data["ecoPoints"])
}

func TestGetUserProfileListsFullBadgeCatalog(t *testing.T) {
	ledgers := gamification.NewRegistry()
	ledgers.ForUser("user-1").Award(string(types.ActionVisit), types.VISIT_POINTS, "shimla-christ-church")
	router := userRouter(ledgers)

	req := httptest.NewRequest(http.MethodGet, "/api/user/user-1/profile", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})

	badges := data["badges"].([]interface{})
	assert.Len(t, badges, 8)
	for _, raw := range badges {
		badge := raw.(map[string]interface{})
		assert.Equal(t, false, badge["isUnlocked"], "badge %v", badge["id"])
		assert.Nil(t, badge["unlockedAt"])
	}

	ledger := data["ledger"].(map[string]interface{})
	assert.Equal(t, float64(types.VISIT_POINTS), ledger["ecoPoints"])
}

func TestGetRecentActivityNewestFirst(t *testing.T) {
	ledgers := gamification.NewRegistry()
	ledger := ledgers.ForUser("user-1")
	ledger.Award(string(types.ActionVisit), types.VISIT_POINTS, "kangra-eco-lodge")
	ledger.Award(string(types.ActionWaterRefill), types.WATER_REFILL_POINTS, "shimla-ridge-water")
	router := userRouter(ledgers)

	req := httptest.NewRequest(http.MethodGet, "/api/user/user-1/activity", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	entries := resp["data"].([]interface{})
	require.Len(t, entries, 2)
	first := entries[0].(map[string]interface{})
	assert.Equal(t, "water-refill", first["action"])
}
