package controllers

import (
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

func leaderboardRouter(ledgers *gamification.Registry) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewLeaderboardController(nil, ledgers)

	router := gin.New()
	router.GET("/api/leaderboard", controller.GetLeaderboard)
	return router
}

func TestLeaderboardRanksSessionLedgers(t *testing.T) {
	ledgers := gamification.NewRegistry()
	ledgers.ForUser("user-low").Award(string(types.ActionWaterRefill), 20, "shimla-ridge-water")
	ledgers.ForUser("user-high").Award(string(types.ActionEcoRestaurantVisit), 50, "manali-harvest-kitchen")
	ledgers.ForUser("user-mid").Award(string(types.ActionVisit), 40, "kangra-eco-lodge")
	router := leaderboardRouter(ledgers)

	req := httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	entries := resp["data"].([]interface{})
	require.Len(t, entries, 3)

	first := entries[0].(map[string]interface{})
	assert.Equal(t, "user-high", first["userId"])
	assert.Equal(t, float64(1), first["rank"])
	last := entries[2].(map[string]interface{})
	assert.Equal(t, "user-low", last["userId"])
	assert.Equal(t, float64(3), last["rank"])
}

func TestLeaderboardPagination(t *testing.T) {
	ledgers := gamification.NewRegistry()
	for i, id := range []string{"a", "b", "c"} {
		ledgers.ForUser(id).Award(string(types.ActionVisit), (i+1)*10, "kangra-eco-lodge")
	}
	router := leaderboardRouter(ledgers)

	req := httptest.NewRequest(http.MethodGet, "/api/leaderboard?page=2&pageSize=2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	entries := resp["data"].([]interface{})
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].(map[string]interface{})["userId"])

	pagination := resp["pagination"].(map[string]interface{})
	assert.Equal(t, float64(2), pagination["currentPage"])
	assert.Equal(t, float64(3), pagination["totalItems"])
	assert.Equal(t, float64(2), pagination["totalPages"])
}

func TestLeaderboardRejectsBadPageSize(t *testing.T) {
	router := leaderboardRouter(gamification.NewRegistry())

	req := httptest.NewRequest(http.MethodGet, "/api/leaderboard?pageSize=500", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
