package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prithvi-path/api-go/gamification"
	"github.com/prithvi-path/api-go/stories"
	"github.com/prithvi-path/api-go/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkinFixture struct {
	router  *gin.Engine
	store   *store.MockStore
	ledgers *gamification.Registry
}

func newCheckinFixture() *checkinFixture {
	gin.SetMode(gin.TestMode)
	mock := store.NewMockStore()
	ledgers := gamification.NewRegistry()
	storySvc := stories.NewService(mock, ledgers)
	controller := NewCheckinController(mock, ledgers, storySvc)

	router := gin.New()
	router.POST("/api/locations/:id/checkin", controller.Checkin)
	return &checkinFixture{router: router, store: mock, ledgers: ledgers}
}

func (f *checkinFixture) post(t *testing.T, locationID string, body gin.H) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/locations/%s/checkin", locationID), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestCheckinAwardsPointsWithBonuses(t *testing.T) {
	f := newCheckinFixture()

	w, resp := f.post(t, "shimla-jakhoo-temple", gin.H{
		"userId": "user-1",
		"qrCode": "PRITHVI-CH-SHIMLA-002",
		"action": "visit",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, resp["success"])

	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(63), data["pointsEarned"])
	assert.Equal(t, float64(40), data["basePoints"])
	assert.Equal(t, float64(23), data["bonusPoints"])
	assert.Equal(t, []interface{}{
		"Mountain location bonus",
		"Cultural heritage site bonus",
		"High altitude location bonus",
	}, data["bonusReasons"])
	assert.Equal(t, false, data["storyUnlocked"])
	assert.Contains(t, data["message"], "63 eco-points")

	// The award landed on the ledger and the record in the store.
	assert.Equal(t, 63, f.ledgers.ForUser("user-1").Snapshot().EcoPoints)
	history, err := f.store.ListUserCheckins(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestCheckinMissingFields(t *testing.T) {
	f := newCheckinFixture()

	w, resp := f.post(t, "shimla-jakhoo-temple", gin.H{
		"qrCode": "PRITHVI-CH-SHIMLA-002",
		"action": "visit",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, resp["success"])
	assert.Contains(t, resp["error"], "Missing required fields")

	// Nothing was recorded or awarded.
	history, err := f.store.ListUserCheckins(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestCheckinUnknownLocation(t *testing.T) {
	f := newCheckinFixture()

	w, resp := f.post(t, "goa-beach-shack", gin.H{
		"userId": "user-1",
		"qrCode": "PRITHVI-XX-GOA-999",
		"action": "visit",
	})

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, resp["error"], "not found in Himachal Pradesh network")
}

func TestCheckinQRCodeMismatch(t *testing.T) {
	f := newCheckinFixture()

	w, resp := f.post(t, "shimla-jakhoo-temple", gin.H{
		"userId": "user-1",
		"qrCode": "PRITHVI-WRONG",
		"action": "visit",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp["error"], "QR code mismatch")
	assert.Zero(t, f.ledgers.ForUser("user-1").Snapshot().EcoPoints)
}

func TestCheckinActionUnavailable(t *testing.T) {
	f := newCheckinFixture()

	w, resp := f.post(t, "shimla-ridge-water", gin.H{
		"userId": "user-1",
		"qrCode": "PRITHVI-WR-SHIMLA-001",
		"action": "waste-deposit",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, resp["error"], "'waste-deposit' not available")
}

func TestCheckinStoryUnlockIsIdempotent(t *testing.T) {
	f := newCheckinFixture()
	body := gin.H{
		"userId": "user-1",
		"qrCode": "PRITHVI-CH-SHIMLA-002",
		"action": "story-unlock",
	}

	w, resp := f.post(t, "shimla-jakhoo-temple", body)
	require.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, true, data["storyUnlocked"])
	require.NotNil(t, data["story"])

	// 25 base + 23 regional bonuses, awarded through the unlock path.
	assert.Equal(t, 48, f.ledgers.ForUser("user-1").Snapshot().EcoPoints)

	// Scanning the story action again records a check-in but never
	// re-awards the story points.
	w, _ = f.post(t, "shimla-jakhoo-temple", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 48, f.ledgers.ForUser("user-1").Snapshot().EcoPoints)
}
