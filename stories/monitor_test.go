package stories

import (
	"context"
	"testing"

	"github.com/prithvi-path/api-go/gamification"
	"github.com/prithvi-path/api-go/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A point on the lower Jakhoo trail in Shimla, inside the geofence of
// both story-bearing heritage sites there; Christ Church is the closer
// of the two.
const (
	ridgeLat = 31.1030
	ridgeLng = 77.1780
)

func newTestMonitor() (*Monitor, *Service, *gamification.Registry) {
	ledgers := gamification.NewRegistry()
	st := store.NewMockStore()
	return NewMonitor(st, ledgers), NewService(st, ledgers), ledgers
}

func TestScanProximitySurfacesClosestStory(t *testing.T) {
	monitor, _, _ := newTestMonitor()

	n, err := monitor.ScanProximity(context.Background(), "user-1", ridgeLat, ridgeLng)
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, "shimla-christ-church", n.LocationID)
	assert.Equal(t, "story-4", n.Story.ID)
	assert.LessOrEqual(t, n.Distance, 0.01)
}

func TestScanProximityNothingNearby(t *testing.T) {
	monitor, _, _ := newTestMonitor()

	// Kangra lodge is nearby but carries no story.
	n, err := monitor.ScanProximity(context.Background(), "user-1", 32.1024, 76.2691)
	require.NoError(t, err)
	assert.Nil(t, n)
	assert.Nil(t, monitor.Pending("user-1"))
}

func TestScanProximityKeepsPendingNotification(t *testing.T) {
	monitor, _, _ := newTestMonitor()
	ctx := context.Background()

	first, err := monitor.ScanProximity(ctx, "user-1", ridgeLat, ridgeLng)
	require.NoError(t, err)
	require.NotNil(t, first)

	// Moving next to a different story does not replace the pending one.
	second, err := monitor.ScanProximity(ctx, "user-1", 32.2494, 77.1786)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, first, monitor.Pending("user-1"))
}

func TestDismissReleasesGeofence(t *testing.T) {
	monitor, _, _ := newTestMonitor()
	ctx := context.Background()

	_, err := monitor.ScanProximity(ctx, "user-1", ridgeLat, ridgeLng)
	require.NoError(t, err)

	monitor.Dismiss("user-1")
	assert.Nil(t, monitor.Pending("user-1"))

	// Nothing was retained; re-entering the geofence surfaces it again.
	n, err := monitor.ScanProximity(ctx, "user-1", ridgeLat, ridgeLng)
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, "story-4", n.Story.ID)
}

func TestScanProximitySkipsUnlockedStories(t *testing.T) {
	monitor, svc, _ := newTestMonitor()
	ctx := context.Background()

	_, err := svc.UnlockStory(ctx, "story-4", "user-1")
	require.NoError(t, err)

	n, err := monitor.ScanProximity(ctx, "user-1", ridgeLat, ridgeLng)
	require.NoError(t, err)
	require.NotNil(t, n)
	// Christ Church is unlocked, so the Jakhoo Temple story surfaces.
	assert.Equal(t, "story-1", n.Story.ID)
}

func TestScanProximityPerUser(t *testing.T) {
	monitor, _, _ := newTestMonitor()
	ctx := context.Background()

	_, err := monitor.ScanProximity(ctx, "user-1", ridgeLat, ridgeLng)
	require.NoError(t, err)

	assert.NotNil(t, monitor.Pending("user-1"))
	assert.Nil(t, monitor.Pending("user-2"))
}
