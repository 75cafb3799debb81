package festivalControllers

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/meetchovatiya27/ecommarce-website/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.FestivalSale{}))
	return db
}

func seedSale(t *testing.T, db *gorm.DB, title string, start, end time.Time, active bool) *models.FestivalSale {
	t.Helper()
	sale := models.FestivalSale{
		Title:           title,
		DiscountPercent: 20,
		StartDate:       start,
		EndDate:         end,
		IsActive:        active,
	}
	require.NoError(t, db.Create(&sale).Error)
	return &sale
}

func TestActiveSaleWithinWindow(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)
	seedSale(t, db, "Diwali Sale", now.Add(-24*time.Hour), now.Add(24*time.Hour), true)

	sale, err := ActiveSale(db, now)
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.Equal(t, "Diwali Sale", sale.Title)
}

func TestActiveSaleInclusiveBounds(t *testing.T) {
	db := newTestDB(t)
	start := time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 10, 25, 0, 0, 0, 0, time.UTC)
	seedSale(t, db, "Diwali Sale", start, end, true)

	sale, err := ActiveSale(db, start)
	require.NoError(t, err)
	assert.NotNil(t, sale, "start boundary is inclusive")

	sale, err = ActiveSale(db, end)
	require.NoError(t, err)
	assert.NotNil(t, sale, "end boundary is inclusive")

	sale, err = ActiveSale(db, end.Add(time.Second))
	require.NoError(t, err)
	assert.Nil(t, sale)
}

func TestActiveSaleIgnoresInactive(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)
	seedSale(t, db, "Disabled Sale", now.Add(-time.Hour), now.Add(time.Hour), false)

	sale, err := ActiveSale(db, now)
	require.NoError(t, err)
	assert.Nil(t, sale, "inactive sale must not surface even inside its window")
}

func TestActiveSaleNoneOutsideWindow(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)
	seedSale(t, db, "Past Sale", now.Add(-48*time.Hour), now.Add(-24*time.Hour), true)
	seedSale(t, db, "Future Sale", now.Add(24*time.Hour), now.Add(48*time.Hour), true)

	sale, err := ActiveSale(db, now)
	require.NoError(t, err)
	assert.Nil(t, sale)
}

func TestActiveSaleOverlapPicksFirstByID(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)
	first := seedSale(t, db, "First Sale", now.Add(-time.Hour), now.Add(time.Hour), true)
	seedSale(t, db, "Second Sale", now.Add(-2*time.Hour), now.Add(2*time.Hour), true)

	sale, err := ActiveSale(db, now)
	require.NoError(t, err)
	require.NotNil(t, sale)
	assert.Equal(t, first.ID, sale.ID)
}

func TestIsOngoing(t *testing.T) {
	now := time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)
	sale := models.FestivalSale{
		StartDate: now.Add(-time.Hour),
		EndDate:   now.Add(time.Hour),
		IsActive:  true,
	}
	assert.True(t, sale.IsOngoing(now))

	sale.IsActive = false
	assert.False(t, sale.IsOngoing(now))

	sale.IsActive = true
	assert.False(t, sale.IsOngoing(now.Add(2*time.Hour)))
}
