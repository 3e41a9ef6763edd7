package order

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&Order{}, &Item{}))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func sampleOrder(number string) *Order {
	return &Order{
		OrderNumber:     number,
		CustomerName:    "Budi",
		CustomerPhone:   "081234567890",
		CustomerAddress: "Jl. A",
		TotalPrice:      95000,
		Status:          StatusPending,
		Items: []Item{
			{ProductID: "p1", ProductName: "Tomat Segar", Variation: "1 kg", Price: 15000, Quantity: 2, Subtotal: 30000},
			{ProductID: "p2", ProductName: "Beras Premium", Variation: "5 kg", Price: 65000, Quantity: 1, Subtotal: 65000},
		},
	}
}

func TestSaveAssignsIDAndTimestamp(t *testing.T) {
	svc := NewService(testDB(t), testLogger())
	ctx := context.Background()

	o := sampleOrder("ORD-1000")
	id, err := svc.Save(ctx, o)
	require.NoError(t, err)
	assert.NotZero(t, id)

	stored, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "ORD-1000", stored.OrderNumber)
	assert.Equal(t, StatusPending, stored.Status)
	assert.Equal(t, int64(95000), stored.TotalPrice)
	assert.Len(t, stored.Items, 2)
	assert.False(t, stored.CreatedAt.IsZero(), "sink assigns the timestamp")
}

func TestSaveWithoutStoreReportsUnavailable(t *testing.T) {
	svc := NewService(nil, testLogger())

	id, err := svc.Save(context.Background(), sampleOrder("ORD-1001"))
	assert.Zero(t, id)
	assert.ErrorIs(t, err, ErrSinkUnavailable)

	_, err = svc.List(context.Background(), 1, 20)
	assert.ErrorIs(t, err, ErrSinkUnavailable)

	_, err = svc.Get(context.Background(), 1)
	assert.ErrorIs(t, err, ErrSinkUnavailable)
}

func TestGetUnknownOrder(t *testing.T) {
	svc := NewService(testDB(t), testLogger())

	_, err := svc.Get(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListPaginates(t *testing.T) {
	svc := NewService(testDB(t), testLogger())
	ctx := context.Background()

	for _, n := range []string{"ORD-1", "ORD-2", "ORD-3"} {
		_, err := svc.Save(ctx, sampleOrder(n))
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Len(t, page.Orders, 2)

	page, err = svc.List(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, page.Orders, 1)
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusCompleted, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestUpdateStatus(t *testing.T) {
	svc := NewService(testDB(t), testLogger())
	ctx := context.Background()

	id, err := svc.Save(ctx, sampleOrder("ORD-2000"))
	require.NoError(t, err)

	o, err := svc.UpdateStatus(ctx, id, StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, o.Status)

	// Terminal state: further transitions rejected
	_, err = svc.UpdateStatus(ctx, id, StatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Unknown status string rejected before any lookup
	_, err = svc.UpdateStatus(ctx, id, Status("shipped"))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}
