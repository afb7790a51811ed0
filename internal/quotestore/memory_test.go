package quotestore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_PopReturnsQuoteOnce(t *testing.T) {
	s := NewMemory(15 * time.Minute)
	ctx := context.Background()

	q := PendingQuote{UserID: 1, VehicleID: 7, Total: 854, OrderID: "order_abc"}
	require.NoError(t, s.Put(ctx, 1, q))

	got, err := s.Pop(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, q, *got)

	// second pop must come back empty
	got, err = s.Pop(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemory_PutReplacesPrevious(t *testing.T) {
	s := NewMemory(15 * time.Minute)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, 1, PendingQuote{OrderID: "order_old"}))
	require.NoError(t, s.Put(ctx, 1, PendingQuote{OrderID: "order_new"}))

	got, err := s.Pop(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "order_new", got.OrderID)
}

func TestMemory_ExpiredQuoteIsGone(t *testing.T) {
	s := NewMemory(15 * time.Minute)
	ctx := context.Background()

	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Put(ctx, 1, PendingQuote{OrderID: "order_abc"}))

	now = now.Add(16 * time.Minute)
	got, err := s.Pop(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemory_QuotesAreIsolatedPerUser(t *testing.T) {
	s := NewMemory(15 * time.Minute)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, 1, PendingQuote{OrderID: "order_a"}))
	require.NoError(t, s.Put(ctx, 2, PendingQuote{OrderID: "order_b"}))

	got, err := s.Pop(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "order_b", got.OrderID)

	got, err = s.Pop(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "order_a", got.OrderID)
}

func TestMemory_Clear(t *testing.T) {
	s := NewMemory(15 * time.Minute)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, 1, PendingQuote{OrderID: "order_abc"}))
	require.NoError(t, s.Clear(ctx, 1))

	got, err := s.Pop(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)
}
