package cache

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	s := New(mr.Addr(), "cars", time.Minute)
	require.NotNil(t, s)
	return s, mr
}

func TestSetAndGetJSON(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	in := payload{Name: "camry", Count: 3}
	s.SetJSON(ctx, "size=medium", in)

	var out payload
	require.True(t, s.GetJSON(ctx, "size=medium", &out))
	assert.Equal(t, in, out)
}

func TestGetJSONMiss(t *testing.T) {
	s, _ := newTestStore(t)

	var out payload
	assert.False(t, s.GetJSON(context.Background(), "absent", &out))
}

func TestInvalidateDropsNamespace(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.SetJSON(ctx, "k", payload{Name: "camry"})
	s.Invalidate(ctx)

	var out payload
	assert.False(t, s.GetJSON(ctx, "k", &out))

	// the namespace keeps working after invalidation
	s.SetJSON(ctx, "k", payload{Name: "corolla"})
	require.True(t, s.GetJSON(ctx, "k", &out))
	assert.Equal(t, "corolla", out.Name)
}

func TestNilStoreIsDisabled(t *testing.T) {
	var s *Store
	ctx := context.Background()

	assert.False(t, s.GetJSON(ctx, "k", &payload{}))
	s.SetJSON(ctx, "k", payload{})
	s.Invalidate(ctx)
}

func TestNewWithoutAddr(t *testing.T) {
	assert.Nil(t, New("", "cars", time.Minute))
}
