package fanout_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urepair/console/internal/service/fanout"
)

func TestEachRunsEveryKeyDespiteFailures(t *testing.T) {
	var mu sync.Mutex
	seen := map[int]bool{}

	err := fanout.Each(context.Background(), []int{1, 2, 3}, func(ctx context.Context, id int) error {
		mu.Lock()
		seen[id] = true
		mu.Unlock()
		if id == 2 {
			return fmt.Errorf("boom %d", id)
		}
		return nil
	})
	require.Error(t, err)
	assert.Len(t, seen, 3)
}

func TestCollectPreservesInputOrder(t *testing.T) {
	results, err := fanout.Collect(context.Background(), []int{3, 1, 2}, func(ctx context.Context, id int) (*int, error) {
		doubled := id * 2
		return &doubled, nil
	})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, 6, *results[0])
	assert.Equal(t, 2, *results[1])
	assert.Equal(t, 4, *results[2])
}

func TestCollectReportsFirstError(t *testing.T) {
	_, err := fanout.Collect(context.Background(), []int{1, 2}, func(ctx context.Context, id int) (*int, error) {
		if id == 2 {
			return nil, fmt.Errorf("no such id %d", id)
		}
		return &id, nil
	})
	require.Error(t, err)
}
