package core

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGather_PreservesOrder(t *testing.T) {
	inputs := []string{"A", "B", "C", "D", "E"}

	outcomes := Gather(context.Background(), len(inputs), 0,
		func(ctx context.Context, i int) (string, error) {
			// Later slots finish first to exercise the ordering guarantee
			time.Sleep(time.Duration(len(inputs)-i) * 5 * time.Millisecond)
			return inputs[i], nil
		})

	assert.Len(t, outcomes, len(inputs))
	for i, outcome := range outcomes {
		assert.NoError(t, outcome.Err)
		assert.Equal(t, inputs[i], outcome.Value)
	}
}

func TestGather_PartialFailureKeepsSlots(t *testing.T) {
	outcomes := Gather(context.Background(), 3, 0,
		func(ctx context.Context, i int) (string, error) {
			if i == 1 {
				return "", fmt.Errorf("provider unavailable")
			}
			return fmt.Sprintf("value-%d", i), nil
		})

	assert.Len(t, outcomes, 3)
	assert.Equal(t, "value-0", outcomes[0].Value)
	assert.EqualError(t, outcomes[1].Err, "provider unavailable")
	assert.Equal(t, "value-2", outcomes[2].Value)
}

func TestGather_BranchTimeout(t *testing.T) {
	outcomes := Gather(context.Background(), 2, 20*time.Millisecond,
		func(ctx context.Context, i int) (int, error) {
			if i == 0 {
				return i, nil
			}
			select {
			case <-time.After(time.Second):
				return i, nil
			case <-ctx.Done():
				return 0, ctx.Err()
			}
		})

	// The slow branch times out without dragging down its sibling
	assert.NoError(t, outcomes[0].Err)
	assert.ErrorIs(t, outcomes[1].Err, context.DeadlineExceeded)
}

func TestGather_Empty(t *testing.T) {
	outcomes := Gather(context.Background(), 0, 0,
		func(ctx context.Context, i int) (int, error) { return i, nil })
	assert.Empty(t, outcomes)
}
