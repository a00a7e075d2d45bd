package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyQueue_RunsInOrder(t *testing.T) {
	q := newNotifyQueue(4)

	var got []int
	for i := range 10 {
		require.True(t, q.push(func() { got = append(got, i) }))
	}
	require.NoError(t, q.close(context.Background()))

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestNotifyQueue_PushAfterClose(t *testing.T) {
	q := newNotifyQueue(1)
	require.NoError(t, q.close(context.Background()))

	assert.False(t, q.push(func() { t.Error("job ran after close") }))
	assert.NoError(t, q.close(context.Background()))
}

func TestNotifyQueue_CloseHonorsContext(t *testing.T) {
	q := newNotifyQueue(1)

	release := make(chan struct{})
	require.True(t, q.push(func() { <-release }))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, q.close(ctx), context.DeadlineExceeded)

	close(release)
	assert.NoError(t, q.close(context.Background()))
}
