package scheduling

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySlotLockerMutualExclusion(t *testing.T) {
	locker := NewMemorySlotLocker()
	ctx := context.Background()

	const workers = 50
	counter := 0
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := locker.Acquire(ctx, "doc-1|2025-06-02|10:00")
			assert.NoError(t, err)
			defer release()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestMemorySlotLockerIndependentKeys(t *testing.T) {
	locker := NewMemorySlotLocker()
	ctx := context.Background()

	releaseA, err := locker.Acquire(ctx, "doc-1|2025-06-02|10:00")
	require.NoError(t, err)

	// A different slot key must not block.
	done := make(chan struct{})
	go func() {
		releaseB, err := locker.Acquire(ctx, "doc-1|2025-06-02|11:00")
		assert.NoError(t, err)
		releaseB()
		close(done)
	}()
	<-done

	releaseA()
}
