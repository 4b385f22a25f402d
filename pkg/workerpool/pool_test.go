package workerpool

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRunsTasks(t *testing.T) {
	p := New(2)
	defer p.Shutdown()

	var n int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		require.NoError(t, p.Submit(func() {
			atomic.AddInt32(&n, 1)
			wg.Done()
		}))
	}
	wg.Wait()
	assert.EqualValues(t, 10, atomic.LoadInt32(&n))
}

func TestSubmitWait(t *testing.T) {
	p := New(1)
	defer p.Shutdown()

	done := make(chan struct{})
	require.NoError(t, p.SubmitWait(func() { close(done) }))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task did not run")
	}
}

func TestSubmitAfterShutdown(t *testing.T) {
	p := New(1)
	p.Shutdown()
	assert.ErrorIs(t, p.Submit(func() {}), ErrPoolClosed)
}

func TestFullPoolRejectsInsteadOfBlocking(t *testing.T) {
	p := New(1)
	defer p.Shutdown()

	release := make(chan struct{})
	require.NoError(t, p.Submit(func() { <-release }))

	// Fill the queue, then expect rejection rather than a blocked caller.
	var sawFull bool
	for i := 0; i < 1000; i++ {
		if err := p.Submit(func() { <-release }); err == ErrPoolFull {
			sawFull = true
			break
		}
	}
	close(release)
	assert.True(t, sawFull)
}

func TestPanicInTaskDoesNotKillWorker(t *testing.T) {
	p := New(1)
	defer p.Shutdown()

	require.NoError(t, p.Submit(func() { panic("boom") }))

	done := make(chan struct{})
	require.Eventually(t, func() bool {
		err := p.Submit(func() { close(done) })
		return err == nil
	}, time.Second, 10*time.Millisecond)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not survive the panic")
	}
}
