package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/reach/internal/adapters/watcher"
)

func TestDebouncer_Add_SinglePath(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			callCount++
			receivedPaths = paths
		})

		d.Add("/project/schema/query.graphql")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)
		assert.Equal(t, []string{"/project/schema/query.graphql"}, receivedPaths)
	})
}

func TestDebouncer_Add_Coalesced(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			callCount++
			receivedPaths = paths
		})

		d.Add("/project/b.graphql")
		time.Sleep(50 * time.Millisecond)
		d.Add("/project/a.graphql")
		time.Sleep(50 * time.Millisecond)
		d.Add("/project/b.graphql")

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		require.Equal(t, 1, callCount)
		assert.Equal(t, []string{"/project/a.graphql", "/project/b.graphql"}, receivedPaths)
	})
}

func TestDebouncer_SeparateWindows(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var batches [][]string

		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			mu.Lock()
			defer mu.Unlock()
			batches = append(batches, paths)
		})

		d.Add("/project/a.graphql")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		d.Add("/project/b.graphql")
		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, [][]string{{"/project/a.graphql"}, {"/project/b.graphql"}}, batches)
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int
		var receivedPaths []string

		d := watcher.NewDebouncer(time.Hour, func(paths []string) {
			callCount++
			receivedPaths = paths
		})

		d.Add("/project/a.graphql")
		d.Flush()

		require.Equal(t, 1, callCount)
		assert.Equal(t, []string{"/project/a.graphql"}, receivedPaths)

		// Nothing pending: no second callback.
		d.Flush()
		assert.Equal(t, 1, callCount)
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		d := watcher.NewDebouncer(10*time.Millisecond, nil)
		d.Add("/project/a.graphql")

		time.Sleep(20 * time.Millisecond)
		synctest.Wait()
	})
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int

		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			callCount++
		})

		d.Add("/project/a.graphql")
		d.Stop()

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, 0, callCount)
	})
}

func TestDebouncer_StopWaitsForRunningCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			close(started)
			<-release
		})

		d.Add("/project/a.graphql")
		<-started

		stopped := make(chan struct{})
		go func() {
			d.Stop()
			close(stopped)
		}()
		synctest.Wait()

		select {
		case <-stopped:
			t.Fatal("Stop returned while the callback was running")
		default:
		}

		close(release)
		synctest.Wait()

		select {
		case <-stopped:
		default:
			t.Fatal("Stop did not return after the callback finished")
		}
	})
}

func TestDebouncer_AddAfterStop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var callCount int

		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			callCount++
		})

		d.Stop()
		d.Add("/project/a.graphql")
		d.Flush()

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, 0, callCount)
	})
}
