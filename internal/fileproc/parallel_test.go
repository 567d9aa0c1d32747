package fileproc

import (
	"context"
	"errors"
	"sort"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	files := []string{"a", "b", "c", "d"}
	results, errs := Map(files, func(path string) (string, error) {
		return path + "!", nil
	})

	assert.Nil(t, errs)
	require.Len(t, results, 4)
	sort.Strings(results)
	assert.Equal(t, []string{"a!", "b!", "c!", "d!"}, results)
}

func TestMapEmpty(t *testing.T) {
	results, errs := Map(nil, func(path string) (int, error) { return 0, nil })
	assert.Nil(t, results)
	assert.Nil(t, errs)
}

func TestMapCollectsErrors(t *testing.T) {
	files := []string{"ok", "bad", "ok2"}
	results, errs := Map(files, func(path string) (string, error) {
		if path == "bad" {
			return "", errors.New("boom")
		}
		return path, nil
	})

	require.NotNil(t, errs)
	assert.True(t, errs.HasErrors())
	require.Len(t, errs.Errors, 1)
	assert.Equal(t, "bad", errs.Errors[0].Path)
	assert.Len(t, results, 2)
}

func TestMapWithProgress(t *testing.T) {
	var ticks atomic.Int64
	files := []string{"a", "b", "c"}
	_, errs := MapWithProgress(files, func(path string) (int, error) {
		return len(path), nil
	}, func() { ticks.Add(1) })

	assert.Nil(t, errs)
	assert.Equal(t, int64(3), ticks.Load())
}

func TestMapNWorkerCap(t *testing.T) {
	var inFlight, peak atomic.Int64
	files := make([]string, 20)
	for i := range files {
		files[i] = "f"
	}

	results, errs := MapN(files, 2, func(path string) (int, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		defer inFlight.Add(-1)
		return 1, nil
	}, nil)

	assert.Nil(t, errs)
	assert.Len(t, results, 20)
	assert.LessOrEqual(t, peak.Load(), int64(2))
}

func TestMapWithContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	files := []string{"a", "b", "c"}
	results, errs := MapWithContext(ctx, files, func(path string) (string, error) {
		return path, nil
	}, nil)

	// everything after cancellation is recorded as a context error
	assert.Empty(t, results)
	require.NotNil(t, errs)
	assert.True(t, errs.HasErrors())
}

func TestProcessingErrorsMessage(t *testing.T) {
	errs := &ProcessingErrors{}
	assert.Equal(t, "no errors", errs.Error())

	errs.Add("x.js", errors.New("unreadable"))
	assert.Equal(t, "x.js: unreadable", errs.Error())

	errs.Add("y.js", errors.New("unreadable"))
	assert.Contains(t, errs.Error(), "2 files failed")
}
