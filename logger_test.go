package glmath_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glmath"
)

func TestLogger_DefaultIsSilent(t *testing.T) {
	l := glmath.Logger()
	require.NotNil(t, l)
	require.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestSetLogger_InstallAndReset(t *testing.T) {
	var buf bytes.Buffer
	glmath.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { glmath.SetLogger(nil) })

	glmath.Logger().Debug("bound", "convention", "rh_no")
	require.Contains(t, buf.String(), "convention=rh_no")

	glmath.SetLogger(nil)
	require.False(t, glmath.Logger().Enabled(context.Background(), slog.LevelError))
}

func TestSetLogger_Concurrent(t *testing.T) {
	t.Cleanup(func() { glmath.SetLogger(nil) })
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			glmath.SetLogger(slog.Default())
		}()
		go func() {
			defer wg.Done()
			assert.NotNil(t, glmath.Logger())
		}()
	}
	wg.Wait()
}
