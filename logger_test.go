package geodesic

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopHandler(t *testing.T) {
	var h slog.Handler = nopHandler{}
	ctx := context.Background()
	for _, lvl := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.False(t, h.Enabled(ctx, lvl))
	}
	assert.NoError(t, h.Handle(ctx, slog.Record{}))
	assert.IsType(t, nopHandler{}, h.WithAttrs([]slog.Attr{slog.String("k", "v")}))
	assert.IsType(t, nopHandler{}, h.WithGroup("g"))
}

func TestLoggerDefaultIsSilent(t *testing.T) {
	l := Logger()
	require.NotNil(t, l)
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestSetLoggerCapturesNewtonIterations(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	WGS84.Inverse(40.6, -73.8, 49.01666667, 2.55)
	out := buf.String()
	assert.Contains(t, out, "geodesic: newton iteration")
	assert.Contains(t, out, "numit=0")
	assert.NotContains(t, out, "iteration cap reached")
	assert.NotContains(t, out, "not monotonic")
}

func TestInverseIterationCapReturnsBestEstimate(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))
	t.Cleanup(func() { SetLogger(nil) })

	g := MustNew(6.4e6, 0.99)
	lat1, lon1, lat2, lon2 := -45.10789731089449, 0.0, 65.1633374539941, -65.30872296266377
	r := g.Inverse(lat1, lon1, lat2, lon2)
	for _, v := range []float64{r.S12, r.Azi1, r.Azi2} {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	}
	assert.Contains(t, buf.String(), "iteration cap reached")
	assert.Contains(t, buf.String(), "maxit=83")

	d := g.Direct(lat1, lon1, r.Azi1, r.S12)
	assert.InDelta(t, lat2, d.Lat2, 1e-6)
}

func TestSetLoggerInfoLevelSkipsIterations(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))
	t.Cleanup(func() { SetLogger(nil) })

	WGS84.Inverse(40.6, -73.8, 49.01666667, 2.55)
	assert.Empty(t, buf.String())
}

func TestSetLoggerNilRestoresDefault(t *testing.T) {
	SetLogger(slog.Default())
	SetLogger(nil)
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}
