package sim_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skawata/dutbench/pkg/sim"
	"github.com/skawata/dutbench/pkg/trafficgen"
)

func newDriver(t *testing.T) trafficgen.Generator {
	t.Helper()
	gen, err := sim.New(trafficgen.DriverConfig{Defaults: trafficgen.Defaults()})
	require.NoError(t, err)
	return gen
}

func TestBurstIsLossFree(t *testing.T) {
	gen := newDriver(t)

	result, err := gen.SendBurstTraffic(context.Background(), nil, trafficgen.BurstOptions{
		NumPkts: 100, Duration: 20,
	})
	require.NoError(t, err)

	assert.Equal(t, trafficgen.Result{
		trafficgen.TxFrames:   100,
		trafficgen.RxFrames:   100,
		trafficgen.TxBytes:    6400,
		trafficgen.RxBytes:    6400,
		trafficgen.PayloadErr: 0,
		trafficgen.SeqErr:     0,
	}, result)
}

func TestContMatchesOfferedRate(t *testing.T) {
	gen := newDriver(t)

	result, err := gen.SendContTraffic(context.Background(), nil, trafficgen.ContOptions{
		Duration: 20, FrameRate: 100,
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, result[trafficgen.TxFPS])
	assert.Equal(t, 100.0, result[trafficgen.RxFPS])
	assert.Equal(t, 6400.0, result[trafficgen.TxMbps])
	assert.Equal(t, 6400.0, result[trafficgen.RxMbps])
	assert.Equal(t, 0.0, result[trafficgen.TxPercent])
}

func TestDeterministic(t *testing.T) {
	gen := newDriver(t)
	opts := trafficgen.ContOptions{Duration: 10, FrameRate: 50}

	first, err := gen.SendContTraffic(context.Background(), nil, opts)
	require.NoError(t, err)
	second, err := gen.SendContTraffic(context.Background(), nil, opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestContextCancellation(t *testing.T) {
	gen := newDriver(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gen.SendBurstTraffic(ctx, nil, trafficgen.BurstOptions{NumPkts: 1, Duration: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRegisteredInRegistry(t *testing.T) {
	assert.Contains(t, trafficgen.Drivers(), sim.DriverName)
}
