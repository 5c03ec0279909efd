// Package sim implements a simulated traffic-generator driver. It
// produces deterministic loss-free counters from the requested rate and
// duration, without touching the network. Intended for exercising the
// benchmarking pipeline when no device under test is attached.
package sim

import (
	"context"

	"go.uber.org/zap"

	"github.com/skawata/dutbench/pkg/trafficgen"
)

// DriverName is the registry name of this driver.
const DriverName = "sim"

func init() {
	trafficgen.Register(DriverName, New)
}

// Synthetic latency figures reported by every simulated run.
const (
	minLatencyNS = 1000.0
	maxLatencyNS = 5000.0
	avgLatencyNS = 2500.0
)

// searchRatePPS is the rate the simulated RFC 2544 search converges on.
const searchRatePPS = 10000

// Sim is the simulated driver.
type Sim struct {
	defaults trafficgen.Traffic
	logger   *zap.Logger
}

// New builds a Sim driver from a driver configuration.
func New(cfg trafficgen.DriverConfig) (trafficgen.Generator, error) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Sim{defaults: cfg.Defaults, logger: cfg.Logger}, nil
}

// Connect implements trafficgen.Generator.
func (s *Sim) Connect() error {
	return nil
}

// Disconnect implements trafficgen.Generator.
func (s *Sim) Disconnect() error {
	return nil
}

// SendBurstTraffic simulates a loss-free burst: every frame arrives,
// no payload or sequence errors.
func (s *Sim) SendBurstTraffic(ctx context.Context, traffic trafficgen.Traffic, opts trafficgen.BurstOptions) (trafficgen.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	merged := trafficgen.Merge(s.defaults, traffic)
	framesize, err := trafficgen.FrameSize(merged)
	if err != nil {
		return nil, err
	}

	s.logger.Info("simulating burst traffic", zap.Int("numpkts", opts.NumPkts))

	frames := float64(opts.NumPkts)
	return trafficgen.Result{
		trafficgen.TxFrames:   frames,
		trafficgen.RxFrames:   frames,
		trafficgen.TxBytes:    frames * float64(framesize),
		trafficgen.RxBytes:    frames * float64(framesize),
		trafficgen.PayloadErr: 0,
		trafficgen.SeqErr:     0,
	}, nil
}

// SendContTraffic simulates a sustained flow at exactly the requested
// frame rate with no loss.
func (s *Sim) SendContTraffic(ctx context.Context, traffic trafficgen.Traffic, opts trafficgen.ContOptions) (trafficgen.Result, error) {
	s.logger.Info("simulating continuous traffic",
		zap.Int("duration", opts.Duration),
		zap.Int("framerate", opts.FrameRate),
	)
	return s.throughput(ctx, traffic, opts.FrameRate, opts.Duration)
}

// SendRFC2544Throughput simulates a throughput search that converges on
// the requested frame rate with no loss.
func (s *Sim) SendRFC2544Throughput(ctx context.Context, traffic trafficgen.Traffic, opts trafficgen.ThroughputOptions) (trafficgen.Result, error) {
	s.logger.Info("simulating rfc2544 throughput test",
		zap.Int("trials", opts.Trials),
		zap.Int("duration", opts.Duration),
	)
	// All trials behave identically; one derivation covers them.
	return s.throughput(ctx, traffic, searchRatePPS, opts.Duration)
}

func (s *Sim) throughput(ctx context.Context, traffic trafficgen.Traffic, framerate, duration int) (trafficgen.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	merged := trafficgen.Merge(s.defaults, traffic)
	framesize, err := trafficgen.FrameSize(merged)
	if err != nil {
		return nil, err
	}

	frames := float64(framerate) * float64(duration)
	seconds := float64(duration)

	return trafficgen.Result{
		trafficgen.TxFPS:        frames / seconds,
		trafficgen.RxFPS:        frames / seconds,
		trafficgen.TxMbps:       frames * float64(framesize) / seconds,
		trafficgen.RxMbps:       frames * float64(framesize) / seconds,
		trafficgen.TxPercent:    0.0,
		trafficgen.RxPercent:    0.0,
		trafficgen.MinLatencyNS: minLatencyNS,
		trafficgen.MaxLatencyNS: maxLatencyNS,
		trafficgen.AvgLatencyNS: avgLatencyNS,
	}, nil
}
