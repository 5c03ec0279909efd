// Package manual implements a traffic-generator driver backed by a
// human operator. It does not generate any traffic itself: it prints
// the requested test parameters, waits for the operator to run an
// external generator of their choice, then reads the observed counters
// back from the console and derives throughput from them. Useful when
// no automated driver exists for the generator at hand.
package manual

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/skawata/dutbench/pkg/trafficgen"
)

// DriverName is the registry name of this driver.
const DriverName = "manual"

func init() {
	trafficgen.Register(DriverName, New)
}

// Manual is the operator-backed driver. The operator is responsible for
// setting the flows up correctly; answers are taken at face value.
type Manual struct {
	defaults trafficgen.Traffic
	console  *console
	logger   *zap.Logger
}

// New builds a Manual driver from a driver configuration.
func New(cfg trafficgen.DriverConfig) (trafficgen.Generator, error) {
	if cfg.Input == nil {
		cfg.Input = os.Stdin
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Manual{
		defaults: cfg.Defaults,
		console:  newConsole(cfg.Input, cfg.Output),
		logger:   cfg.Logger,
	}, nil
}

// Connect implements trafficgen.Generator. There is nothing to set up.
func (m *Manual) Connect() error {
	return nil
}

// Disconnect implements trafficgen.Generator. There is nothing to tear down.
func (m *Manual) Disconnect() error {
	return nil
}

// SendBurstTraffic asks the operator to send a fixed-count burst and
// reports the counters they observed. Byte counts are derived from the
// configured frame size.
func (m *Manual) SendBurstTraffic(ctx context.Context, traffic trafficgen.Traffic, opts trafficgen.BurstOptions) (trafficgen.Result, error) {
	merged := trafficgen.Merge(m.defaults, traffic)
	framesize, err := trafficgen.FrameSize(merged)
	if err != nil {
		return nil, err
	}

	m.logger.Info("requesting burst traffic from operator",
		zap.Int("numpkts", opts.NumPkts),
		zap.Int("duration", opts.Duration),
	)

	answers, err := m.console.collect(ctx, "burst",
		fmt.Sprintf("%dpkts, %ds", opts.NumPkts, opts.Duration),
		merged,
		[]string{"frames rx", "payload errors", "sequence errors"})
	if err != nil {
		return nil, err
	}

	// Answer order matches the stat list above.
	rxFrames, payloadErr, seqErr := answers[0], answers[1], answers[2]

	return trafficgen.Result{
		trafficgen.TxFrames:   float64(opts.NumPkts),
		trafficgen.RxFrames:   float64(rxFrames),
		trafficgen.TxBytes:    float64(framesize) * float64(opts.NumPkts),
		trafficgen.RxBytes:    float64(framesize) * float64(rxFrames),
		trafficgen.PayloadErr: float64(payloadErr),
		trafficgen.SeqErr:     float64(seqErr),
	}, nil
}

// SendContTraffic asks the operator to send a sustained flow and
// derives throughput from the frame counts they report.
func (m *Manual) SendContTraffic(ctx context.Context, traffic trafficgen.Traffic, opts trafficgen.ContOptions) (trafficgen.Result, error) {
	m.logger.Info("requesting continuous traffic from operator",
		zap.Int("duration", opts.Duration),
		zap.Int("framerate", opts.FrameRate),
	)

	params := fmt.Sprintf("%ds, %dfps, multistream %v", opts.Duration, opts.FrameRate, opts.Multistream)
	return m.throughputFromOperator(ctx, "continuous", params, traffic, opts.Duration)
}

// SendRFC2544Throughput asks the operator to run an RFC 2544 style
// throughput search and derives throughput from the reported counts.
// The trial and loss-rate parameters only shape the announcement; the
// operator's generator applies them.
func (m *Manual) SendRFC2544Throughput(ctx context.Context, traffic trafficgen.Traffic, opts trafficgen.ThroughputOptions) (trafficgen.Result, error) {
	m.logger.Info("requesting rfc2544 throughput test from operator",
		zap.Int("trials", opts.Trials),
		zap.Int("duration", opts.Duration),
		zap.Float64("lossrate", opts.LossRate),
	)

	multistream := "disabled"
	if opts.Multistream {
		multistream = "enabled"
	}
	params := fmt.Sprintf("%d trials, %d second iterations, %f packet loss, multistream %s",
		opts.Trials, opts.Duration, opts.LossRate, multistream)
	return m.throughputFromOperator(ctx, "throughput", params, traffic, opts.Duration)
}

// throughputFromOperator is the shared back half of the continuous and
// RFC 2544 tests: same stat list, same derivation, different announce.
func (m *Manual) throughputFromOperator(ctx context.Context, kind, params string, traffic trafficgen.Traffic, duration int) (trafficgen.Result, error) {
	merged := trafficgen.Merge(m.defaults, traffic)
	framesize, err := trafficgen.FrameSize(merged)
	if err != nil {
		return nil, err
	}

	answers, err := m.console.collect(ctx, kind, params, merged,
		[]string{"frames tx", "frames rx", "min latency", "max latency", "avg latency"})
	if err != nil {
		return nil, err
	}

	// Answer order matches the stat list above.
	txFrames, rxFrames := float64(answers[0]), float64(answers[1])
	minLat, maxLat, avgLat := float64(answers[2]), float64(answers[3]), float64(answers[4])
	seconds := float64(duration)

	return trafficgen.Result{
		trafficgen.TxFPS:  txFrames / seconds,
		trafficgen.RxFPS:  rxFrames / seconds,
		trafficgen.TxMbps: txFrames * float64(framesize) / seconds,
		trafficgen.RxMbps: rxFrames * float64(framesize) / seconds,
		// Line rate is unknown to this driver, so percentages stay zero.
		trafficgen.TxPercent:    0.0,
		trafficgen.RxPercent:    0.0,
		trafficgen.MinLatencyNS: minLat,
		trafficgen.MaxLatencyNS: maxLat,
		trafficgen.AvgLatencyNS: avgLat,
	}, nil
}
