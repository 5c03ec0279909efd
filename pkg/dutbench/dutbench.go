// Package dutbench wires the benchmarking tool together: it builds the
// logger, resolves the traffic configuration, opens the selected driver
// from the registry and dispatches the requested test.
package dutbench

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/skawata/dutbench/pkg/logger"
	"github.com/skawata/dutbench/pkg/trafficgen"
)

type CancelFunc func(ctx context.Context) error

// Dutbench is one configured run of the tool.
type Dutbench struct {
	Logger        *zap.Logger
	Generator     trafficgen.Generator
	cleanupFnList []CancelFunc

	traffic trafficgen.Traffic
	cfg     Config
}

// New builds a Dutbench from a validated configuration.
func New(cfg Config) (*Dutbench, error) {
	var cleanupFnList []CancelFunc
	lg, cleanup, err := logger.NewLogger(cfg.LoggerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed init logger: %w", err)
	}
	cleanupFnList = append(cleanupFnList, cleanup)

	traffic, err := loadTrafficFile(cfg.TrafficFile)
	if err != nil {
		return nil, fmt.Errorf("failed load traffic config: %w", err)
	}

	gen, err := trafficgen.Open(cfg.Driver, trafficgen.DriverConfig{
		Defaults: traffic,
		Logger:   lg,
	})
	if err != nil {
		return nil, fmt.Errorf("failed open driver: %w", err)
	}

	return &Dutbench{
		Logger:        lg,
		Generator:     gen,
		cleanupFnList: cleanupFnList,
		traffic:       traffic,
		cfg:           cfg,
	}, nil
}

// Run connects the driver, executes the configured test and prints the
// result record to stdout.
func (d *Dutbench) Run(ctx context.Context) error {
	if err := d.Generator.Connect(); err != nil {
		return fmt.Errorf("failed connect generator: %w", err)
	}
	defer func() {
		if err := d.Generator.Disconnect(); err != nil {
			d.Logger.Error("failed to disconnect generator", zap.Error(err))
		}
	}()

	d.Logger.Info("starting test",
		zap.String("driver", d.cfg.Driver),
		zap.String("test", d.cfg.Test),
	)

	var (
		result trafficgen.Result
		err    error
	)
	switch d.cfg.Test {
	case TestBurst:
		result, err = d.Generator.SendBurstTraffic(ctx, nil, d.cfg.burstOptions())
	case TestCont:
		result, err = d.Generator.SendContTraffic(ctx, nil, d.cfg.contOptions())
	case TestThroughput:
		result, err = d.Generator.SendRFC2544Throughput(ctx, nil, d.cfg.throughputOptions())
	default:
		return fmt.Errorf("unknown test %q", d.cfg.Test)
	}
	if err != nil {
		return fmt.Errorf("test %s failed: %w", d.cfg.Test, err)
	}

	printReport(d.cfg.Test, result)
	return nil
}

// Close runs the accumulated cleanups.
func (d *Dutbench) Close() {
	for _, fn := range d.cleanupFnList {
		if err := fn(context.Background()); err != nil {
			d.Logger.Error("failed to cleanup", zap.Error(err))
		}
	}
}
