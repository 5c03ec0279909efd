package dutbench

import (
	"fmt"

	"github.com/skawata/dutbench/pkg/logger"
	"github.com/skawata/dutbench/pkg/trafficgen"
)

// Test kinds selectable on the command line.
const (
	TestBurst      = "burst"
	TestCont       = "cont"
	TestThroughput = "throughput"
)

// Config collects everything the tool needs for one run.
type Config struct {
	LoggerConfig logger.Config

	// From CLI flags
	Driver      string `default:"manual"`
	Test        string `default:"throughput"`
	TrafficFile string

	NumPkts     int     `default:"100"`
	Duration    int     `default:"20"`
	FrameRate   int     `default:"100"`
	Trials      int     `default:"3"`
	LossRate    float64 `default:"0.0"`
	Multistream bool
}

func (c *Config) Validate() error {
	if c.Driver == "" {
		return fmt.Errorf("driver is required")
	}
	switch c.Test {
	case TestBurst, TestCont, TestThroughput:
	default:
		return fmt.Errorf("unknown test %q (want %s, %s or %s)", c.Test, TestBurst, TestCont, TestThroughput)
	}
	if c.NumPkts <= 0 {
		return fmt.Errorf("numpkts must be positive")
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	if c.Trials <= 0 {
		return fmt.Errorf("trials must be positive")
	}
	if c.LossRate < 0 {
		return fmt.Errorf("lossrate must not be negative")
	}
	return nil
}

func (c *Config) burstOptions() trafficgen.BurstOptions {
	return trafficgen.BurstOptions{
		NumPkts:   c.NumPkts,
		Duration:  c.Duration,
		FrameRate: c.FrameRate,
	}
}

func (c *Config) contOptions() trafficgen.ContOptions {
	return trafficgen.ContOptions{
		Duration:    c.Duration,
		FrameRate:   c.FrameRate,
		Multistream: c.Multistream,
	}
}

func (c *Config) throughputOptions() trafficgen.ThroughputOptions {
	return trafficgen.ThroughputOptions{
		Trials:      c.Trials,
		Duration:    c.Duration,
		LossRate:    c.LossRate,
		Multistream: c.Multistream,
	}
}
