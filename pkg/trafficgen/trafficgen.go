// Package trafficgen defines the pluggable traffic-generator driver
// abstraction: the Generator interface, the Traffic configuration tree,
// the result key schema and the driver registry.
package trafficgen

import (
	"context"
	"io"

	"go.uber.org/zap"
)

// Generator is the contract every traffic-generator driver implements.
// A driver may automate real hardware, simulate counters, or hand the
// work to a human operator; callers cannot tell the difference.
type Generator interface {
	// Connect prepares the generator for use.
	Connect() error

	// Disconnect releases the generator.
	Disconnect() error

	// SendBurstTraffic sends a fixed number of frames and reports
	// frame, byte and error counters.
	SendBurstTraffic(ctx context.Context, traffic Traffic, opts BurstOptions) (Result, error)

	// SendContTraffic sends a sustained flow for the configured duration
	// and reports throughput and latency.
	SendContTraffic(ctx context.Context, traffic Traffic, opts ContOptions) (Result, error)

	// SendRFC2544Throughput runs an RFC 2544 style throughput test and
	// reports throughput and latency.
	SendRFC2544Throughput(ctx context.Context, traffic Traffic, opts ThroughputOptions) (Result, error)
}

// BurstOptions are the parameters of a burst test.
type BurstOptions struct {
	NumPkts   int `default:"100"`
	Duration  int `default:"20"` // seconds
	FrameRate int `default:"100"`
}

// ContOptions are the parameters of a continuous traffic test.
type ContOptions struct {
	Duration    int `default:"20"` // seconds
	FrameRate   int `default:"0"`
	Multistream bool
}

// ThroughputOptions are the parameters of an RFC 2544 throughput test.
type ThroughputOptions struct {
	Trials      int     `default:"3"`
	Duration    int     `default:"20"` // seconds per trial
	LossRate    float64 `default:"0.0"`
	Multistream bool
}

// DriverConfig is handed to a driver factory when a driver is opened.
type DriverConfig struct {
	// Defaults is the baseline traffic configuration. Drivers copy it
	// before merging caller overrides; it is never mutated.
	Defaults Traffic

	Logger *zap.Logger

	// Input and Output are the operator console for interactive
	// drivers. Fall back to the process stdio when nil.
	Input  io.Reader
	Output io.Writer
}
