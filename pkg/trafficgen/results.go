package trafficgen

// Key identifies one field of a test result record. The key set is
// shared by every driver so that results from different backends can be
// compared and reported uniformly.
type Key string

const (
	TxFrames   Key = "tx_frames"
	RxFrames   Key = "rx_frames"
	TxBytes    Key = "tx_bytes"
	RxBytes    Key = "rx_bytes"
	PayloadErr Key = "payload_err"
	SeqErr     Key = "seq_err"

	TxFPS     Key = "throughput_tx_fps"
	RxFPS     Key = "throughput_rx_fps"
	TxMbps    Key = "throughput_tx_mbps"
	RxMbps    Key = "throughput_rx_mbps"
	TxPercent Key = "throughput_tx_percent"
	RxPercent Key = "throughput_rx_percent"

	MinLatencyNS Key = "min_latency_ns"
	MaxLatencyNS Key = "max_latency_ns"
	AvgLatencyNS Key = "avg_latency_ns"
)

// Result is one test's counters and derived metrics. Records are built
// fresh per invocation and never shared between calls.
type Result map[Key]float64
