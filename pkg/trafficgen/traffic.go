package trafficgen

import (
	"fmt"

	"github.com/peterbourgon/mergemap"
)

// Traffic describes the frames a generator should send, as a nested
// tree keyed by layer ("l2", "l3", ...). Field values are not validated
// here; drivers read what they need and pass the rest through.
type Traffic map[string]any

// Defaults returns the baseline traffic configuration used when the
// caller supplies no override.
func Defaults() Traffic {
	return Traffic{
		"l2": map[string]any{
			"framesize": 64,
			"srcmac":    "00:00:00:00:00:01",
			"dstmac":    "00:00:00:00:00:02",
		},
		"l3": map[string]any{
			"proto": "udp",
			"srcip": "1.1.1.1",
			"dstip": "90.90.90.90",
		},
		"l4": map[string]any{
			"srcport": 3000,
			"dstport": 3001,
		},
		"vlan": map[string]any{
			"enabled": false,
		},
	}
}

// Merge combines an override tree with a base tree. Override keys win
// recursively; base subtrees absent from the override are preserved.
// Neither argument is mutated.
func Merge(base, override Traffic) Traffic {
	merged := deepCopy(map[string]any(base))
	if override == nil {
		return merged
	}
	return Traffic(mergemap.Merge(merged, deepCopy(map[string]any(override))))
}

func deepCopy(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if sub, ok := v.(map[string]any); ok {
			out[k] = deepCopy(sub)
			continue
		}
		out[k] = v
	}
	return out
}

// FrameSize extracts l2.framesize from a traffic tree. YAML and JSON
// decoders disagree on number types, so several are accepted.
func FrameSize(t Traffic) (int, error) {
	l2, ok := t["l2"].(map[string]any)
	if !ok {
		return 0, fmt.Errorf("traffic config has no l2 section")
	}
	switch v := l2["framesize"].(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("traffic config has no l2.framesize")
	}
}
