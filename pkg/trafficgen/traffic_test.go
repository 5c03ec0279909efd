package trafficgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeOverrideWins(t *testing.T) {
	base := Traffic{
		"l2": map[string]any{"framesize": 64, "srcmac": "aa"},
		"l3": map[string]any{"proto": "udp"},
	}
	override := Traffic{
		"l2": map[string]any{"framesize": 128},
	}

	merged := Merge(base, override)

	l2 := merged["l2"].(map[string]any)
	assert.Equal(t, 128, l2["framesize"])
	assert.Equal(t, "aa", l2["srcmac"], "untouched sibling keys are preserved")
	assert.Equal(t, map[string]any{"proto": "udp"}, merged["l3"], "untouched subtrees are preserved")
}

func TestMergeAddsNewSubtrees(t *testing.T) {
	merged := Merge(Defaults(), Traffic{
		"vlan": map[string]any{"enabled": true, "id": 42},
	})

	vlan := merged["vlan"].(map[string]any)
	assert.Equal(t, true, vlan["enabled"])
	assert.Equal(t, 42, vlan["id"])
}

func TestMergeDoesNotMutateArguments(t *testing.T) {
	base := Defaults()
	override := Traffic{"l2": map[string]any{"framesize": 1500}}

	_ = Merge(base, override)

	assert.Equal(t, 64, base["l2"].(map[string]any)["framesize"])
	assert.Equal(t, map[string]any{"framesize": 1500}, override["l2"])
}

func TestMergeNilOverride(t *testing.T) {
	merged := Merge(Defaults(), nil)
	assert.Equal(t, map[string]any(Defaults()), map[string]any(merged))
}

func TestFrameSize(t *testing.T) {
	cases := []struct {
		name    string
		traffic Traffic
		want    int
		wantErr bool
	}{
		{"int", Traffic{"l2": map[string]any{"framesize": 64}}, 64, false},
		{"int64", Traffic{"l2": map[string]any{"framesize": int64(128)}}, 128, false},
		{"uint64", Traffic{"l2": map[string]any{"framesize": uint64(256)}}, 256, false},
		{"float64", Traffic{"l2": map[string]any{"framesize": float64(512)}}, 512, false},
		{"missing l2", Traffic{}, 0, true},
		{"missing framesize", Traffic{"l2": map[string]any{}}, 0, true},
		{"wrong type", Traffic{"l2": map[string]any{"framesize": "64"}}, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FrameSize(tc.traffic)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDefaultsReturnsFreshTree(t *testing.T) {
	a := Defaults()
	a["l2"].(map[string]any)["framesize"] = 9000

	b := Defaults()
	assert.Equal(t, 64, b["l2"].(map[string]any)["framesize"])
}
