package dutbench

import (
	"sort"

	"golang.org/x/text/message"

	"github.com/skawata/dutbench/pkg/trafficgen"
)

// printReport writes the result record to stdout, one key per line,
// sorted so successive runs line up for easy diffing.
func printReport(test string, result trafficgen.Result) {
	keys := make([]string, 0, len(result))
	for k := range result {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	p := message.NewPrinter(message.MatchLanguage("en"))
	p.Printf("=== %s test results ===\n", test)
	for _, k := range keys {
		p.Printf("%-24s %v\n", k, result[trafficgen.Key(k)])
	}
}
