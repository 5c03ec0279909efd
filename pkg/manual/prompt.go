package manual

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/skawata/dutbench/pkg/trafficgen"
)

var (
	yesAnswers = []string{"yes", "y", "ye"}
	noAnswers  = []string{"no", "n"}
)

// console wraps the operator's terminal. All prompts go through here so
// tests can script the dialogue with an in-memory reader/writer.
type console struct {
	in  *bufio.Scanner
	out io.Writer
}

func newConsole(in io.Reader, out io.Writer) *console {
	return &console{in: bufio.NewScanner(in), out: out}
}

func (c *console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read operator input: %w", err)
		}
		return "", fmt.Errorf("operator input closed")
	}
	return c.in.Text(), nil
}

// askStat prompts until the operator supplies an integer and confirms
// it. Empty or affirmative confirmation accepts the value, a negative
// answer restarts the integer prompt, anything else re-asks the
// confirmation. The value itself is not bounds-checked.
func (c *console) askStat(ctx context.Context, stat string) (int64, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		fmt.Fprintf(c.out, "What was the result for '%s'? ", stat)
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}

		value, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil {
			fmt.Fprintln(c.out, "That was not a valid integer result. Try again.")
			continue
		}

		confirmed, err := c.confirm(value)
		if err != nil {
			return 0, err
		}
		if confirmed {
			return value, nil
		}
	}
}

func (c *console) confirm(value int64) (bool, error) {
	for {
		fmt.Fprintf(c.out, "Is '%d' correct? ", value)
		line, err := c.readLine()
		if err != nil {
			return false, err
		}

		choice := strings.ToLower(strings.TrimSpace(line))
		switch {
		case choice == "" || contains(yesAnswers, choice):
			return true, nil
		case contains(noAnswers, choice):
			return false, nil
		default:
			fmt.Fprint(c.out, "Please respond with 'yes' or 'no' ")
		}
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// collect announces the requested test once, then asks the operator for
// each statistic in order. The returned slice is aligned to stats: the
// i-th value answers the i-th name.
func (c *console) collect(ctx context.Context, kind, params string, traffic trafficgen.Traffic, stats []string) ([]int64, error) {
	flow, err := json.MarshalIndent(traffic, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("failed to render flow config: %w", err)
	}
	fmt.Fprintf(c.out, "Please send '%s' traffic with the following stream config:\n%s\nand the following flow config:\n%s\n", kind, params, flow)

	results := make([]int64, 0, len(stats))
	for _, stat := range stats {
		value, err := c.askStat(ctx, stat)
		if err != nil {
			return nil, err
		}
		results = append(results, value)
	}
	return results, nil
}
