package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/mcuadros/go-defaults"
	"github.com/urfave/cli"

	"github.com/skawata/dutbench/pkg/dutbench"
	_ "github.com/skawata/dutbench/pkg/manual"
	_ "github.com/skawata/dutbench/pkg/sim"
	"github.com/skawata/dutbench/pkg/trafficgen"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	app := newApp(version)
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("%+v", err)
	}
}

func newApp(version string) *cli.App {
	app := cli.NewApp()
	app.Name = "Dutbench"
	app.Version = fmt.Sprintf("%s, %s, %s, %s", version, commit, date, builtBy)

	app.Usage = "benchmark a network device under test through pluggable traffic generator drivers"

	app.EnableBashCompletion = true
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "driver, d",
			Value: "manual",
			Usage: fmt.Sprintf("traffic generator driver (%v)", trafficgen.Drivers()),
		},
		cli.StringFlag{
			Name:  "test, t",
			Value: "throughput",
			Usage: "test to run: burst, cont or throughput",
		},
		cli.StringFlag{
			Name:  "traffic, c",
			Usage: "YAML file overriding the default traffic config",
		},
		cli.IntFlag{
			Name:  "numpkts, n",
			Value: 100,
			Usage: "frame count for the burst test",
		},
		cli.IntFlag{
			Name:  "duration",
			Value: 20,
			Usage: "test duration in seconds",
		},
		cli.IntFlag{
			Name:  "framerate, r",
			Value: 100,
			Usage: "offered frame rate in frames per second",
		},
		cli.IntFlag{
			Name:  "trials",
			Value: 3,
			Usage: "trial count for the throughput test",
		},
		cli.Float64Flag{
			Name:  "lossrate",
			Value: 0.0,
			Usage: "acceptable loss rate for the throughput test",
		},
		cli.BoolFlag{
			Name:  "multistream",
			Usage: "request multiple concurrent streams",
		},
		cli.BoolFlag{
			Name:  "json",
			Usage: "log in JSON format",
		},
		cli.BoolFlag{
			Name:  "quiet, q",
			Usage: "only log warnings and errors",
		},
		cli.IntFlag{
			Name:  "verbose",
			Usage: "increase log verbosity",
		},
	}
	app.Action = run
	return app
}

func run(ctx *cli.Context) error {
	cfg := dutbench.Config{}
	defaults.SetDefaults(&cfg)
	if err := envconfig.Process("dutbench", &cfg); err != nil {
		return fmt.Errorf("failed read environment config: %w", err)
	}

	// flags take precedence over environment values when given
	if ctx.IsSet("driver") {
		cfg.Driver = ctx.String("driver")
	}
	if ctx.IsSet("test") {
		cfg.Test = ctx.String("test")
	}
	if ctx.IsSet("traffic") {
		cfg.TrafficFile = ctx.String("traffic")
	}
	if ctx.IsSet("numpkts") {
		cfg.NumPkts = ctx.Int("numpkts")
	}
	if ctx.IsSet("duration") {
		cfg.Duration = ctx.Int("duration")
	}
	if ctx.IsSet("framerate") {
		cfg.FrameRate = ctx.Int("framerate")
	}
	if ctx.IsSet("trials") {
		cfg.Trials = ctx.Int("trials")
	}
	if ctx.IsSet("lossrate") {
		cfg.LossRate = ctx.Float64("lossrate")
	}
	if ctx.Bool("multistream") {
		cfg.Multistream = true
	}
	if ctx.Bool("json") {
		cfg.LoggerConfig.JSON = true
	}
	if ctx.Bool("quiet") {
		cfg.LoggerConfig.Quiet = true
	}
	if ctx.IsSet("verbose") {
		cfg.LoggerConfig.Verbose = ctx.Int("verbose")
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	bench, err := dutbench.New(cfg)
	if err != nil {
		return fmt.Errorf("failed init dutbench: %w", err)
	}
	defer bench.Close()

	return bench.Run(context.Background())
}
