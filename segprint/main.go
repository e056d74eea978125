// segprint pushes one string, or the self-test, to a shift register display
package main

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"dscheirer.com/pithermo/gpiolines"
	ss "dscheirer.com/pithermo/sevenseg_shiftreg"
)

type options struct {
	backend  string
	digits   int
	selfTest bool
	delay    time.Duration
	pins     gpiolines.Pins
	dump     bool
}

// envDefault lets the environment stand in for a flag
func envDefault(name, def string) string {
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	return def
}

func segprint(lines ss.Lines, opts options, text string, clock clockwork.Clock, logger ss.Logger) error {
	display, err := ss.Open(lines, opts.digits)
	if err != nil {
		return errors.Wrap(err, "open display")
	}
	display.SetLogger(logger)
	display.DebugDump(opts.dump)

	if opts.selfTest {
		display.SelfTest(clock, opts.delay)
		return nil
	}
	for _, r := range text {
		if !ss.Supported(r) {
			logger.Printf("%q has no glyph", r)
		}
	}
	display.Print(text)
	return nil
}

func main() {
	digits, _ := strconv.Atoi(envDefault("DIGITS", "6"))

	var opts options
	flag.StringVar(&opts.backend, "backend", envDefault("BACKEND", gpiolines.BackendRpio), "rpio, periph or sim")
	flag.IntVar(&opts.digits, "digits", digits, "digits on the display")
	flag.BoolVar(&opts.selfTest, "selftest", false, "run the self-test instead of printing")
	flag.DurationVar(&opts.delay, "delay", time.Second, "self-test step time")
	flag.StringVar(&opts.pins.Data, "data", envDefault("DATA", "17"), "data pin")
	flag.StringVar(&opts.pins.Store, "store", envDefault("STORE", "27"), "shift clock pin")
	flag.StringVar(&opts.pins.Refresh, "refresh", envDefault("REFRESH", "22"), "latch pin")
	flag.BoolVar(&opts.dump, "dump", false, "log what gets latched")
	flag.Parse()

	zl, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer zl.Sync()
	logger := zap.NewStdLog(zl)

	if opts.backend == gpiolines.BackendSim {
		opts.dump = true
	}

	lines, err := gpiolines.Open(gpiolines.Config{
		Backend: opts.backend,
		Pins:    opts.pins,
		Digits:  opts.digits,
		Logger:  logger,
	})
	if err != nil {
		logger.Fatalf("%s", err.Error())
	}
	defer lines.Close()

	text := strings.Join(flag.Args(), " ")
	if err := segprint(lines, opts, text, clockwork.NewRealClock(), logger); err != nil {
		logger.Fatalf("%s", err.Error())
	}
}
