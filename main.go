package main

import (
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
)

var wg sync.WaitGroup

// backends compiled in, filled by init()
var features = []string{}

// pithermo -config={config file}

// buildRuntime opens the sensor and picks the backends, the display is
// opened later by run
func buildRuntime(settings configSettings, clock clockwork.Clock) (runtimeConfig, error) {
	rt := initRuntime(settings, clock)
	rt.display = &ledDisplay{}
	rt.statusSvc = &httpStatusService{}

	var err error
	rt.sensor, err = newSensor(settings)
	if err != nil {
		return rt, errors.Wrap(err, "sensor")
	}
	rt.buttons, err = newButtons(settings)
	if err != nil {
		return rt, errors.Wrap(err, "buttons")
	}
	return rt, nil
}

// run brings the hardware up in order and hands the display to the
// telemetry loop. The exit code is 0 for a requested stop and 1 for any
// failure.
func run(rt runtimeConfig) int {
	settings := rt.settings
	logger := rt.logger

	logger.Printf("features: %v", features)
	settings.Dump(logger)

	if err := rt.display.OpenDisplay(settings); err != nil {
		logger.Printf("Display is not ready: %s", err.Error())
		return 1
	}

	if err := rt.sensor.ready(); err != nil {
		logger.Printf("Device %s is not ready: %s", settings.GetString(sSensorBackend), err.Error())
		rt.display.CloseDisplay()
		return 1
	}

	delay := settings.GetDuration(sSelfTestDelay)
	if settings.GetBool(sSelfTest) {
		rt.display.SelfTest(rt.clock, delay)
	} else {
		rt.clock.Sleep(delay)
		rt.clock.Sleep(delay)
	}

	startWatchButtons(rt)
	if settings.GetString(sHTTPAddr) != "" {
		startStatusService(rt)
	}

	done := make(chan error, 1)
	go func() {
		done <- startTelemetry(rt)
	}()

	select {
	case err := <-done:
		logger.Printf("telemetry stopped: %s", err.Error())
		shutdown(rt.comms)
		wg.Wait()
		// the loop is over, this blank is the last write to the display
		rt.display.CloseDisplay()
		return 1
	case <-rt.comms.quit:
		// the loop has no way to stop, leave the display as it is
		logger.Println("quit requested")
		wg.Wait()
		return 0
	}
}

// releaseSensor closes the sensor bus once nothing reads it. After a quit
// the telemetry loop may still be mid fetch, so the bus is left to exit.
func releaseSensor(rt runtimeConfig, code int) bool {
	c, ok := rt.sensor.(io.Closer)
	if !ok || code == 0 {
		return false
	}
	if err := c.Close(); err != nil {
		rt.logger.Printf("sensor close: %s", err.Error())
	}
	return true
}

func main() {
	cfgFile := flag.String("config", defaultConfigFile, "Path to the JSON config file")
	flag.Parse()

	// read config information
	settings, err := initSettings(*cfgFile)
	if err != nil {
		log.Fatalf("Failed to read settings: %s", err.Error())
	}

	zl, err := setupLogging(settings)
	if err != nil {
		log.Fatalf("Failed to start logging: %s", err.Error())
	}

	rt, err := buildRuntime(settings, clockwork.NewRealClock())
	if err != nil {
		rt.logger.Printf("Startup failed: %s", err.Error())
		zl.Sync()
		os.Exit(1)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		rt.logger.Printf("got %v", sig)
		shutdown(rt.comms)
	}()

	code := run(rt)
	releaseSensor(rt, code)
	zl.Sync()
	os.Exit(code)
}
