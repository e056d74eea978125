package main

import (
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"gotest.tools/assert"
)

func startTestRun(rt runtimeConfig) chan int {
	done := make(chan int, 1)
	go func() {
		done <- run(rt)
	}()
	return done
}

func TestRunSelfTestThenSensorFails(t *testing.T) {
	rt, clock, comms := testRuntime()
	rt.sensor.(*scriptSensor).failFetch = 2
	display := rt.display.(*logDisplay)

	done := startTestRun(rt)
	// self-test
	testBlockDuration(clock, rt.settings.GetDuration(sSelfTestDelay), rt.settings.GetDuration(sSelfTestDelay))
	// one cycle
	testBlockDuration(clock, rt.settings.GetDuration(sSampleInterval), rt.settings.GetDuration(sSampleInterval))

	assert.Equal(t, <-done, 1)
	assert.DeepEqual(t, display.audit, []string{"<selftest>", auditClear, "23.4 C"})
	assert.Assert(t, !display.opened)
	assert.Assert(t, quitting(comms))
	assert.Assert(t, rt.logger.(*auditLogger).find("telemetry stopped") != "")
}

func TestRunWithoutSelfTest(t *testing.T) {
	rt, clock, _ := testRuntime()
	rt.settings.settings[sSelfTest] = false
	rt.sensor.(*scriptSensor).failFetch = 1
	display := rt.display.(*logDisplay)

	done := startTestRun(rt)
	// two startup delays, nothing drawn
	clock.BlockUntil(1)
	assert.Equal(t, len(display.audit), 0)
	clock.Advance(rt.settings.GetDuration(sSelfTestDelay))
	clock.BlockUntil(1)
	clock.Advance(rt.settings.GetDuration(sSelfTestDelay))

	assert.Equal(t, <-done, 1)
	assert.Equal(t, len(display.audit), 0)
}

func TestRunSensorNotReady(t *testing.T) {
	rt, _, comms := testRuntime()
	rt.sensor.(*scriptSensor).notReady = errors.New("no ack")
	display := rt.display.(*logDisplay)

	assert.Equal(t, run(rt), 1)
	assert.Equal(t, len(display.audit), 0)
	assert.Assert(t, !display.opened)
	assert.Assert(t, rt.logger.(*auditLogger).find("is not ready") != "")
	// nothing was started
	assert.Assert(t, !quitting(comms))
	assert.Equal(t, rt.sensor.(*scriptSensor).fetches, 0)
}

func TestRunQuit(t *testing.T) {
	rt, clock, comms := testRuntime()
	rt.settings.settings[sSelfTest] = false

	done := startTestRun(rt)
	testBlockDuration(clock, rt.settings.GetDuration(sSelfTestDelay), 2*rt.settings.GetDuration(sSelfTestDelay))
	// telemetry is in its sleep
	clock.BlockUntil(1)

	shutdown(comms)
	assert.Equal(t, <-done, 0)
	assert.DeepEqual(t, rt.display.(*logDisplay).printed(), []string{"23.4 C"})
}

func TestRunStartsStatusService(t *testing.T) {
	rt, clock, comms := testRuntime()
	rt.settings.settings[sSelfTest] = false
	rt.settings.settings[sHTTPAddr] = "127.0.0.1:0"
	rt.sensor.(*scriptSensor).failFetch = 1
	svc := rt.statusSvc.(*testStatusService)

	done := startTestRun(rt)
	testBlockDuration(clock, rt.settings.GetDuration(sSelfTestDelay), 2*rt.settings.GetDuration(sSelfTestDelay))

	assert.Equal(t, <-done, 1)
	assert.Assert(t, quitting(comms))
	assert.Equal(t, svc.addr, "127.0.0.1:0")
	assert.Assert(t, svc.stopped)
}

func TestBuildRuntime(t *testing.T) {
	rt, err := buildRuntime(testSettings(), clockwork.NewFakeClock())
	assert.NilError(t, err)
	_, ok := rt.display.(*ledDisplay)
	assert.Assert(t, ok)
	_, ok = rt.sensor.(*simSensor)
	assert.Assert(t, ok)
	_, ok = rt.buttons.(*noButtons)
	assert.Assert(t, ok)
	assert.Equal(t, rt.mode.load(), modeTemperature)

	settings := testSettings()
	settings.settings[sButtonBackend] = "lever"
	_, err = buildRuntime(settings, clockwork.NewFakeClock())
	assert.ErrorContains(t, err, "buttons")
}

func TestReleaseSensor(t *testing.T) {
	rt, _, _ := testRuntime()
	sensor, bus := newTestSHTC3()
	rt.sensor = sensor

	// telemetry may still be fetching after a quit
	assert.Assert(t, !releaseSensor(rt, 0))
	assert.Assert(t, !bus.closed)

	assert.Assert(t, releaseSensor(rt, 1))
	assert.Assert(t, bus.closed)

	rt.sensor = &simSensor{}
	assert.Assert(t, !releaseSensor(rt, 1))
}
