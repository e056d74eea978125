package main

import (
	"fmt"
	"log"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"gotest.tools/assert"
)

func logCaller(pc uintptr, file string, line int, ok bool) {
	if !ok {
		file = "?"
		line = 0
	}

	fn := runtime.FuncForPC(pc)
	var fnName string
	if fn == nil {
		fnName = "?()"
	} else {
		dotName := filepath.Ext(fn.Name())
		fnName = strings.TrimLeft(dotName, ".") + "()"
	}

	log.Printf("Starting %s (%s:%d)", fnName, filepath.Base(file), line)
}

// auditLogger keeps every line for the test to look at
type auditLogger struct {
	mu    sync.Mutex
	lines []string
}

func (al *auditLogger) Printf(format string, args ...interface{}) {
	al.mu.Lock()
	defer al.mu.Unlock()
	al.lines = append(al.lines, fmt.Sprintf(format, args...))
}

func (al *auditLogger) Println(args ...interface{}) {
	al.mu.Lock()
	defer al.mu.Unlock()
	al.lines = append(al.lines, strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

func (al *auditLogger) audit() []string {
	al.mu.Lock()
	defer al.mu.Unlock()
	return append([]string{}, al.lines...)
}

// the first line containing s, "" when none does
func (al *auditLogger) find(s string) string {
	for _, l := range al.audit() {
		if strings.Contains(l, s) {
			return l
		}
	}
	return ""
}

type reading struct {
	temp     float64
	humidity float64
}

// scriptSensor plays back readings and fails where it is told to
type scriptSensor struct {
	readings  []reading
	fetches   int
	failFetch int // fetch number that fails, 0 for never
	failGet   int // fetch number whose channel read fails
	failChan  sensorChannel
	notReady  error
}

func (s *scriptSensor) ready() error {
	return s.notReady
}

func (s *scriptSensor) fetch() error {
	s.fetches++
	if s.fetches == s.failFetch {
		return fetchError(codeBus, errors.New("bus fault"))
	}
	return nil
}

func (s *scriptSensor) channel(ch sensorChannel) (float64, error) {
	if s.fetches == s.failGet && ch == s.failChan {
		return 0, channelError(ch, codeRead, errors.New("checksum"))
	}
	r := s.readings[(s.fetches-1)%len(s.readings)]
	if ch == chanHumidity {
		return r.humidity, nil
	}
	return r.temp, nil
}

type testStatusService struct {
	handler *apiHandler
	addr    string
	stopped bool
}

func (t *testStatusService) launch(handler *apiHandler, addr string) {
	t.handler = handler
	t.addr = addr
}

func (t *testStatusService) stop() {
	t.stopped = true
}

func testSettings() configSettings {
	s := defaultSettings()
	s.settings[sGPIOBackend] = "sim"
	s.settings[sButtonBackend] = "none"
	s.settings[sSensorBackend] = "sim"
	s.settings[sDebugDump] = false
	return s
}

func testRuntime() (runtimeConfig, clockwork.FakeClock, commChannels) {
	// make rt for test, log the start of the test
	logCaller(runtime.Caller(1))

	clock := clockwork.NewFakeClock()
	rt := initRuntime(testSettings(), clock)
	rt.logger = &auditLogger{}
	rt.display = &logDisplay{}
	rt.display.OpenDisplay(rt.settings)
	rt.sensor = &scriptSensor{readings: []reading{{23.4, 55.2}}}
	rt.buttons = newNoButtons()
	rt.statusSvc = &testStatusService{}
	return rt, clock, rt.comms
}

// testBlockDuration steps the fake clock through d, one sleeper at a time
func testBlockDuration(clock clockwork.FakeClock, step time.Duration, d time.Duration) {
	for d > 0 {
		clock.BlockUntil(1)
		clock.Advance(step)
		d -= step
	}
}

func testQuit(rt runtimeConfig) {
	shutdown(rt.comms)
	wg.Wait()
}

func assertNoError(t *testing.T, c chan error) {
	select {
	case err := <-c:
		assert.NilError(t, err, "unexpected exit")
	default:
	}
}
