package main

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"

	"dscheirer.com/pithermo/gpiolines"
	ss "dscheirer.com/pithermo/sevenseg_shiftreg"
)

func init() {
	features = append(features, "shiftreg-display")
}

type ledDisplay struct {
	lines gpiolines.LineCloser
	ssr   *ss.Sevenseg
}

func linesConfig(settings configSettings, logger ss.Logger) gpiolines.Config {
	return gpiolines.Config{
		Backend: settings.GetString(sGPIOBackend),
		Pins: gpiolines.Pins{
			Data:    settings.GetString(sDataPin),
			Store:   settings.GetString(sStorePin),
			Refresh: settings.GetString(sRefreshPin),
			Status:  settings.GetString(sLEDPin),
		},
		Digits: settings.GetInt(sDigits),
		Logger: logger,
	}
}

// OpenDisplay drives every line inactive, then resets and blanks the register
func (ld *ledDisplay) OpenDisplay(settings configSettings) error {
	logger := &ThreadLogger{name: "Display"}

	var err error
	ld.lines, err = gpiolines.Open(linesConfig(settings, logger))
	if err != nil {
		return errors.Wrap(err, "open display lines")
	}

	ld.ssr, err = ss.Open(ld.lines, settings.GetInt(sDigits))
	if err != nil {
		ld.lines.Close()
		return errors.Wrap(err, "open display")
	}
	ld.ssr.SetLogger(logger)
	ld.ssr.DebugDump(settings.GetBool(sDebugDump))
	return nil
}

func (ld *ledDisplay) DebugDump(on bool) {
	ld.ssr.DebugDump(on)
}

func (ld *ledDisplay) Print(e string) error {
	ld.ssr.Print(e)
	return nil
}

func (ld *ledDisplay) ClearDisplay() error {
	ld.ssr.ClearDisplay()
	return nil
}

func (ld *ledDisplay) SelfTest(clock clockwork.Clock, delay time.Duration) error {
	ld.ssr.SelfTest(clock, delay)
	return nil
}

func (ld *ledDisplay) CloseDisplay() error {
	ld.ssr.ClearDisplay()
	return ld.lines.Close()
}
