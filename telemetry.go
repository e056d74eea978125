package main

import (
	"fmt"
	"time"
)

func startTelemetry(rt runtimeConfig) error {
	rt.logger = &ThreadLogger{name: "Telemetry"}
	return runTelemetry(rt)
}

// displayText builds what the display shows for the mode
func displayText(mode displayMode, temp, humidity float64, up time.Duration) string {
	switch mode {
	case modeHumidity:
		return fmt.Sprintf("%.1f H", humidity)
	case modeUptime:
		return uptimeText(up)
	}
	return fmt.Sprintf("%.1f C", temp)
}

// HH MM, hours wrap at 100 so the width never changes
func uptimeText(up time.Duration) string {
	mins := int64(up / time.Minute)
	return fmt.Sprintf("%02d %02d", (mins/60)%100, mins%60)
}

// readSensor runs one fetch and both channel reads, logging the status
// of whichever step failed
func readSensor(rt runtimeConfig) (float64, float64, error) {
	if err := rt.sensor.fetch(); err != nil {
		rt.logger.Printf("Sensor fetch failed: %d", sensorCode(err))
		return 0, 0, err
	}
	temp, err := rt.sensor.channel(chanAmbientTemp)
	if err != nil {
		rt.logger.Printf("get failed: %d", sensorCode(err))
		return 0, 0, err
	}
	humidity, err := rt.sensor.channel(chanHumidity)
	if err != nil {
		rt.logger.Printf("get failed: %d", sensorCode(err))
		return 0, 0, err
	}
	return temp, humidity, nil
}

// runTelemetry owns the display: sample, show, report, sleep. It only
// returns on a sensor failure.
func runTelemetry(rt runtimeConfig) error {
	defer func() {
		rt.logger.Println("Exiting runTelemetry")
	}()

	interval := rt.settings.GetDuration(sSampleInterval)
	for {
		temp, humidity, err := readSensor(rt)
		if err != nil {
			return err
		}

		up := rt.uptime()
		text := displayText(rt.mode.load(), temp, humidity, up)

		// a shorter string must not leave old segments lit
		if err := rt.display.ClearDisplay(); err != nil {
			rt.logger.Printf("clear failed: %s", err.Error())
		}
		if err := rt.display.Print(text); err != nil {
			rt.logger.Printf("print failed: %s", err.Error())
		}

		rt.logger.Printf("[%s]: %.1f Cel ; %.1f %%RH", uptimeStamp(up), temp, humidity)

		rt.clock.Sleep(interval)
	}
}
