package main

import (
	"io/ioutil"
	"log"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
)

const defaultConfigFile = "/etc/default/pithermo/pithermo.conf"

// setting names
const (
	sSampleInterval = "sampleInterval"
	sSelfTest       = "selfTest"
	sSelfTestDelay  = "selfTestDelay"
	sDigits         = "digits"
	sGPIOBackend    = "gpioBackend"
	sDataPin        = "dataPin"
	sStorePin       = "storePin"
	sRefreshPin     = "refreshPin"
	sLEDPin         = "ledPin"
	sButtonBackend  = "buttonBackend"
	sButtonPin      = "buttonPin"
	sButtonPullup   = "buttonPullup"
	sButtonPoll     = "buttonPoll"
	sSensorBackend  = "sensorBackend"
	sI2CBus         = "i2cBus"
	sLogFile        = "logFile"
	sLogMaxSize     = "logMaxSizeMB"
	sLogMaxBackups  = "logMaxBackups"
	sDebug          = "debug"
	sDebugDump      = "debugDump"
	sHTTPAddr       = "httpAddr"
	sHTTPUser       = "httpUser"
	sHTTPSecret     = "httpSecret"
)

// keep settings generic, type-convert on the fly
type configSettings struct {
	settings map[string]interface{}
}

func onPi() bool {
	return runtime.GOARCH == "arm" || runtime.GOARCH == "arm64"
}

func defaultSettings() configSettings {
	s := make(map[string]interface{})

	// setting the type here makes the conversion "automatic" later
	s[sSampleInterval] = time.Second
	s[sSelfTest] = true
	s[sSelfTestDelay] = time.Second
	s[sDigits] = 6
	s[sDataPin] = "17"
	s[sStorePin] = "27"
	s[sRefreshPin] = "22"
	s[sLEDPin] = "13"
	s[sButtonPin] = "25"
	s[sButtonPullup] = true
	s[sButtonPoll] = 10 * time.Millisecond
	s[sI2CBus] = ""
	s[sLogFile] = ""
	s[sLogMaxSize] = 5
	s[sLogMaxBackups] = 3
	s[sDebug] = false
	s[sDebugDump] = false
	s[sHTTPAddr] = ""
	s[sHTTPUser] = "pithermo"
	s[sHTTPSecret] = ""

	// real hardware only on the pi
	if onPi() {
		s[sGPIOBackend] = "rpio"
		s[sButtonBackend] = "rpio"
		s[sSensorBackend] = "shtc3"
	} else {
		s[sGPIOBackend] = "sim"
		s[sButtonBackend] = "none"
		s[sSensorBackend] = "sim"
		s[sDebugDump] = true
	}

	return configSettings{settings: s}
}

func (s configSettings) settingsFromJSON(data []byte) error {
	for k, initVal := range s.settings {
		// ignore missing fields
		_, dataType, _, err := jsonparser.Get(data, k)
		if dataType == jsonparser.NotExist || err == jsonparser.KeyPathNotFoundError {
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "setting %s", k)
		}

		switch initVal.(type) {
		case int:
			var val int64
			val, err = jsonparser.GetInt(data, k)
			if err != nil {
				// try a quoted number
				var str string
				str, err = jsonparser.GetString(data, k)
				if err == nil {
					val, err = strconv.ParseInt(str, 0, 64)
				}
			}
			if err == nil {
				s.settings[k] = int(val)
			}
		case bool:
			var bVal bool
			bVal, err = jsonparser.GetBoolean(data, k)
			if err != nil {
				// try true and false
				str, _ := jsonparser.GetString(data, k)
				switch strings.ToLower(str) {
				case "true":
					bVal, err = true, nil
				case "false":
					bVal, err = false, nil
				}
			}
			if err == nil {
				s.settings[k] = bVal
			}
		case time.Duration:
			var dur string
			dur, err = jsonparser.GetString(data, k)
			if err == nil {
				var dur2 time.Duration
				dur2, err = time.ParseDuration(dur)
				if err == nil {
					s.settings[k] = dur2
				}
			}
		case string:
			var str string
			str, err = jsonparser.GetString(data, k)
			if err != nil {
				// pins are often written as numbers
				var num int64
				num, err = jsonparser.GetInt(data, k)
				str = strconv.FormatInt(num, 10)
			}
			if err == nil {
				s.settings[k] = str
			}
		default:
			err = errors.Errorf("Bad type: %T", initVal)
		}
		if err != nil {
			return errors.Wrapf(err, "setting %s", k)
		}
	}
	return nil
}

// initSettings reads the config file over the defaults. A missing file
// means run on defaults, a broken one is an error.
func initSettings(configFile string) (configSettings, error) {
	s := defaultSettings()
	if configFile == "" {
		return s, nil
	}

	data, err := ioutil.ReadFile(configFile)
	if err != nil {
		log.Printf("Could not load conf file '%s', using defaults", configFile)
		return s, nil
	}

	log.Printf("Reading configuration from '%s'", configFile)
	if err := s.settingsFromJSON(data); err != nil {
		return s, errors.Wrapf(err, "config %s", configFile)
	}
	return s, nil
}

func (s configSettings) GetString(key string) string {
	switch v := s.settings[key].(type) {
	case string:
		return v
	default:
		return ""
	}
}

func (s configSettings) GetBool(key string) bool {
	switch v := s.settings[key].(type) {
	case bool:
		return v
	default:
		return false
	}
}

func (s configSettings) GetDuration(key string) time.Duration {
	switch v := s.settings[key].(type) {
	case time.Duration:
		return v
	default:
		return -1
	}
}

func (s configSettings) GetInt(key string) int {
	switch v := s.settings[key].(type) {
	case int:
		return v
	default:
		return 0
	}
}

func (s configSettings) Dump(logger flogger) {
	keys := make([]string, 0, len(s.settings))
	for k := range s.settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := s.settings[k]
		if k == sHTTPSecret && v != "" {
			v = "********"
		}
		logger.Printf("%s : %T: %v", k, s.settings[k], v)
	}
}
