package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gotest.tools/assert"
	"gotest.tools/assert/cmp"
)

func TestDefaultSettings(t *testing.T) {
	s := defaultSettings()
	assert.Equal(t, s.GetDuration(sSampleInterval), time.Second)
	assert.Equal(t, s.GetDuration(sSelfTestDelay), time.Second)
	assert.Equal(t, s.GetBool(sSelfTest), true)
	assert.Equal(t, s.GetInt(sDigits), 6)
	assert.Equal(t, s.GetString(sDataPin), "17")
	assert.Equal(t, s.GetString(sStorePin), "27")
	assert.Equal(t, s.GetString(sRefreshPin), "22")
	assert.Equal(t, s.GetString(sLEDPin), "13")
	assert.Equal(t, s.GetString(sButtonPin), "25")
	assert.Equal(t, s.GetString(sHTTPAddr), "")
}

func TestSettingsFromJSON(t *testing.T) {
	s := defaultSettings()
	err := s.settingsFromJSON([]byte(`{
		"sampleInterval": "2500ms",
		"digits": 4,
		"logMaxBackups": "7",
		"selfTest": "false",
		"buttonPullup": false,
		"dataPin": 5,
		"refreshPin": "GPIO6",
		"httpUser": "me",
		"unknownKey": [1, 2]
	}`))
	assert.NilError(t, err)

	assert.Equal(t, s.GetDuration(sSampleInterval), 2500*time.Millisecond)
	assert.Equal(t, s.GetInt(sDigits), 4)
	assert.Equal(t, s.GetInt(sLogMaxBackups), 7)
	assert.Equal(t, s.GetBool(sSelfTest), false)
	assert.Equal(t, s.GetBool(sButtonPullup), false)
	assert.Equal(t, s.GetString(sDataPin), "5")
	assert.Equal(t, s.GetString(sRefreshPin), "GPIO6")
	assert.Equal(t, s.GetString(sHTTPUser), "me")
	// untouched keys keep their default
	assert.Equal(t, s.GetString(sStorePin), "27")
}

func TestSettingsBadTypes(t *testing.T) {
	for _, data := range []string{
		`{"sampleInterval": 5}`,
		`{"sampleInterval": "soon"}`,
		`{"digits": "six"}`,
		`{"selfTest": 3}`,
		`{"dataPin": true}`,
	} {
		s := defaultSettings()
		err := s.settingsFromJSON([]byte(data))
		assert.Assert(t, err != nil, data)
	}
}

func TestGettersWrongType(t *testing.T) {
	s := defaultSettings()
	assert.Equal(t, s.GetString(sDigits), "")
	assert.Equal(t, s.GetInt(sDataPin), 0)
	assert.Equal(t, s.GetBool(sSampleInterval), false)
	assert.Equal(t, s.GetDuration(sSelfTest), time.Duration(-1))
}

func TestInitSettingsFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "pithermo")
	assert.NilError(t, err)
	defer os.RemoveAll(dir)

	// no file, defaults
	s, err := initSettings(filepath.Join(dir, "missing.conf"))
	assert.NilError(t, err)
	assert.Equal(t, s.GetInt(sDigits), 6)

	cfg := filepath.Join(dir, "pithermo.conf")
	assert.NilError(t, ioutil.WriteFile(cfg, []byte(`{"digits": 8}`), 0644))
	s, err = initSettings(cfg)
	assert.NilError(t, err)
	assert.Equal(t, s.GetInt(sDigits), 8)

	assert.NilError(t, ioutil.WriteFile(cfg, []byte(`{"digits": "lots"}`), 0644))
	_, err = initSettings(cfg)
	assert.ErrorContains(t, err, "digits")
}

func TestSettingsDump(t *testing.T) {
	s := defaultSettings()
	s.settings[sHTTPSecret] = "hunter2"
	logger := &auditLogger{}

	s.Dump(logger)
	assert.Equal(t, len(logger.audit()), len(s.settings))
	secret := logger.find(sHTTPSecret)
	assert.Assert(t, cmp.Contains(secret, "********"))
	assert.Equal(t, logger.find("hunter2"), "")
	assert.Assert(t, cmp.Contains(logger.find(sDigits), "int: 6"))
}
