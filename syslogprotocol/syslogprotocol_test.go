package syslogprotocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestPriority(t *testing.T) {
	assert.Equal(t, uint8(8+3), SeverityErr.Priority(FacilityUser))
	assert.Equal(t, uint8(0), SeverityEmerg.Priority(FacilityKern))
	assert.Equal(t, uint8(191), SeverityDebug.Priority(FacilityLocal7))
	assert.Equal(t, FacilityUser, DefaultFacility)

	for code := range FacilityNames {
		facility := Facility(code << 3)
		assert.Equal(t, code, facility.Code())
		for sev := SeverityEmerg; sev <= SeverityDebug; sev++ {
			f, s := SplitPriority(sev.Priority(facility))
			assert.Equal(t, facility, f)
			assert.Equal(t, sev, s)
		}
	}
}

func TestParseNames(t *testing.T) {
	for name, expected := range map[string]Severity{
		"emerg":    SeverityEmerg,
		"ALERT":    SeverityAlert,
		"critical": SeverityCrit,
		"err":      SeverityErr,
		"error":    SeverityErr,
		"Warn":     SeverityWarning,
		"notice":   SeverityNotice,
		"info":     SeverityInfo,
		"debug":    SeverityDebug,
	} {
		sev, err := ParseSeverity(name)
		if assert.NoError(t, err, name) {
			assert.Equal(t, expected, sev, name)
		}
	}
	_, err := ParseSeverity("verbose")
	assert.EqualError(t, err, "unknown severity 'verbose'")

	for name, expected := range map[string]Facility{
		"kern":   FacilityKern,
		"kernel": FacilityKern,
		"user":   FacilityUser,
		"Cron":   FacilityCron,
		"local0": FacilityLocal0,
		"local7": FacilityLocal7,
	} {
		fac, err := ParseFacility(name)
		if assert.NoError(t, err, name) {
			assert.Equal(t, expected, fac, name)
		}
	}
	_, err = ParseFacility("local8")
	assert.Error(t, err)

	assert.Equal(t, "local3", FacilityLocal3.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "severity(9)", Severity(9).String())
	assert.Equal(t, "facility(9)", Facility(9).String())
}

func TestNamesFromYaml(t *testing.T) {
	var conf struct {
		Facility Facility `yaml:"facility"`
		Severity Severity `yaml:"severity"`
	}
	if assert.NoError(t, yaml.Unmarshal([]byte("facility: local4\nseverity: notice\n"), &conf)) {
		assert.Equal(t, FacilityLocal4, conf.Facility)
		assert.Equal(t, SeverityNotice, conf.Severity)
	}
	assert.Error(t, yaml.Unmarshal([]byte("facility: nowhere\n"), &conf))
}
