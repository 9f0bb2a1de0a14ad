// Package syslogprotocol provides the building blocks of syslog records: severity, facility and priority codes,
// validated header fields, timestamps and the RFC 3164 / RFC 5424 header formats.
//
// Reference: syslog.h
package syslogprotocol

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Severity is the importance of a log record. The valid range is [0,7], where 0 is the most severe.
type Severity uint8

// Severities as defined in syslog.h
const (
	SeverityEmerg   Severity = iota // system is unusable
	SeverityAlert                   // action must be taken immediately
	SeverityCrit                    // critical conditions
	SeverityErr                     // error conditions
	SeverityWarning                 // warning conditions
	SeverityNotice                  // normal but significant condition
	SeverityInfo                    // informational
	SeverityDebug                   // debug-level messages
)

// Facility is the code of the subsystem originating a log record.
//
// Values are pre-shifted (code << 3) so they can be OR'ed with a Severity to make the priority.
type Facility uint8

// Facilities as defined in syslog.h
const (
	FacilityKern     Facility = 0 << 3
	FacilityUser     Facility = 1 << 3 // default
	FacilityMail     Facility = 2 << 3
	FacilityDaemon   Facility = 3 << 3
	FacilityAuth     Facility = 4 << 3
	FacilitySyslog   Facility = 5 << 3
	FacilityLpr      Facility = 6 << 3
	FacilityNews     Facility = 7 << 3
	FacilityUUCP     Facility = 8 << 3
	FacilityCron     Facility = 9 << 3
	FacilityAuthPriv Facility = 10 << 3
	FacilityFTP      Facility = 11 << 3
	FacilityNTP      Facility = 12 << 3 // not universally supported
	FacilityAudit    Facility = 13 << 3 // not universally supported
	FacilityAlert    Facility = 14 << 3 // not universally supported
	FacilityClock    Facility = 15 << 3 // not universally supported
	FacilityLocal0   Facility = 16 << 3
	FacilityLocal1   Facility = 17 << 3
	FacilityLocal2   Facility = 18 << 3
	FacilityLocal3   Facility = 19 << 3
	FacilityLocal4   Facility = 20 << 3
	FacilityLocal5   Facility = 21 << 3
	FacilityLocal6   Facility = 22 << 3
	FacilityLocal7   Facility = 23 << 3
)

// DefaultFacility is used when none is specified
const DefaultFacility = FacilityUser

// FacilityNames contains the mapping of facility numbers (unshifted) to readable names
var FacilityNames = []string{
	"kern",     // 0
	"user",     // 1
	"mail",     // 2
	"daemon",   // 3
	"auth",     // 4
	"syslog",   // 5
	"lpr",      // 6
	"news",     // 7
	"uucp",     // 8
	"cron",     // 9
	"authpriv", // 10
	"ftp",      // 11
	"ntp",      // 12
	"audit",    // 13
	"alert",    // 14
	"clock",    // 15
	"local0",   // 16
	"local1",   // 17
	"local2",   // 18
	"local3",   // 19
	"local4",   // 20
	"local5",   // 21
	"local6",   // 22
	"local7",   // 23
}

// SeverityNames contains the mapping of severity (level) numbers to readable names
var SeverityNames = []string{
	"emerg",   // 0
	"alert",   // 1
	"crit",    // 2
	"err",     // 3
	"warning", // 4
	"notice",  // 5
	"info",    // 6
	"debug",   // 7
}

// severityAliases are accepted by ParseSeverity in addition to SeverityNames
var severityAliases = map[string]Severity{
	"emergency": SeverityEmerg,
	"panic":     SeverityEmerg,
	"critical":  SeverityCrit,
	"error":     SeverityErr,
	"warn":      SeverityWarning,
}

// Priority encodes the severity with the facility, as the number in "<PRI>"
func (s Severity) Priority(facility Facility) uint8 {
	return uint8(facility) | uint8(s&0b111)
}

// String returns the readable name
func (s Severity) String() string {
	if int(s) < len(SeverityNames) {
		return SeverityNames[s]
	}
	return fmt.Sprintf("severity(%d)", uint8(s))
}

// UnmarshalText parses severity names for configuration files
func (s *Severity) UnmarshalText(text []byte) error {
	val, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = val
	return nil
}

// ParseSeverity parses a severity name case-insensitively, e.g. "err", "Warning"
func ParseSeverity(name string) (Severity, error) {
	lname := strings.ToLower(name)
	if index := slices.Index(SeverityNames, lname); index != -1 {
		return Severity(index), nil
	}
	if sev, ok := severityAliases[lname]; ok {
		return sev, nil
	}
	return SeverityDebug, fmt.Errorf("unknown severity '%s'", name)
}

// Code returns the facility number before shifting, e.g. 16 for local0
func (f Facility) Code() int {
	return int(f >> 3)
}

// String returns the readable name
func (f Facility) String() string {
	if f.Code() < len(FacilityNames) && f&0b111 == 0 {
		return FacilityNames[f.Code()]
	}
	return fmt.Sprintf("facility(%d)", uint8(f))
}

// UnmarshalText parses facility names for configuration files
func (f *Facility) UnmarshalText(text []byte) error {
	val, err := ParseFacility(string(text))
	if err != nil {
		return err
	}
	*f = val
	return nil
}

// ParseFacility parses a facility name case-insensitively, e.g. "user", "LOCAL0"
func ParseFacility(name string) (Facility, error) {
	lname := strings.ToLower(name)
	if lname == "kernel" {
		return FacilityKern, nil
	}
	index := slices.Index(FacilityNames, lname)
	if index == -1 {
		return DefaultFacility, fmt.Errorf("unknown facility '%s'", name)
	}
	return Facility(index << 3), nil
}

// SplitPriority decodes a priority number back to facility and severity
func SplitPriority(pri uint8) (Facility, Severity) {
	return Facility(pri &^ 0b111), Severity(pri & 0b111)
}
