package run

import (
	"testing"
	"time"

	"github.com/relex/gotils/logger"
	"github.com/relex/gotils/promexporter/promext"
	"github.com/relex/gotils/promexporter/promreg"
	"github.com/relex/slog-syslog/client"
	"github.com/relex/slog-syslog/defs"
	"github.com/relex/slog-syslog/syslogprotocol"
	"github.com/relex/slog-syslog/testdata"
	"github.com/relex/slog-syslog/transport"
	"github.com/relex/slog-syslog/transport/transporttest"
	"github.com/relex/slog-syslog/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile(t *testing.T) {
	cfg, err := LoadConfigFile(testdata.GetConfigPath())
	require.NoError(t, err)

	assert.Equal(t, syslogprotocol.FacilityLocal3, cfg.Facility)
	assert.Equal(t, "web-1.example.com", cfg.Hostname.String())
	assert.Equal(t, "myapp", cfg.Tag.String())
	assert.Equal(t, "audit", cfg.MsgID.String())
	assert.Equal(t, client.FormatRFC5424, cfg.Format)
	assert.Equal(t, uint8(3), cfg.RetryCount)
	assert.Equal(t, uint64(4096), cfg.RecordSize.Bytes())
	assert.Equal(t, transport.Config{
		Type:    transport.TypeTCP,
		Address: "127.0.0.1:6514",
		Timeout: 5 * time.Second,
		Framing: transport.FramingOctetCounting,
	}, cfg.Transport)

	syslog := cfg.NewSyslog()
	assert.Equal(t, syslogprotocol.FacilityLocal3, syslog.Facility())
	assert.Equal(t, "web-1.example.com", syslog.Hostname().String())
	assert.Equal(t, 4096, syslog.RecordSize())
	assert.Equal(t, uint8(3), syslog.RetryCount())
}

func TestLoadMinimalConfigFile(t *testing.T) {
	cfg, err := LoadConfigFile(testdata.GetMinimalConfigPath())
	require.NoError(t, err)

	assert.Equal(t, syslogprotocol.FacilityUser, cfg.Facility)
	assert.Nil(t, cfg.Hostname)
	assert.Nil(t, cfg.Tag)
	assert.Equal(t, client.FormatRFC3164, cfg.Format)
	assert.Equal(t, uint8(defs.DefaultRetryCount), cfg.RetryCount)

	syslog := cfg.NewSyslog()
	assert.Equal(t, DefaultHostname(), syslog.Hostname())
	assert.Equal(t, DefaultTag(), syslog.Tag())
	assert.Equal(t, defs.RFC3164RecordSize, syslog.RecordSize())
}

func TestInvalidConfig(t *testing.T) {
	for _, contents := range []string{
		"facility: local9\n",
		"hostname: web_1\n",
		"tag: my-app\n",
		"format: json\n",
		"recordSize: 1MB\n",
		"format: rfc5424\nrecordSize: 100B\n",
		"msgID: audit\n",
		"retryCount: 300\n",
		"unknown: 1\n",
		"transport:\n  type: tcp\n",
		"transport:\n  type: udp\n  address: localhost:514\n  framing: octet-counting\n",
	} {
		cfg := NewDefaultConfig()
		err := util.UnmarshalYamlString(contents, cfg)
		if err == nil {
			err = cfg.VerifyConfig()
		}
		assert.Error(t, err, contents)
	}
}

func TestConfigWithoutSystemSocket(t *testing.T) {
	oldPaths := defs.SystemSocketPaths
	defer func() { defs.SystemSocketPaths = oldPaths }()
	defs.SystemSocketPaths = []string{t.TempDir() + "/none"}

	cfg := NewDefaultConfig()
	assert.NoError(t, cfg.VerifyConfig(), "config can be checked on machines without syslog daemon")
	_, err := cfg.NewLogger(logger.WithField("test", t.Name()), nil)
	assert.ErrorIs(t, err, transport.ErrNoSystemSocket)
}

func TestTagFromName(t *testing.T) {
	assert.Equal(t, "slogsyslog", tagFromName("slog-syslog").String())
	assert.Equal(t, "runtest", tagFromName("run.test").String())
	assert.Equal(t, "app", tagFromName("__").String())
	assert.Equal(t, "abcdefghijklmnopqrstuvwxyz012345", tagFromName("abcdefghijklmnopqrstuvwxyz0123456789").String())
}

func TestNewLogger(t *testing.T) {
	recv, err := transporttest.ListenUDP(logger.WithField("test", t.Name()))
	require.NoError(t, err)
	defer recv.Close()

	cfg := NewDefaultConfig()
	require.NoError(t, util.UnmarshalYamlString(`
facility: daemon
hostname: in.memory
tag: test
transport:
  type: udp
  address: `+recv.Address()+`
`, cfg))
	require.NoError(t, cfg.VerifyConfig())

	mfactory := promreg.NewMetricFactory("testrunlogger_", nil, nil)
	clogger, err := cfg.NewLogger(logger.WithField("test", t.Name()), mfactory)
	require.NoError(t, err)
	defer clogger.Close()

	assert.NoError(t, clogger.WriteString(client.NewRFC3164Buffer(), syslogprotocol.SeverityCrit, "disk full"))
	rec, ok := recv.Next()
	require.True(t, ok)

	msg, err := syslogprotocol.ParseRFC3164(rec)
	if assert.NoError(t, err) {
		assert.Equal(t, syslogprotocol.FacilityDaemon, msg.Facility)
		assert.Equal(t, syslogprotocol.SeverityCrit, msg.Severity)
		assert.Equal(t, "in.memory", msg.Hostname)
		assert.Equal(t, "test", msg.Tag)
		assert.Equal(t, "disk full", msg.Body)
	}

	assert.Contains(t, promext.DumpMetrics("", true, false, mfactory), `testrunlogger_output_written_records_total{transport="udp"} 1
`)
}
