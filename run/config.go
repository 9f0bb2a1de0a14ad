package run

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/relex/gotils/logger"
	"github.com/relex/gotils/promexporter/promreg"
	"github.com/relex/slog-syslog/client"
	"github.com/relex/slog-syslog/defs"
	"github.com/relex/slog-syslog/output/baseoutput"
	"github.com/relex/slog-syslog/syslogprotocol"
	"github.com/relex/slog-syslog/transport"
	"github.com/relex/slog-syslog/util"
)

// Config defines the root of config file
type Config struct {
	Facility   syslogprotocol.Facility  `yaml:"facility"`
	Hostname   *syslogprotocol.Hostname `yaml:"hostname"` // default to local hostname, or "-" if it's not valid
	Tag        *syslogprotocol.Tag      `yaml:"tag"`      // default to executable name
	MsgID      *syslogprotocol.Tag      `yaml:"msgID"`    // RFC 5424 only
	Format     client.Format            `yaml:"format"`
	RetryCount uint8                    `yaml:"retryCount"`
	RecordSize datasize.ByteSize        `yaml:"recordSize"` // default to the standard size of format
	Transport  transport.Config         `yaml:"transport"`
}

// NewDefaultConfig creates a Config with defaults for unspecified fields
func NewDefaultConfig() *Config {
	return &Config{
		Facility:   syslogprotocol.DefaultFacility,
		Hostname:   nil,
		Tag:        nil,
		MsgID:      nil,
		Format:     client.FormatRFC3164,
		RetryCount: defs.DefaultRetryCount,
		RecordSize: 0,
		Transport: transport.Config{
			Type: transport.TypeSystem,
		},
	}
}

// LoadConfigFile loads config from the path and verifies it
func LoadConfigFile(filepath string) (*Config, error) {
	cref := NewDefaultConfig()
	if err := util.UnmarshalYamlFile(filepath, cref); err != nil {
		return nil, err
	}
	if err := cref.VerifyConfig(); err != nil {
		return nil, err
	}
	return cref, nil
}

// VerifyConfig checks configuration
func (cfg *Config) VerifyConfig() error {
	if cfg.MsgID != nil && cfg.Format != client.FormatRFC5424 {
		return fmt.Errorf(".msgID is only supported by %s", client.FormatRFC5424)
	}
	if size := cfg.RecordSize.Bytes(); size > 0 {
		minSize := uint64(syslogprotocol.RFC3164HeaderSize) + 2
		maxSize := uint64(defs.RFC3164RecordSize)
		if cfg.Format == client.FormatRFC5424 {
			minSize = uint64(syslogprotocol.RFC5424HeaderSize) + 2
			maxSize = defs.RecordMaxSize
		}
		if size < minSize || size > maxSize {
			return fmt.Errorf(".recordSize %s is out of range [%d, %d] for %s", cfg.RecordSize.HR(), minSize, maxSize, cfg.Format)
		}
	}
	if _, err := cfg.Transport.NewFactory(); err != nil && !isMissingSystemSocket(cfg, err) {
		return fmt.Errorf(".transport: %w", err)
	}
	return nil
}

// NewSyslog creates the record settings from this config
func (cfg *Config) NewSyslog() *client.Syslog {
	hostname := DefaultHostname()
	if cfg.Hostname != nil {
		hostname = *cfg.Hostname
	}
	tag := DefaultTag()
	if cfg.Tag != nil {
		tag = *cfg.Tag
	}
	syslog := client.New(cfg.Facility, hostname, tag).
		WithFormat(cfg.Format).
		WithRetryCount(cfg.RetryCount).
		WithRecordSize(int(cfg.RecordSize.Bytes()))
	if cfg.MsgID != nil {
		syslog = syslog.WithMsgID(*cfg.MsgID)
	}
	return syslog
}

// NewLogger creates a Logger writing through the configured transport
//
// Metrics of the transport are labelled by transport type. metricCreator may be nil.
func (cfg *Config) NewLogger(parentLogger logger.Logger, metricCreator promreg.MetricCreator) (*client.Logger, error) {
	factory, err := cfg.Transport.NewFactory()
	if err != nil {
		return nil, fmt.Errorf(".transport: %w", err)
	}
	if metricCreator == nil {
		metricCreator = promreg.NewMetricFactory("", nil, nil)
	}
	transportMetricCreator := metricCreator.AddOrGetPrefix("", []string{defs.LabelTransport}, []string{cfg.Transport.Type})

	writer := baseoutput.NewRetryWriter(parentLogger.WithField(defs.LabelTransport, factory), factory, transportMetricCreator)
	return client.NewLogger(cfg.NewSyslog(), writer), nil
}

// DefaultHostname returns the local hostname, or its first label if the full name isn't valid, or NilHostname
func DefaultHostname() syslogprotocol.Hostname {
	name, err := os.Hostname()
	if err != nil {
		return syslogprotocol.NilHostname
	}
	if hostname, err := syslogprotocol.NewHostname(name); err == nil {
		return hostname
	}
	if shortName, _, found := strings.Cut(name, "."); found {
		if hostname, err := syslogprotocol.NewHostname(shortName); err == nil {
			return hostname
		}
	}
	return syslogprotocol.NilHostname
}

// DefaultTag returns the executable name without invalid characters, or "app" if nothing is left
func DefaultTag() syslogprotocol.Tag {
	return tagFromName(filepath.Base(os.Args[0]))
}

func tagFromName(name string) syslogprotocol.Tag {
	var sb strings.Builder
	for i := 0; i < len(name) && sb.Len() < syslogprotocol.TagMaxLen; i++ {
		c := name[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			sb.WriteByte(c)
		}
	}
	if tag, err := syslogprotocol.NewTag(sb.String()); err == nil {
		return tag
	}
	return syslogprotocol.MustNewTag("app")
}

// isMissingSystemSocket allows configs for the local syslog daemon to be verified on machines without it
func isMissingSystemSocket(cfg *Config, err error) bool {
	return cfg.Transport.Type == transport.TypeSystem && errors.Is(err, transport.ErrNoSystemSocket)
}
