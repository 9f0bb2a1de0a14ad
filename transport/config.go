package transport

import (
	"fmt"
	"time"

	"github.com/relex/slog-syslog/base"
)

// Transport types in Config
const (
	TypeUDP     = "udp"
	TypeTCP     = "tcp"
	TypeUnix    = "unix"
	TypeSystem  = "system" // unix socket of local syslog daemon
	TypeDiscard = "discard"
)

// Config is the YAML configuration of transport
type Config struct {
	Type         string        `yaml:"type"`
	Address      string        `yaml:"address"`      // host:port, or path for unix
	LocalAddress string        `yaml:"localAddress"` // udp only
	Timeout      time.Duration `yaml:"timeout"`
	Framing      Framing       `yaml:"framing"` // tcp only
}

// NewFactory validates the config and creates a TransportFactory accordingly
func (cfg Config) NewFactory() (base.TransportFactory, error) {
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("negative timeout: %s", cfg.Timeout)
	}
	if cfg.LocalAddress != "" && cfg.Type != TypeUDP {
		return nil, fmt.Errorf("localAddress is only supported by %s", TypeUDP)
	}
	if cfg.Framing != FramingNewline && cfg.Type != TypeTCP {
		return nil, fmt.Errorf("framing is only supported by %s", TypeTCP)
	}

	switch cfg.Type {
	case TypeUDP:
		if cfg.Address == "" {
			return nil, fmt.Errorf("missing address for %s", cfg.Type)
		}
		return UDP{Address: cfg.Address, LocalAddress: cfg.LocalAddress, Timeout: cfg.Timeout}, nil
	case TypeTCP:
		if cfg.Address == "" {
			return nil, fmt.Errorf("missing address for %s", cfg.Type)
		}
		return TCP{Address: cfg.Address, Timeout: cfg.Timeout, Framing: cfg.Framing}, nil
	case TypeUnix:
		if cfg.Address == "" {
			return nil, fmt.Errorf("missing address (path) for %s", cfg.Type)
		}
		return Unix{Path: cfg.Address, Timeout: cfg.Timeout}, nil
	case TypeSystem:
		if cfg.Address != "" {
			return nil, fmt.Errorf("address cannot be set for %s", cfg.Type)
		}
		factory, err := NewSystemUnix()
		if err != nil {
			return nil, err
		}
		factory.Timeout = cfg.Timeout
		return factory, nil
	case TypeDiscard:
		return Discard{}, nil
	case "":
		return nil, fmt.Errorf("missing transport type")
	default:
		return nil, fmt.Errorf("unknown transport type '%s'", cfg.Type)
	}
}
