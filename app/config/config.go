package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultAddr        = ":5001"
	DefaultServiceName = "bloggers"
)

// AccessLog configures shipping of per-request access log entries to Kafka.
type AccessLog struct {
	KafkaBrokers []string `toml:"kafkaBrokers"`
	KafkaTopic   string   `toml:"kafkaTopic"`
	KafkaBatch   int      `toml:"kafkaBatch"`
}

type Config struct {
	Addr        string    `toml:"addr"`
	ServiceName string    `toml:"serviceName"`
	LogLevel    string    `toml:"logLevel"`
	LogFormat   string    `toml:"logFormat"`
	Seed        bool      `toml:"seed"`
	AccessLog   AccessLog `toml:"accessLog"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Addr:        DefaultAddr,
		ServiceName: DefaultServiceName,
		LogLevel:    "info",
		LogFormat:   "text",
		Seed:        true,
	}
}

// Load reads a TOML file on top of the defaults. An empty path yields the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Warnf("[config] unknown key %q in %s", key.String(), path)
	}
	return cfg, nil
}

// FromArgs builds the configuration for the serve command. Flags override
// values read from the --config file.
func FromArgs(args []string, output io.Writer) (*Config, error) {
	var (
		configPath string
		addr       string
		logLevel   string
	)

	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&configPath, "config", "", "Path to TOML config file")
	fs.StringVar(&addr, "addr", "", "HTTP server address in the form 'host:port'.")
	fs.StringVar(&logLevel, "log", "", "Log level: debug, info, warn, error.")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg, err := Load(configPath)
	if err != nil {
		return nil, err
	}

	// Override config with flags if set
	if addr != "" {
		cfg.Addr = addr
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if !strings.Contains(c.Addr, ":") {
		return fmt.Errorf("addr %q must be in the form 'host:port', e.g. ':5001'", c.Addr)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.Formatter(); err != nil {
		return err
	}
	if len(c.AccessLog.KafkaBrokers) > 0 && c.AccessLog.KafkaTopic == "" {
		return errors.New("accessLog.kafkaTopic is required when kafkaBrokers are set")
	}
	return nil
}

// AccessLogEnabled reports whether access log entries should be sent to Kafka.
func (c *Config) AccessLogEnabled() bool {
	return len(c.AccessLog.KafkaBrokers) > 0 && c.AccessLog.KafkaTopic != ""
}

// Level maps LogLevel onto a logrus level.
func (c *Config) Level() (log.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return log.DebugLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "warn":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	}
	return 0, fmt.Errorf("unknown log level %q", c.LogLevel)
}

// Formatter maps LogFormat onto a logrus formatter.
func (c *Config) Formatter() (log.Formatter, error) {
	switch strings.ToLower(c.LogFormat) {
	case "", "text":
		return &log.TextFormatter{FullTimestamp: true}, nil
	case "json":
		return &log.JSONFormatter{}, nil
	}
	return nil, fmt.Errorf("unknown log format %q", c.LogFormat)
}

// ConfigureLogging applies the level and format to the standard logrus logger.
func (c *Config) ConfigureLogging() error {
	level, err := c.Level()
	if err != nil {
		return err
	}
	formatter, err := c.Formatter()
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetFormatter(formatter)
	return nil
}
