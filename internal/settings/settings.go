// Package settings resolves global arcade settings from flags, environment
// variables and an optional ~/.arcade/arcade.toml file, in that order.
package settings

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Setting keys. Nested keys map to TOML tables; env names use ARCADE_ and
// underscores (ssh.idle-timeout -> ARCADE_SSH_IDLE_TIMEOUT).
const (
	KeyFPS         = "fps"
	KeySeed        = "seed"
	KeyDB          = "db"
	KeyLogFile     = "log-file"
	KeyLogLevel    = "log-level"
	KeySSHAddress  = "ssh.address"
	KeySSHHostKey  = "ssh.host-key"
	KeySSHIdleMins = "ssh.idle-timeout"
)

const (
	configName = "arcade"
	configType = "toml"
	envPrefix  = "ARCADE"

	maxFPS = 240
)

// Settings are the resolved global options.
type Settings struct {
	FPS      int
	Seed     int64
	DBPath   string
	LogFile  string
	LogLevel log.Level
	SSH      SSH
}

// SSH holds options for the SSH server.
type SSH struct {
	Address     string
	HostKeyPath string
	IdleTimeout time.Duration
}

// New returns a viper instance with defaults, env binding and the config
// search path set up. dir overrides ~/.arcade when non-empty.
func New(dir string) (*viper.Viper, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("settings: resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".arcade")
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(dir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyFPS, 60)
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyDB, "~/.arcade/scores.db")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeySSHAddress, ":23234")
	v.SetDefault(KeySSHHostKey, "")
	v.SetDefault(KeySSHIdleMins, 30)
	return v, nil
}

// BindFlags makes flags override every other source. names maps setting
// keys to flag names; flags missing from fs are an error.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet, names map[string]string) error {
	for key, name := range names {
		f := fs.Lookup(name)
		if f == nil {
			return fmt.Errorf("settings: no flag %q for key %q", name, key)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("settings: bind %q: %w", key, err)
		}
	}
	return nil
}

// Load reads the config file, if any, and resolves the settings.
func Load(v *viper.Viper) (Settings, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("settings: read config file: %w", err)
		}
	}

	level, err := log.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return Settings{}, fmt.Errorf("settings: %s: %w", KeyLogLevel, err)
	}

	s := Settings{
		FPS:      v.GetInt(KeyFPS),
		Seed:     v.GetInt64(KeySeed),
		DBPath:   v.GetString(KeyDB),
		LogFile:  v.GetString(KeyLogFile),
		LogLevel: level,
		SSH: SSH{
			Address:     v.GetString(KeySSHAddress),
			HostKeyPath: v.GetString(KeySSHHostKey),
			IdleTimeout: time.Duration(v.GetInt(KeySSHIdleMins)) * time.Minute,
		},
	}
	if s.FPS < 1 || s.FPS > maxFPS {
		return Settings{}, fmt.Errorf("settings: %s must be in [1, %d], got %d", KeyFPS, maxFPS, s.FPS)
	}
	if s.DBPath == "" {
		return Settings{}, fmt.Errorf("settings: %s is empty", KeyDB)
	}
	return s, nil
}

// Logger builds the application logger. Interactive sessions own the
// terminal, so logs go to LogFile or nowhere; the returned closer must be called.
func (s Settings) Logger(prefix string, interactive bool) (*log.Logger, func() error, error) {
	opts := log.Options{ReportTimestamp: true, Prefix: prefix, Level: s.LogLevel}
	nop := func() error { return nil }

	if s.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(s.LogFile), 0o755); err != nil {
			return nil, nop, fmt.Errorf("settings: create log directory: %w", err)
		}
		f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nop, fmt.Errorf("settings: open log file: %w", err)
		}
		return log.NewWithOptions(f, opts), f.Close, nil
	}
	if interactive {
		return log.NewWithOptions(io.Discard, opts), nop, nil
	}
	return log.NewWithOptions(os.Stderr, opts), nop, nil
}
