package aoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the runner settings. Every key can be set through an AOC_
// prefixed environment variable, e.g. AOC_INPUT_DIR or AOC_LOG_LEVEL.
type Config struct {
	// Session is the adventofcode.com session cookie.
	Session string `mapstructure:"session"`
	// SessionFile is read for the session cookie when Session is empty.
	SessionFile string `mapstructure:"session_file" default:"~/keys/aoc.session"`
	// InputDir holds the cached inputs and answers, one directory per year.
	InputDir string `mapstructure:"input_dir" default:"."`
	// Log configures the diagnostics logger.
	Log LogConfig `mapstructure:"log"`
}

// LoadConfig loads configuration from the environment and from the .env
// file in dir, if there is one.
func LoadConfig(dir string) (*Config, error) {
	envPath := filepath.Join(dir, ".env")
	if dir == "" || dir == "." {
		envPath = ".env"
	}
	// A missing .env is fine.
	if err := godotenv.Overload(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", envPath, err)
	}

	v := viper.New()
	bindValues(v, Config{}, "")
	v.SetEnvPrefix("aoc")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindValues registers every mapstructure key of iface with v, using the
// field's default tag as the default value. Keys must be registered for
// AutomaticEnv to pick them up during Unmarshal.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}
		v.SetDefault(key, field.Tag.Get("default"))
	}
}

var errNoSession = errors.New("no adventofcode.com session configured")

// SessionToken returns the session cookie, reading SessionFile if Session
// is not set directly.
func (c *Config) SessionToken() (string, error) {
	if s := strings.TrimSpace(c.Session); s != "" {
		return s, nil
	}
	if c.SessionFile == "" {
		return "", errNoSession
	}
	path, err := expandHome(c.SessionFile)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errNoSession, err)
	}
	s := strings.TrimSpace(string(b))
	if s == "" {
		return "", fmt.Errorf("%w: %s is empty", errNoSession, path)
	}
	return s, nil
}

func expandHome(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, rest), nil
}
