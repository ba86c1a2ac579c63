package main

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	envPrefix      = "MOORESLAW"
	configName     = "mooreslaw"
	outputFileName = "moores_law.png"
)

// config is the resolved run configuration after flags, env and config file are merged.
type config struct {
	Output   string
	Data     string
	Locale   string
	DPI      float64
	Annotate bool
	Caption  string
}

// defaultOutputPath places the figure next to this source file, not the working directory.
// Binaries moved away from their source fall back to the executable's directory.
func defaultOutputPath() string {
	if _, file, _, ok := runtime.Caller(0); ok {
		if dir := filepath.Dir(file); dirExists(dir) {
			return filepath.Join(dir, outputFileName)
		}
	}
	if exe, err := os.Executable(); err == nil {
		return filepath.Join(filepath.Dir(exe), outputFileName)
	}
	return outputFileName
}

func dirExists(dir string) bool {
	st, err := os.Stat(dir)
	return err == nil && st.IsDir()
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("output", defaultOutputPath())
	v.SetDefault("locale", "en")
	v.SetDefault("dpi", 300)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// readConfigFile loads an explicit config file, or searches the default locations.
// Only an explicit file is required to exist.
func readConfigFile(v *viper.Viper, file string, log zerolog.Logger) error {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.mooreslaw")
	}
	err := v.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		log.Debug().Msg("no config file found, using defaults")
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "load config file")
	}
	log.Debug().Str("file", v.ConfigFileUsed()).Msg("loaded config from file")
	return nil
}

func resolveConfig(v *viper.Viper) (config, error) {
	c := config{
		Output:   v.GetString("output"),
		Data:     v.GetString("data"),
		Locale:   v.GetString("locale"),
		DPI:      v.GetFloat64("dpi"),
		Annotate: v.GetBool("annotate"),
		Caption:  v.GetString("caption"),
	}
	if c.Output == "" {
		c.Output = defaultOutputPath()
	}
	if c.DPI <= 0 {
		return c, errors.Errorf("dpi must be positive, got %v", c.DPI)
	}
	return c, nil
}

func newLogger(w io.Writer, jsonLogs bool, verbosity int) zerolog.Logger {
	if !jsonLogs {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	level := zerolog.InfoLevel
	switch clamp(2, verbosity) {
	case 2:
		level = zerolog.TraceLevel
	case 1:
		level = zerolog.DebugLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func traceConfig(v *viper.Viper, log zerolog.Logger) {
	for _, k := range v.AllKeys() {
		log.Trace().Msgf("%s=%v", k, v.Get(k))
	}
}

func clamp(clamp, a int) int {
	if a >= clamp {
		return clamp
	}
	return a
}
