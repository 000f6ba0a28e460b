package controllers

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/rios0rios0/upgrademe/internal/domain/entities"
)

const (
	logFileMaxSizeMB  = 10
	logFileMaxBackups = 3
	logFileMaxAgeDays = 28
)

// loadSettings reads the config file (explicit, discovered or none) and
// applies the global flag overrides on top of it.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")

	settings := entities.DefaultSettings()
	if configPath == "" {
		if found, err := entities.FindConfigFile(); err == nil {
			configPath = found
		}
	}
	if configPath != "" {
		loaded, err := entities.NewSettings(configPath)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}

	if backend, _ := cmd.Flags().GetString("backend"); backend != "" {
		settings.Backend = backend
	}
	if model, _ := cmd.Flags().GetString("model"); model != "" {
		settings.Local.Model = model
		settings.Hosted.Model = model
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	configureLogging(settings.Logging)
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}
	if configPath != "" {
		logger.Debugf("Using config file: %s", configPath)
	}
	return settings, nil
}

// configureLogging applies the logging section to the global logrus logger.
func configureLogging(cfg entities.LoggingSettings) {
	if cfg.Level != "" {
		level, err := logger.ParseLevel(cfg.Level)
		if err != nil {
			logger.Warnf("Invalid log level %q, keeping %s", cfg.Level, logger.GetLevel())
		} else if os.Getenv("DEBUG") != "true" {
			logger.SetLevel(level)
		}
	}

	if strings.EqualFold(cfg.Format, "json") {
		//nolint:exhaustruct // defaults are fine
		logger.SetFormatter(&logger.JSONFormatter{})
	}

	if cfg.File != "" {
		//nolint:exhaustruct // Compress and LocalTime keep their defaults
		logFile := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    logFileMaxSizeMB,
			MaxBackups: logFileMaxBackups,
			MaxAge:     logFileMaxAgeDays,
		}
		logger.SetOutput(io.MultiWriter(os.Stderr, logFile))
	}
}

// projectDir returns the absolute project directory from the first argument.
func projectDir(args []string) (string, error) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	return filepath.Abs(dir)
}
