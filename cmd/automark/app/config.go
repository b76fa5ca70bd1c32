package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/automark/pkg/constants"
	"github.com/agentstation/automark/pkg/errors"
)

// Config holds the application configuration loaded from config files,
// environment variables and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Merge defaults
	Output            string
	Erase             bool
	Strict            bool
	SignedHemispheres bool
	RootFolder        string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
//  1. Command-line flags (applied later by UpdateFromFlags and per command)
//  2. Environment variables (AUTOMARK_ prefix)
//  3. .env files
//  4. Config file (configFile, or .automark.yaml in $HOME or the working directory)
//  5. Defaults
//
// A missing config file in the search path is not an error; an explicit
// configFile that cannot be read is.
func LoadConfig(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	if err := bindLogEnv(v); err != nil {
		return nil, err
	}

	if configFile == "" {
		configFile = v.GetString("config")
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("file", "cannot read "+configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.DefaultConfigName)

		// Read config file (ignore error if not found)
		_ = v.ReadInConfig()
	}

	return &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		Output:            v.GetString("output"),
		Erase:             v.GetBool("erase"),
		Strict:            v.GetBool("strict"),
		SignedHemispheres: v.GetBool("signed_hemispheres"),
		RootFolder:        v.GetString("root_folder"),

		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
		LogOutput: v.GetString("log_output"),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output", constants.DefaultOutputPath)
	v.SetDefault("root_folder", constants.DefaultRootFolder)
	v.SetDefault("erase", false)
	v.SetDefault("strict", false)
	v.SetDefault("signed_hemispheres", false)
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")
}

// bindLogEnv lets the unprefixed LOG_* variables shared with pkg/logging
// configure the CLI logger too. The prefixed form wins when both are set.
func bindLogEnv(v *viper.Viper) error {
	for _, key := range []string{"log_level", "log_format", "log_output"} {
		unprefixed := strings.ToUpper(key)
		if err := v.BindEnv(key, constants.EnvPrefix+"_"+unprefixed, unprefixed); err != nil {
			return errors.NewConfigError("env", "failed to bind "+unprefixed, err)
		}
	}
	if err := v.BindEnv("no_color", constants.EnvPrefix+"_NO_COLOR", "NO_COLOR"); err != nil {
		return errors.NewConfigError("env", "failed to bind NO_COLOR", err)
	}
	return nil
}

// UpdateFromFlags updates config values from parsed global flags. Only
// flags set on the command line are applied so that unset flags keep the
// values from files and environment.
func (c *Config) UpdateFromFlags(f globalFlags, changed func(string) bool) {
	if changed("verbose") {
		c.Verbose = f.verbose
	}
	if changed("quiet") {
		c.Quiet = f.quiet
	}
	if changed("no-color") {
		c.NoColor = f.noColor
	}
	if changed("format") {
		c.Format = f.format
	}
	if changed("log-level") {
		c.LogLevel = f.logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// Variables already present in the environment are never overwritten, so
// .env.local only fills what .env left unset.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}
