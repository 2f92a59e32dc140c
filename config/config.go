package config

import (
	"flag"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Configuration specifies the options shared by the command line tools
type Configuration struct {
	Log     Log
	Inspect Inspect
}

// Log specifies what the tools report while they run
type Log struct {
	Verbose bool
	Trace   bool
}

// Inspect specifies what the inspect tool prints
type Inspect struct {
	Table bool
}

// Parse all configuration.
//
// The precedence is:
//   command line flags > environment > configuration file
//
// The common flags are registered on fs before args are parsed.
func Parse(fs *flag.FlagSet, args []string) (Configuration, error) {
	config := Configuration{}
	configFile := findConfigFile(args)
	if err := parseConfigFile(configFile, &config); err != nil {
		return config, errors.Wrap(err, configFile)
	}

	setupFlags(fs, &config)
	if err := fs.Parse(args); err != nil {
		return config, errors.Wrap(err, "")
	}

	if err := setUnsetFlagsFromEnv(fs); err != nil {
		return config, errors.Wrap(err, "")
	}
	return config, nil
}

// We want to parse the flags after we've read in the config file so that they
// take precedence, so we're going to extract the config file flag directly.
func findConfigFile(args []string) string {
	configRx := regexp.MustCompile("^--?config(=(.*))?$")
	for index, arg := range args {
		match := configRx.FindStringSubmatch(arg)
		if match == nil {
			continue
		}
		if match[2] != "" {
			return match[2]
		}
		if len(args) > (index + 1) {
			return args[index+1]
		}
	}
	return envValueForFlag("config")
}

func parseConfigFile(configFile string, config *Configuration) error {
	if configFile == "" {
		return nil
	}
	_, err := toml.DecodeFile(configFile, config)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func setUnsetFlagsFromEnv(fs *flag.FlagSet) error {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	var err error
	fs.VisitAll(func(f *flag.Flag) {
		if set[f.Name] || err != nil {
			return
		}
		if val := envValueForFlag(f.Name); val != "" {
			err = fs.Set(f.Name, val)
		}
	})
	return err
}

func envValueForFlag(name string) string {
	key := "ARITH_" + strings.ToUpper(strings.Replace(name, "-", "_", -1))
	return os.Getenv(key)
}
