package config

import "flag"

func setupFlags(fs *flag.FlagSet, config *Configuration) {
	_ = fs.String("config", "", "The path to the configuration file")

	// Log configuration
	fs.BoolVar(&config.Log.Verbose, "verbose", config.Log.Verbose, "Log a summary of the coding")
	fs.BoolVar(&config.Log.Trace, "trace", config.Log.Trace, "Log every interval, narrowing step and chunk")

	// Inspect configuration
	fs.BoolVar(&config.Inspect.Table, "table", config.Inspect.Table, "Print the interval table")
}
