package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	uniquelines "github.com/CHUKEPC/unique-lines"
)

// options holds the settings shared by the run and batch commands.
// Values come from the config file when --config is given; flags set
// on the command line override them.
type options struct {
	Force           bool   `yaml:"force"`
	Progress        bool   `yaml:"progress"`
	Workers         int    `yaml:"workers"`
	ReadBufferSize  int    `yaml:"read_buffer_size"`
	WriteBufferSize int    `yaml:"write_buffer_size"`
	Report          string `yaml:"report"`
}

func defaultOptions() options {
	return options{
		Workers: runtime.NumCPU(),
	}
}

// loadOptions reads the YAML config named by the persistent --config flag
// and expands ${VAR} environment variables before parsing.
func loadOptions(cmd *cobra.Command) (options, error) {
	opts := defaultOptions()

	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return opts, err
	}
	if path == "" {
		return opts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("read config file: %w", err)
	}
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &opts); err != nil {
		return opts, fmt.Errorf("parse config yaml: %w", err)
	}
	return opts, nil
}

func (o options) libConfig() *uniquelines.Config {
	return &uniquelines.Config{
		ReadBufferSize:  o.ReadBufferSize,
		WriteBufferSize: o.WriteBufferSize,
		NumWorkers:      o.Workers,
	}
}
