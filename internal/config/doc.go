// Package config holds the run configuration: defaults, an optional YAML or
// JSON file, and the helpers the command line uses to parse flag values.
package config
