// SPDX-License-Identifier: MIT
// Package config loads YAML-driven defaults for simplifier tuning
// (epsilon, telemetry on/off), mirroring the corpus's only non-test
// third-party config path: gazed-vu's load.Shd, which unmarshals a
// YAML description into a plain struct via yaml.v3 and converts it
// into the package's own typed configuration.
package config

import (
	"fmt"

	"github.com/arcmesh/qemsimplify/quadric"
	"github.com/arcmesh/qemsimplify/simplify"
	"gopkg.in/yaml.v3"
)

// Options is the on-disk tuning configuration for a Simplify call.
type Options struct {
	// Epsilon is the singular-quadric detection threshold.
	// Zero or absent means "use the default".
	Epsilon float64 `yaml:"epsilon"`

	// Telemetry enables or disables the completion log line.
	Telemetry bool `yaml:"telemetry"`
}

// Default returns the same defaults simplify.Simplify uses when no
// configuration is supplied at all.
func Default() Options {
	return Options{
		Epsilon:   quadric.DefaultEpsilon,
		Telemetry: true,
	}
}

// Load parses a YAML document into Options. A zero or absent epsilon
// field falls back to quadric.DefaultEpsilon; an absent telemetry
// field defaults to true (the yaml.v3 zero value for an omitted bool
// key is false, so the field is explicitly re-defaulted after parse,
// matching load.Shd's pattern of filling gaps in the parsed struct
// rather than requiring every field in the document).
func Load(data []byte) (Options, error) {
	raw := struct {
		Epsilon   float64 `yaml:"epsilon"`
		Telemetry *bool   `yaml:"telemetry"`
	}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Options{}, fmt.Errorf("config.Load: yaml: %w", err)
	}

	opts := Default()
	if raw.Epsilon > 0 {
		opts.Epsilon = raw.Epsilon
	}
	if raw.Telemetry != nil {
		opts.Telemetry = *raw.Telemetry
	}
	return opts, nil
}

// SimplifyOptions converts Options into simplify.Option values ready
// to pass to simplify.Simplify.
func (o Options) SimplifyOptions() []simplify.Option {
	return []simplify.Option{
		simplify.WithEpsilon(o.Epsilon),
		simplify.WithTelemetry(o.Telemetry),
	}
}
