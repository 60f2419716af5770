package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects configuration layers in priority order. Later layers
// override earlier ones when merged; load errors are accumulated and reported
// by build.
type configBuilder struct {
	layers []*StructuredConfig
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{layers: make([]*StructuredConfig, 0, 4)}
}

func (b *configBuilder) fail(err error) *configBuilder {
	b.err = errors.Join(b.err, err)
	return b
}

func (b *configBuilder) push(cfg *StructuredConfig) *configBuilder {
	b.layers = append(b.layers, cfg)
	return b
}

func (b *configBuilder) withDotEnv() *configBuilder {
	if err := loadDotEnv(dotEnvFile); err != nil {
		return b.fail(err)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	var fromEnv StructuredConfig
	if err := parseEnv(&fromEnv); err != nil {
		return b.fail(err)
	}
	return b.push(&fromEnv)
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.push(ParseFlags())
}

// withJSON loads the file named by the last layer that mentions one and
// inserts it at the bottom, so env and flags still win over it.
func (b *configBuilder) withJSON() *configBuilder {
	path := ""
	for _, layer := range b.layers {
		if layer.JSONFilePath != "" {
			path = layer.JSONFilePath
		}
	}
	if path == "" {
		return b
	}

	fromFile, err := parseJSON(path)
	if err != nil {
		return b.fail(err)
	}

	b.layers = append([]*StructuredConfig{fromFile}, b.layers...)
	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("config: loading sources: %w", b.err)
	}

	merged := &StructuredConfig{}
	for _, layer := range b.layers {
		if err := mergo.Merge(merged, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("config: merging sources: %w", err)
		}
	}

	if err := merged.applyDefaults(); err != nil {
		return nil, err
	}

	return merged, merged.validate()
}
