// Package commands implements the karakeep CLI command tree.
package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/ahgraber/karakeep-client/pkg/karakeep"
	"github.com/ahgraber/karakeep-client/pkg/kkclient"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	NotAvailable = "N/A"

	yamlIndent = 2
)

// CreateClient builds an API client from the resolved configuration
// (flags, environment, config file).
func CreateClient() (karakeep.Client, error) {
	config := &karakeep.Config{
		APIKey:  viper.GetString("api_key"),
		BaseURL: viper.GetString("baseurl"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = newZapLogger()
	}

	client, err := kkclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// newZapLogger builds the debug logger backing --verbose output.
func newZapLogger() karakeep.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	base, err := cfg.Build()
	if err != nil {
		// Fall back to a no-op logger rather than failing the command.
		base = zap.NewNop()
	}

	return &zapAdapter{base: base}
}

// zapAdapter adapts *zap.Logger to karakeep.Logger.
type zapAdapter struct {
	base *zap.Logger
}

func (l *zapAdapter) Debug(msg string, fields map[string]interface{}) {
	l.base.Debug(msg, zapFields(fields)...)
}

func (l *zapAdapter) Info(msg string, fields map[string]interface{}) {
	l.base.Info(msg, zapFields(fields)...)
}

func (l *zapAdapter) Warn(msg string, fields map[string]interface{}) {
	l.base.Warn(msg, zapFields(fields)...)
}

func (l *zapAdapter) Error(msg string, fields map[string]interface{}) {
	l.base.Error(msg, zapFields(fields)...)
}

func zapFields(fields map[string]interface{}) []zap.Field {
	converted := make([]zap.Field, 0, len(fields))
	for key, value := range fields {
		converted = append(converted, zap.Any(key, value))
	}

	return converted
}

// StandardJSONRenderer creates a standard JSON encoder.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer creates a standard YAML encoder.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(yamlIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// stringOrNA renders an optional string for table output.
func stringOrNA(value *string) string {
	if value == nil || *value == "" {
		return NotAvailable
	}

	return *value
}
