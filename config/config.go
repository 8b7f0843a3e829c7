// Package config binds the service configuration shared by instrumented
// services: flags, environment variables and the typed struct are generated
// from mapstructure tags so the three stay in sync.
package config

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/platform-mesh/traceware/context/keys"
)

func SetConfigInContext(ctx context.Context, config any) context.Context {
	return context.WithValue(ctx, keys.ConfigCtxKey, config)
}

func LoadConfigFromContext(ctx context.Context) any {
	return ctx.Value(keys.ConfigCtxKey)
}

// ServiceConfig carries everything an instrumented service needs at startup:
// the service name stamped onto request spans, log settings, the tracing
// collector target and the Sentry DSN.
type ServiceConfig struct {
	ServiceName string `mapstructure:"service-name"`
	Environment string `mapstructure:"environment"`
	Region      string `mapstructure:"region"`

	Log struct {
		Level  string `mapstructure:"log-level"`
		NoJson bool   `mapstructure:"no-json"`
	} `mapstructure:",squash"`

	Tracing struct {
		Enabled        bool   `mapstructure:"tracing-enabled"`
		Endpoint       string `mapstructure:"tracing-endpoint"`
		ServiceVersion string `mapstructure:"tracing-service-version"`
	} `mapstructure:",squash"`

	Sentry struct {
		Dsn string `mapstructure:"sentry-dsn"`
	} `mapstructure:",squash"`

	ShutdownTimeout time.Duration `mapstructure:"shutdown-timeout"`
}

func CommonFlags() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("common", pflag.ContinueOnError)

	flagSet.String("service-name", "", "Set the service name recorded on request spans")
	flagSet.String("environment", "local", "Set the environment")
	flagSet.String("region", "local", "Set the region")
	flagSet.String("log-level", "info", "Set the log level")
	flagSet.Bool("no-json", false, "Disable JSON logging")
	flagSet.Bool("tracing-enabled", false, "Enable exporting request spans to a collector")
	flagSet.String("tracing-endpoint", "", "Set the tracing collector endpoint as <domain>:<port>")
	flagSet.String("tracing-service-version", "0.0.0", "Set the service version reported with spans")
	flagSet.String("sentry-dsn", "", "Set the Sentry DSN")
	flagSet.Duration("shutdown-timeout", 1*time.Minute, "Set the shutdown timeout")

	return flagSet
}

// generateFlagSet generates a pflag.FlagSet from a struct based on its `mapstructure` tags.
func generateFlagSet(config any) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("generated", pflag.ContinueOnError)
	traverseStruct(reflect.ValueOf(config), flagSet, "")
	return flagSet
}

// traverseStruct recursively traverses a struct and adds flags to the FlagSet.
func traverseStruct(value reflect.Value, flagSet *pflag.FlagSet, prefix string) {
	if value.Kind() == reflect.Ptr {
		value = value.Elem()
	}

	if value.Kind() != reflect.Struct {
		return
	}

	typ := value.Type()
	for i := 0; i < value.NumField(); i++ {
		field := typ.Field(i)
		fieldValue := value.Field(i)

		tag := field.Tag.Get("mapstructure")
		if tag == "" || tag == "-" {
			continue
		}

		if fieldValue.Kind() == reflect.Struct {
			if tag == ",squash" {
				traverseStruct(fieldValue, flagSet, "")
			} else {
				traverseStruct(fieldValue, flagSet, prefix+tag+".")
			}
			continue
		}

		switch fieldValue.Kind() {
		case reflect.String:
			flagSet.String(prefix+tag, "", fmt.Sprintf("Set the %s", tag))
		case reflect.Int, reflect.Int64:
			if fieldValue.Type() == reflect.TypeOf(time.Duration(0)) {
				flagSet.Duration(prefix+tag, 0, fmt.Sprintf("Set the %s", tag))
			} else {
				flagSet.Int(prefix+tag, 0, fmt.Sprintf("Set the %s", tag))
			}
		case reflect.Bool:
			flagSet.Bool(prefix+tag, false, fmt.Sprintf("Set the %s", tag))
		}
	}
}

// NewDefaultConfig wires the common flags and environment binding into
// rootCmd and returns the viper instance plus the config struct that will be
// populated on command initialization.
func NewDefaultConfig(rootCmd *cobra.Command) (*viper.Viper, *ServiceConfig, error) {
	v := viper.NewWithOptions(
		viper.EnvKeyReplacer(strings.NewReplacer("-", "_")),
	)

	v.AutomaticEnv()

	flagSet := CommonFlags()

	err := v.BindPFlags(flagSet)
	rootCmd.PersistentFlags().AddFlagSet(flagSet)

	var cfg ServiceConfig
	cobra.OnInitialize(unmarshalIntoStruct(v, &cfg))

	return v, &cfg, err
}

// BindConfigToFlags generates flags for an arbitrary mapstructure-tagged
// config struct, binds them to viper and schedules unmarshalling on command
// initialization.
func BindConfigToFlags(v *viper.Viper, cmd *cobra.Command, config any) error {
	flagSet := generateFlagSet(config)
	err := v.BindPFlags(flagSet)
	if err != nil {
		return err
	}

	cmd.Flags().AddFlagSet(flagSet)

	cobra.OnInitialize(unmarshalIntoStruct(v, config))

	return nil
}

func unmarshalIntoStruct(v *viper.Viper, cfg any) func() {
	return func() {
		if err := v.Unmarshal(cfg); err != nil {
			panic(fmt.Errorf("failed to unmarshal config: %w", err))
		}
	}
}
