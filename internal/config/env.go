package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// LoadEnv loads environment variables into the config struct.
// It uses the `env` struct tags to determine which variables to load.
func LoadEnv(config *AppConfig) error {
	sections := []interface{}{
		&config.App,
		&config.Database,
		&config.Server,
		&config.Logging,
		&config.CORS,
		&config.PasswordHash,
		&config.Frontend,
	}

	for _, section := range sections {
		if err := processStructEnv(section); err != nil {
			return err
		}
	}

	return nil
}

// processStructEnv processes environment variables for a single config section
func processStructEnv(s interface{}) error {
	val := reflect.ValueOf(s).Elem()
	typ := val.Type()

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		fieldVal := val.Field(i)

		if !fieldVal.CanSet() {
			continue
		}

		envName := field.Tag.Get("env")
		if envName == "" {
			continue
		}

		envValue, exists := os.LookupEnv(envName)
		if !exists {
			continue
		}

		if err := setField(fieldVal, field.Name, envValue); err != nil {
			return err
		}
	}

	return nil
}

// setField sets a struct field from a string environment value
func setField(fieldVal reflect.Value, name, envValue string) error {
	switch fieldVal.Kind() {
	case reflect.String:
		fieldVal.SetString(envValue)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		// time.Duration fields accept values like "30s" or "5m"
		if fieldVal.Type() == reflect.TypeOf(time.Duration(0)) {
			d, err := time.ParseDuration(envValue)
			if err != nil {
				return fmt.Errorf("invalid duration for %s: %w", name, err)
			}
			fieldVal.SetInt(int64(d))
			break
		}
		n, err := strconv.ParseInt(envValue, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %w", name, err)
		}
		fieldVal.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(envValue, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid unsigned integer for %s: %w", name, err)
		}
		fieldVal.SetUint(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(envValue)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %w", name, err)
		}
		fieldVal.SetBool(b)

	case reflect.Slice:
		if fieldVal.Type().Elem().Kind() == reflect.String {
			parts := strings.Split(envValue, ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			fieldVal.Set(reflect.ValueOf(parts))
		}

	default:
		return fmt.Errorf("unsupported config field type for %s", name)
	}

	return nil
}
