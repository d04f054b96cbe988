package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
)

// applyEnvOverrides walks the config struct and replaces any field
// whose `env` tag names a set environment variable. Nested sections
// are visited recursively.
func applyEnvOverrides(section interface{}) error {
	val := reflect.ValueOf(section)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil
	}

	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if field.Kind() == reflect.Struct {
			if err := applyEnvOverrides(field.Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		name := typ.Field(i).Tag.Get("env")
		if name == "" {
			continue
		}
		raw, ok := os.LookupEnv(name)
		if !ok {
			continue
		}

		if err := setFromEnv(field, raw); err != nil {
			return fmt.Errorf("env var %s: %w", name, err)
		}
	}
	return nil
}

// setFromEnv converts an environment value to the field's type. The
// config only tags string and int fields.
func setFromEnv(field reflect.Value, raw string) error {
	if !field.CanSet() {
		return fmt.Errorf("field cannot be set")
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid integer %q: %w", raw, err)
		}
		field.SetInt(int64(n))
	default:
		return fmt.Errorf("unsupported field kind %s", field.Kind())
	}
	return nil
}
