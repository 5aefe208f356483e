// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"os"
	"reflect"
	"strconv"

	"github.com/absmach/dealership/pkg/errors"
	"github.com/pelletier/go-toml"
	"github.com/spf13/cobra"
)

type filter struct {
	Offset string `toml:"offset"`
	Limit  string `toml:"limit"`
}

type config struct {
	Filter    filter `toml:"filter"`
	RawOutput string `toml:"raw_output"`
}

// Readable by all user groups but writeable by the user only.
const filePermission = 0o644

var (
	errReadFail            = errors.New("failed to read config file")
	errNoKey               = errors.New("no such key")
	errUnsupportedKeyValue = errors.New("unsupported data type for key")
	errWritingConfig       = errors.New("error in writing the updated config to file")
	errInvalidValue        = errors.New("invalid config value")
	defaultConfigPath      = "./config.toml"
)

func read(file string) (config, error) {
	c := config{}
	data, err := os.Open(file)
	if err != nil {
		return c, errors.Wrap(errReadFail, err)
	}
	defer data.Close()

	buf, err := io.ReadAll(data)
	if err != nil {
		return c, errors.Wrap(errReadFail, err)
	}

	if err := toml.Unmarshal(buf, &c); err != nil {
		return config{}, errors.Wrap(errReadFail, err)
	}

	return c, nil
}

// ParseConfig reads the config file, creating an empty one when missing,
// and applies the stored filter and output settings. Flags explicitly set on
// cmd take precedence over the stored values.
func ParseConfig(cmd *cobra.Command) error {
	if ConfigPath == "" {
		ConfigPath = defaultConfigPath
	}

	_, err := os.Stat(ConfigPath)
	switch {
	// If the file does not exist, create it. Filters stay unset so the
	// flag defaults apply until changed with the config command.
	case os.IsNotExist(err):
		buf, err := toml.Marshal(config{})
		if err != nil {
			return err
		}
		if err = os.WriteFile(ConfigPath, buf, filePermission); err != nil {
			return errors.Wrap(errWritingConfig, err)
		}
	case err != nil:
		return err
	}

	config, err := read(ConfigPath)
	if err != nil {
		return err
	}

	if config.Filter.Offset != "" && !flagChanged(cmd, "offset") {
		offset, err := strconv.ParseUint(config.Filter.Offset, 10, 64)
		if err != nil {
			return errors.Wrap(errInvalidValue, err)
		}
		Offset = offset
	}

	if config.Filter.Limit != "" && !flagChanged(cmd, "limit") {
		limit, err := strconv.ParseUint(config.Filter.Limit, 10, 64)
		if err != nil {
			return errors.Wrap(errInvalidValue, err)
		}
		Limit = limit
	}

	if config.RawOutput != "" && !flagChanged(cmd, "raw") {
		rawOutput, err := strconv.ParseBool(config.RawOutput)
		if err != nil {
			return errors.Wrap(errInvalidValue, err)
		}
		RawOutput = rawOutput
	}

	return nil
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil {
		return false
	}
	f := cmd.Flags().Lookup(name)

	return f != nil && f.Changed
}

// NewConfigCmd returns the command storing params in the local TOML file.
func NewConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config <key> <value>",
		Short: "CLI local config",
		Long:  "Local param storage to prevent repetitive passing of keys",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			if err := setConfigValue(args[0], args[1]); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logOKCmd(*cmd)
		},
	}
}

func setConfigValue(key, value string) error {
	config, err := read(ConfigPath)
	if err != nil {
		return err
	}

	configKeyToField := map[string]interface{}{
		"offset":     &config.Filter.Offset,
		"limit":      &config.Filter.Limit,
		"raw_output": &config.RawOutput,
	}

	fieldPtr, ok := configKeyToField[key]
	if !ok {
		return errNoKey
	}

	switch key {
	case "offset", "limit":
		if _, err := strconv.ParseUint(value, 10, 64); err != nil {
			return errors.Wrap(errInvalidValue, err)
		}
	case "raw_output":
		if _, err := strconv.ParseBool(value); err != nil {
			return errors.Wrap(errInvalidValue, err)
		}
	}

	fieldValue := reflect.ValueOf(fieldPtr).Elem()

	switch fieldValue.Kind() {
	case reflect.String:
		fieldValue.SetString(value)
	default:
		return errUnsupportedKeyValue
	}

	buf, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	if err = os.WriteFile(ConfigPath, buf, filePermission); err != nil {
		return errors.Wrap(errWritingConfig, err)
	}

	return nil
}
