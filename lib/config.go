/*
 * Copyright 2022 Medicines Discovery Catapult
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *     http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package lib

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFlag = "config"

type BaseConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// InitializeConfig loads the config of a binary into targetStruct and sets the global log level.
//
// Config is read from a yml file at defaultPath unless the --config flag names another file, e.g.
// the api defaults to "./config/structure-api.yml" and a k8s config map with a structure-api.yml key
// can be mounted at $(pwd)/config. A missing file is logged and the defaults are used.
//
// Keys of defaultConfig that are absent from the file keep their default. Any key that viper knows
// about can be overridden by an uppercased env var with "." replaced by "_": PARSER_URL sets
// parser.url and PARSE_CACHE_BACKEND sets parse_cache.backend. Env vars with no matching key are
// ignored, so every overridable key needs a default.
//
// Binaries register their own flags at package level. They are parsed here together with --config,
// so flags must not be read before InitializeConfig returns.
func InitializeConfig(defaultPath string, defaultConfig map[string]interface{}, targetStruct interface{}) error {
	if pflag.Lookup(configFlag) == nil {
		pflag.String(configFlag, defaultPath, "The config file path.")
	}
	if !pflag.Parsed() {
		pflag.Parse()
	}
	if err := viper.BindPFlag(configFlag, pflag.Lookup(configFlag)); err != nil {
		return err
	}

	configFile, err := filepath.Abs(viper.GetString(configFlag))
	if err != nil {
		return err
	}

	for k, v := range defaultConfig {
		viper.SetDefault(k, v)
	}

	viper.SetConfigName(strings.TrimSuffix(filepath.Base(configFile), filepath.Ext(configFile)))
	viper.AddConfigPath(filepath.Dir(configFile))

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	err = viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		log.Warn().Str("config", configFile).Msg("config file not found, default settings applied")
	} else if err != nil {
		return err
	}

	if err := setLogLevel(); err != nil {
		return err
	}
	return viper.Unmarshal(targetStruct)
}

// setLogLevel applies log_level. An unset level leaves the global level alone.
func setLogLevel() error {
	var bc BaseConfig
	if err := viper.Unmarshal(&bc); err != nil {
		return err
	}
	if bc.LogLevel == "" {
		return nil
	}
	lvl, err := zerolog.ParseLevel(bc.LogLevel)
	if err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}
