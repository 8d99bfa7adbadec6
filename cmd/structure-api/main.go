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

package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/analyzer"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/metrics"
)

// config structure
type structureAPIConfig struct {
	lib.BaseConfig  `mapstructure:",squash"`
	analyzer.Config `mapstructure:",squash"`
	Server          struct {
		HttpPort    int      `mapstructure:"http_port"`
		CorsOrigins []string `mapstructure:"cors_origins"`
	}
}

var config structureAPIConfig

func initConfig() {
	// Set default config values
	err := lib.InitializeConfig("./config/structure-api.yml", map[string]interface{}{
		"log_level": "info",
		"server": map[string]interface{}{
			"http_port":    8080,
			"cors_origins": []string{"*"},
		},
		"parser": map[string]interface{}{
			"url":        "",
			"timeout_ms": 5000,
		},
		"parse_cache": map[string]interface{}{
			"backend":     "local",
			"ttl_seconds": 86400,
			"size":        10000,
		},
		"redis": map[string]interface{}{
			"host": "localhost",
			"port": 6379,
		},
		"elasticsearch": map[string]interface{}{
			"host":  "localhost",
			"port":  9200,
			"index": "parses",
		},
		"lexicon_file": "",
	}, &config)
	if err != nil {
		panic(err)
	}
}

func main() {
	initConfig()

	m := metrics.New()
	a, err := analyzer.NewFromConfig(config.Config, analyzer.WithObserver(m))
	if err != nil {
		log.Fatal().Err(err).Send()
	}
	// probe the parser now rather than on the first request
	log.Info().Str("extractor", a.Extractor()).Msg("analyzer ready")

	r := gin.New()
	r.Use(lib.RequestId, gin.LoggerWithFormatter(lib.JsonLogFormatter), gin.Recovery(), corsMiddleware(config.Server.CorsOrigins))

	s := server{controller: controller{analyzer: a}, metrics: m.Handler()}
	s.RegisterRoutes(r)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Server.HttpPort),
		Handler: r,
	}
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Send()
		}
	}()
	lib.HandleInterrupt(srv.Shutdown)
}
