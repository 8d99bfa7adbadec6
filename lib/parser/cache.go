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

package parser

import (
	"fmt"
	"time"

	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/cache"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/cache/local"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/cache/remote"
)

type CacheConfig struct {
	Backend    cache.Type
	TtlSeconds int `mapstructure:"ttl_seconds"`
	Size       int
}

// NewCache returns the configured parse cache, or nil for the none backend.
func NewCache(conf CacheConfig, redisConf remote.RedisConfig, esConf remote.ElasticsearchConfig) (cache.Client, error) {
	switch conf.Backend {
	case cache.None, "":
		return nil, nil
	case cache.Local:
		return local.New(conf.Size), nil
	case cache.Redis:
		return remote.NewRedisClient(redisConf, time.Duration(conf.TtlSeconds)*time.Second), nil
	case cache.Elasticsearch:
		return remote.NewElasticsearchClient(esConf)
	default:
		return nil, fmt.Errorf("unsupported parse cache backend %q", conf.Backend)
	}
}
