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

package remote

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/cache"
)

type RedisConfig struct {
	Host string
	Port int
}

// NewRedisClient returns a cache backed by redis. Entries expire after ttl; zero
// means they never expire.
func NewRedisClient(conf RedisConfig, ttl time.Duration) cache.Client {
	return &redisClient{
		Client: redis.NewClient(&redis.Options{
			Addr: fmt.Sprintf("%s:%d", conf.Host, conf.Port)}),
		ttl: ttl,
	}
}

type redisClient struct {
	*redis.Client
	ttl time.Duration
}

func (r *redisClient) Ready() bool {
	return r.Ping().Err() == nil
}

func (r *redisClient) Get(key string) (*cache.Lookup, error) {
	b, err := r.Client.Get(key).Bytes()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var lookup cache.Lookup
	if err := json.Unmarshal(b, &lookup); err != nil {
		return nil, err
	}
	return &lookup, nil
}

func (r *redisClient) Set(key string, lookup *cache.Lookup) error {
	b, err := json.Marshal(lookup)
	if err != nil {
		return err
	}
	return r.Client.Set(key, b, r.ttl).Err()
}
