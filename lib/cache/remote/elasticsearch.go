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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/elastic/go-elasticsearch/v7"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/cache"
)

type ElasticsearchConfig struct {
	Host  string
	Port  int
	Index string
}

type esGetResponse struct {
	Found  bool         `json:"found"`
	Source cache.Lookup `json:"_source"`
}

func NewElasticsearchClient(conf ElasticsearchConfig) (cache.Client, error) {
	c, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{fmt.Sprintf("http://%s:%d", conf.Host, conf.Port)},
	})
	if err != nil {
		return nil, err
	}
	return &esClient{
		Client: c,
		index:  conf.Index,
	}, nil
}

type esClient struct {
	*elasticsearch.Client
	index string
}

func (e *esClient) Ready() bool {
	res, err := e.Info()
	if err != nil {
		return false
	}
	defer res.Body.Close()
	return res.StatusCode == http.StatusOK
}

func (e *esClient) Get(key string) (*cache.Lookup, error) {
	res, err := e.Client.Get(e.index, key)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, nil
	} else if res.IsError() {
		return nil, errors.New(res.String())
	}

	var esresponse esGetResponse
	if err := json.NewDecoder(res.Body).Decode(&esresponse); err != nil {
		return nil, err
	}
	if !esresponse.Found {
		return nil, nil
	}
	return &esresponse.Source, nil
}

func (e *esClient) Set(key string, lookup *cache.Lookup) error {
	b, err := json.Marshal(lookup)
	if err != nil {
		return err
	}

	res, err := e.Index(e.index, bytes.NewReader(b), e.Index.WithDocumentID(key))
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return errors.New(res.String())
	}
	return nil
}
