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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/cache"
)

const defaultTimeout = 5 * time.Second

type HttpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type parseRequest struct {
	Text string `json:"text"`
}

// Spacy talks to a spaCy-style parser service over http.
type Spacy struct {
	Url     string
	Timeout time.Duration
	Client  HttpClient
}

func NewSpacy(conf Config, client HttpClient) *Spacy {
	if client == nil {
		client = http.DefaultClient
	}
	timeout := time.Duration(conf.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Spacy{
		Url:     strings.TrimSuffix(conf.Url, "/"),
		Timeout: timeout,
		Client:  client,
	}
}

func (s *Spacy) Fetch(text string) (*cache.Lookup, error) {
	b, err := json.Marshal(parseRequest{Text: text})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Url+"/parse", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("parser responded with %d: %s", resp.StatusCode, body)
	}

	var lookup cache.Lookup
	if err := json.Unmarshal(body, &lookup); err != nil {
		return nil, err
	}
	return &lookup, nil
}

func (s *Spacy) Ready() bool {
	ctx, cancel := context.WithTimeout(context.Background(), s.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Url+"/health", nil)
	if err != nil {
		return false
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
