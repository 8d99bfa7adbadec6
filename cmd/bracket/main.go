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
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/analyzer"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/reader"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/reader/html"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/reader/text"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/structure"
)

type bracketConfig struct {
	lib.BaseConfig  `mapstructure:",squash"`
	analyzer.Config `mapstructure:",squash"`
}

type options struct {
	json  bool
	force bool
}

var (
	config    bracketConfig
	inputPath = pflag.String("input", "", "File to read instead of stdin.")
	htmlInput = pflag.Bool("html", false, "Read the input as html.")
	jsonOut   = pflag.Bool("json", false, "Print one json result per sentence.")
	force     = pflag.Bool("force", false, "Analyze lines that already contain brackets.")
)

func initConfig() {
	err := lib.InitializeConfig("./config/bracket.yml", map[string]interface{}{
		"log_level": "warn",
		"parser": map[string]interface{}{
			"url":        "",
			"timeout_ms": 5000,
		},
		"parse_cache": map[string]interface{}{
			"backend": "none",
		},
		"lexicon_file": "",
	}, &config)
	if err != nil {
		panic(err)
	}
}

func main() {
	initConfig()

	a, err := analyzer.NewFromConfig(config.Config)
	if err != nil {
		log.Fatal().Err(err).Send()
	}

	var in io.Reader = os.Stdin
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			log.Fatal().Err(err).Send()
		}
		defer f.Close()
		in = f
	}

	var client reader.Client = text.Reader{}
	if *htmlInput {
		client = html.Reader{}
	}

	out := bufio.NewWriter(os.Stdout)
	if err := run(a, client, in, out, options{json: *jsonOut, force: *force}); err != nil {
		log.Fatal().Err(err).Send()
	}
	if err := out.Flush(); err != nil {
		log.Fatal().Err(err).Send()
	}
}

// run analyzes every block read from r and writes one line per sentence to w.
func run(a *analyzer.Analyzer, client reader.Client, r io.Reader, w io.Writer, opts options) error {
	enc := json.NewEncoder(w)
	return client.ReadBlocksWithCallback(r, func(block *reader.Block) error {
		if !opts.force && structure.HasBrackets(block.Text) {
			log.Warn().Int("offset", block.Offset).Msg("input already bracketed, skipping")
			if opts.json {
				return nil
			}
			_, err := fmt.Fprintln(w, block.Text)
			return err
		}

		for _, sentence := range a.AnalyzeParagraph(block.Text).Sentences {
			if opts.json {
				if err := enc.Encode(sentence); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintln(w, sentence.AnalyzedText); err != nil {
				return err
			}
		}
		return nil
	})
}
