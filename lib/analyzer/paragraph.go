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

package analyzer

import (
	"io"
	"strings"

	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/reader"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/text"
)

type SentenceResult struct {
	Result
	Index int    `json:"index"`
	Xpath string `json:"xpath,omitempty"`
}

type Full struct {
	Text         string `json:"text"`
	AnalyzedText string `json:"analyzed_text"`
}

type Paragraph struct {
	Sentences []SentenceResult `json:"sentences"`
	Full      Full             `json:"full"`
}

// AnalyzeParagraph splits a paragraph into sentences and analyzes each one.
// Sentences are numbered from 1 and their analyses joined with newlines.
func (a *Analyzer) AnalyzeParagraph(paragraph string) Paragraph {
	p := Paragraph{Sentences: []SentenceResult{}, Full: Full{Text: paragraph}}
	a.appendSentences(&p, paragraph, "")
	p.Full.AnalyzedText = joinAnalyzed(p.Sentences)
	return p
}

// AnalyzeDocument analyzes every block a reader finds in r as a paragraph. The
// full text is the blocks joined with newlines.
func (a *Analyzer) AnalyzeDocument(r io.Reader, client reader.Client) (Paragraph, error) {
	p := Paragraph{Sentences: []SentenceResult{}}
	var blocks []string
	err := client.ReadBlocksWithCallback(r, func(block *reader.Block) error {
		blocks = append(blocks, block.Text)
		a.appendSentences(&p, block.Text, block.Xpath)
		return nil
	})
	if err != nil {
		return Paragraph{}, err
	}
	p.Full.Text = strings.Join(blocks, "\n")
	p.Full.AnalyzedText = joinAnalyzed(p.Sentences)
	return p, nil
}

func (a *Analyzer) appendSentences(p *Paragraph, paragraph, xpath string) {
	for _, sentence := range text.SplitSentences(paragraph) {
		p.Sentences = append(p.Sentences, SentenceResult{
			Result: a.Analyze(sentence.Text),
			Index:  len(p.Sentences) + 1,
			Xpath:  xpath,
		})
	}
}

func joinAnalyzed(sentences []SentenceResult) string {
	analyzed := make([]string, len(sentences))
	for i, s := range sentences {
		analyzed[i] = s.AnalyzedText
	}
	return strings.Join(analyzed, "\n")
}
