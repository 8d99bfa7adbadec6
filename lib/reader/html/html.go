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

package html

import (
	"io"
	"strings"

	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/reader"
	"golang.org/x/net/html"
)

var disallowedNodes = map[string]struct{}{
	"area":     {},
	"audio":    {},
	"head":     {},
	"link":     {},
	"meta":     {},
	"noscript": {},
	"script":   {},
	"source":   {},
	"style":    {},
	"input":    {},
	"textarea": {},
	"title":    {},
	"video":    {},
}

// elements that never have an end tag
var voidNodes = map[string]struct{}{
	"area":   {},
	"base":   {},
	"br":     {},
	"col":    {},
	"embed":  {},
	"hr":     {},
	"img":    {},
	"input":  {},
	"link":   {},
	"meta":   {},
	"source": {},
	"track":  {},
	"wbr":    {},
}

var inlineNodes = map[string]struct{}{
	"span":   {},
	"sub":    {},
	"sup":    {},
	"b":      {},
	"del":    {},
	"em":     {},
	"i":      {},
	"ins":    {},
	"mark":   {},
	"q":      {},
	"s":      {},
	"strike": {},
	"strong": {},
	"u":      {},
	"big":    {},
	"small":  {},
	"a":      {},
	"emph":   {},
}

// Reader sends one block per element holding text, with whitespace collapsed.
type Reader struct{}

func (Reader) ReadBlocks(r io.Reader) <-chan reader.Value {
	return ReadBlocks(r)
}

func (Reader) ReadBlocksWithCallback(r io.Reader, onBlock func(*reader.Block) error) error {
	return reader.ReadChannelWithCallback(ReadBlocks(r), onBlock)
}

func ReadBlocks(r io.Reader) <-chan reader.Value {
	blocks := make(chan reader.Value)
	go htmlToText(r, blocks)
	return blocks
}

// htmlToText walks the html tokens keeping a stack of open elements so that we know
// whether text should be kept and which block it belongs to. A block is sent when
// its element closes. Elements left open at the end of input are flushed.
func htmlToText(r io.Reader, blocks chan reader.Value) {
	defer close(blocks)

	tokenizer := html.NewTokenizer(r)
	var position int
	var stack htmlStack

	send := func(tag *htmlTag) error {
		text := strings.Join(strings.Fields(string(tag.innerText)), " ")
		if text != "" {
			blocks <- reader.Value{
				Block: &reader.Block{
					Text:   text,
					Offset: tag.start,
					Xpath:  tag.xpath,
				},
			}
		}
		return nil
	}

	for {
		token := tokenizer.Next()
		switch token {
		case html.ErrorToken:
			// The tokenizer returns io.EOF when finished.
			for stack.List != nil && stack.Len() > 0 {
				_ = stack.pop(send)
			}
			blocks <- reader.Value{Err: tokenizer.Err()}
			return
		case html.TextToken:
			// Must read this first. Other read methods mutate the current token.
			start := position
			position += len(tokenizer.Raw())

			text := tokenizer.Text()
			if stack.List == nil || stack.Len() == 0 {
				_ = send(&htmlTag{start: start, xpath: "/", innerText: text})
				continue
			}
			stack.collectText(text)
		case html.StartTagToken:
			// Must read this first. Other read methods mutate the current token.
			raw := tokenizer.Raw()
			position += len(raw)

			tn, _ := tokenizer.TagName()
			name := string(tn)
			if _, ok := voidNodes[name]; ok {
				if name == "br" {
					stack.collectText([]byte{'\n'})
				}
				continue
			}
			stack.push(&htmlTag{name: name, start: position})
		case html.EndTagToken:
			raw := tokenizer.Raw()
			if err := stack.pop(send); err != nil {
				blocks <- reader.Value{Err: err}
				return
			}
			position += len(raw)
		case html.SelfClosingTagToken:
			raw := tokenizer.Raw()
			tn, _ := tokenizer.TagName()
			if string(tn) == "br" {
				stack.collectText([]byte{'\n'})
			}
			position += len(raw)
		default:
			position += len(tokenizer.Raw())
		}
	}
}
