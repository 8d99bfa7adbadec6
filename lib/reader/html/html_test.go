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
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/reader"
)

func TestHtmlToText(t *testing.T) {
	tests := []struct {
		name string
		html string
		want []reader.Value
	}{
		{
			name: "empty body",
			html: "",
			want: []reader.Value{{Err: io.EOF}},
		},
		{
			name: "includes break",
			html: "  <body>  x<sup>2</sup> <strike>hello</strike><br/>dave</body>",
			want: wrapBlocks(reader.Block{Text: "x2 hello dave", Offset: 8, Xpath: "/body"}),
		},
		{
			name: "only sends blocks at block level nodes",
			html: "<p>acetyl<emph>car</emph>nitine</p>",
			want: wrapBlocks(reader.Block{Text: "acetylcarnitine", Offset: 3, Xpath: "/p"}),
		},
		{
			name: "siblings",
			html: "<div><p>One.</p><p>Two <b>bold</b> words.</p></div>",
			want: wrapBlocks(
				reader.Block{Text: "One.", Offset: 8, Xpath: "/div/*[1]"},
				reader.Block{Text: "Two bold words.", Offset: 19, Xpath: "/div/*[2]"},
			),
		},
		{
			name: "ignores scripts",
			html: "<p>Hi.<script>var x;</script></p>",
			want: wrapBlocks(reader.Block{Text: "Hi.", Offset: 3, Xpath: "/p"}),
		},
		{
			name: "void break",
			html: "<p>Line one<br>line two</p>",
			want: wrapBlocks(reader.Block{Text: "Line one line two", Offset: 3, Xpath: "/p"}),
		},
		{
			name: "flushes unclosed elements",
			html: "<p>Unclosed",
			want: wrapBlocks(reader.Block{Text: "Unclosed", Offset: 3, Xpath: "/p"}),
		},
		{
			name: "bare text",
			html: "No markup at all.",
			want: wrapBlocks(reader.Block{Text: "No markup at all.", Offset: 0, Xpath: "/"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []reader.Value
			for val := range ReadBlocks(bytes.NewBufferString(tt.html)) {
				got = append(got, val)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadBlocksWithCallback(t *testing.T) {
	var texts []string
	err := Reader{}.ReadBlocksWithCallback(bytes.NewBufferString("<p>A.</p><p>B.</p>"), func(b *reader.Block) error {
		texts = append(texts, b.Text)
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"A.", "B."}, texts)
}

func wrapBlocks(blocks ...reader.Block) []reader.Value {
	values := make([]reader.Value, 0, len(blocks)+1)
	for i := range blocks {
		values = append(values, reader.Value{Block: &blocks[i]})
	}
	return append(values, reader.Value{Err: io.EOF})
}
