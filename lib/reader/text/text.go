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

package text

import (
	"bufio"
	"io"

	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/reader"
)

// Reader sends one block per line.
type Reader struct{}

func (Reader) ReadBlocks(r io.Reader) <-chan reader.Value {
	return ReadBlocks(r)
}

func (Reader) ReadBlocksWithCallback(r io.Reader, onBlock func(*reader.Block) error) error {
	return reader.ReadChannelWithCallback(ReadBlocks(r), onBlock)
}

func ReadBlocks(r io.Reader) <-chan reader.Value {
	blocks := make(chan reader.Value)
	go readLines(r, blocks)
	return blocks
}

func readLines(r io.Reader, values chan reader.Value) {
	defer close(values)

	scanner := bufio.NewScanner(r)
	offset := 0
	for scanner.Scan() {
		values <- reader.Value{
			Block: &reader.Block{
				Text:   scanner.Text(),
				Offset: offset,
			},
		}
		offset += len(scanner.Bytes()) + 1 // +1 for newline character
	}

	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	values <- reader.Value{Err: err}
}
