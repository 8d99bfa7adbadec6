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

package reader

import (
	"io"
)

// Block is a run of text read from a document, with the byte offset it starts at
// in the source and, for markup, the xpath of the element it came from.
type Block struct {
	Text   string
	Offset int
	Xpath  string
}

type Client interface {
	ReadBlocks(r io.Reader) <-chan Value
	ReadBlocksWithCallback(r io.Reader, onBlock func(*Block) error) error
}

// Value is sent on a block channel. The final value carries io.EOF or the read
// error, after which the channel is closed.
type Value struct {
	Block *Block
	Err   error
}

func ReadChannelWithCallback(values <-chan Value, callback func(block *Block) error) error {
	defer drain(values)
	for value := range values {
		if value.Err == io.EOF {
			break
		} else if value.Err != nil {
			return value.Err
		}
		if err := callback(value.Block); err != nil {
			return err
		}
	}
	return nil
}

// drain lets the producing goroutine run to completion when we stop early.
func drain(values <-chan Value) {
	go func() {
		for range values {
		}
	}()
}
