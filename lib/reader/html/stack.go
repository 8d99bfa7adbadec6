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
	"container/list"
	"fmt"
)

// htmlStack tracks open elements. Text is collected on the innermost block level
// element; inline elements (see inlineNodes) write into their enclosing block.
type htmlStack struct {
	*list.List
	disallowed      bool
	disallowedDepth int
	inline          bool
	inlineTag       *htmlTag
	inlineDepth     int
}

type htmlTag struct {
	name      string
	start     int
	children  int
	innerText []byte
	xpath     string
}

func (s *htmlStack) init() {
	if s.List == nil {
		s.List = list.New()
	}
}

func (s *htmlStack) push(tag *htmlTag) {
	s.init()

	if front := s.Front(); front != nil {
		front.Value.(*htmlTag).children++
	}

	if !s.inline && s.Front() != nil {
		if _, ok := inlineNodes[tag.name]; ok {
			s.inline = true
			s.inlineDepth = s.Len() + 1
			s.inlineTag = s.Front().Value.(*htmlTag)
		}
	}

	s.PushFront(tag)
	tag.xpath = s.xpath()

	if !s.disallowed {
		if _, ok := disallowedNodes[tag.name]; ok {
			s.disallowed = true
			s.disallowedDepth = s.Len()
		}
	}
}

func (s *htmlStack) collectText(text []byte) {
	s.init()

	front := s.Front()
	if front == nil || s.disallowed {
		return
	}
	tag := front.Value.(*htmlTag)
	if s.inline {
		tag = s.inlineTag
	}
	tag.innerText = append(tag.innerText, text...)
}

// pop removes the innermost element, passing it to callback unless it was inline.
func (s *htmlStack) pop(callback func(tag *htmlTag) error) error {
	s.init()

	e := s.Front()
	if e == nil {
		return nil
	}
	if s.disallowed && s.Len() == s.disallowedDepth {
		s.disallowed = false
		s.disallowedDepth = 0
	}
	inline := s.inline
	if s.inline && s.Len() == s.inlineDepth {
		s.inline = false
		s.inlineDepth = 0
		s.inlineTag = nil
	}
	tag := e.Value.(*htmlTag)

	s.Remove(e)
	if inline {
		return nil
	}
	return callback(tag)
}

func (s *htmlStack) xpath() string {
	path := "/"
	element := s.Back()
	if element == nil {
		return path
	}
	path += element.Value.(*htmlTag).name
	for element.Prev() != nil {
		element = element.Prev()
		path += fmt.Sprintf("/*[%d]", element.Next().Value.(*htmlTag).children)
	}
	return path
}
