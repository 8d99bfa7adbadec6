package text

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.mdcatapult.io/informatics/software-engineering/sentence-structure/lib/reader"
)

func TestReadBlocks(t *testing.T) {
	var blocks []reader.Block
	err := Reader{}.ReadBlocksWithCallback(strings.NewReader("I run.\nShe walks home.\n"), func(b *reader.Block) error {
		blocks = append(blocks, *b)
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []reader.Block{
		{Text: "I run.", Offset: 0},
		{Text: "She walks home.", Offset: 7},
	}, blocks)
}

func TestReadBlocks_StopsEarly(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	err := Reader{}.ReadBlocksWithCallback(strings.NewReader("a\nb\nc\n"), func(b *reader.Block) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestReadBlocks_ChannelCloses(t *testing.T) {
	var values []reader.Value
	for v := range ReadBlocks(strings.NewReader("")) {
		values = append(values, v)
	}
	assert.Len(t, values, 1)
}
