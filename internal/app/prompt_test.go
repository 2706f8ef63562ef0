package app

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk_InOrder(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("vacancies.csv\r\nData Engineer\n"))

	var out bytes.Buffer

	file, err := Ask(in, &out, PromptFile)
	require.NoError(t, err)

	title, err := Ask(in, &out, PromptTitle)
	require.NoError(t, err)

	assert.Equal(t, "vacancies.csv", file)
	assert.Equal(t, "Data Engineer", title)
	assert.Equal(t, PromptFile+PromptTitle, out.String())
}

func TestAsk_LastLineWithoutNewline(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("Go"))

	answer, err := Ask(in, &bytes.Buffer{}, PromptTitle)
	require.NoError(t, err)
	assert.Equal(t, "Go", answer)
}

func TestAsk_EOF(t *testing.T) {
	in := bufio.NewReader(strings.NewReader(""))

	_, err := Ask(in, &bytes.Buffer{}, PromptFile)
	assert.ErrorIs(t, err, ErrNoAnswer)
}
