package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompt texts, asked in this order.
const (
	PromptFile  = "Введите название файла: "
	PromptTitle = "Введите название профессии: "
)

// ErrNoAnswer is returned when input ends before an answer is given.
var ErrNoAnswer = errors.New("no answer on input")

// Ask writes question to w and returns the next line of r without its line ending.
func Ask(r *bufio.Reader, w io.Writer, question string) (string, error) {
	if _, err := io.WriteString(w, question); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := r.ReadString('\n')
	if errors.Is(err, io.EOF) && line == "" {
		return "", fmt.Errorf("%w: %s", ErrNoAnswer, strings.TrimSpace(question))
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
