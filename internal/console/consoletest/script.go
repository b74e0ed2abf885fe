// Package consoletest provides a scripted console.Port for tests.
package consoletest

import (
	"fmt"
	"strings"

	"github.com/fjod/go_cart/till/internal/console"
)

// Script feeds fixed tokens and records every printed line.
// Prompts are recorded separately so Output holds only what Println wrote.
type Script struct {
	tokens  []string
	Reads   int
	Prompts []string
	Output  []string
}

func NewScript(tokens ...string) *Script {
	return &Script{tokens: tokens}
}

func (s *Script) ReadToken() (string, error) {
	if s.Reads >= len(s.tokens) {
		return "", console.ErrInputClosed
	}
	token := s.tokens[s.Reads]
	s.Reads++
	return strings.TrimSpace(token), nil
}

func (s *Script) Prompt(text string) {
	s.Prompts = append(s.Prompts, text)
}

func (s *Script) Println(a ...any) {
	line := strings.TrimSuffix(fmt.Sprintln(a...), "\n")
	s.Output = append(s.Output, line)
}

// Remaining reports how many scripted tokens were never read.
func (s *Script) Remaining() int {
	return len(s.tokens) - s.Reads
}
