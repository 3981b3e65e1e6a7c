package tui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PromptConfirm asks a yes/no question on out and reads the answer from in.
// Anything other than y/yes (case-insensitive) counts as no; so does EOF.
func PromptConfirm(in io.Reader, out io.Writer, message string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", message)

	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(response)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
