// Package prompt asks the user yes/no questions on a terminal.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer asks a yes/no question and reports whether the answer was yes
type Confirmer func(message string) bool

// Always returns a Confirmer that answers every question with answer
func Always(answer bool) Confirmer {
	return func(string) bool { return answer }
}

// YesNo returns a Confirmer that writes the question to out and reads one
// line from in. Only "y" or "yes" count as yes; anything else, including a
// read error or EOF, is no.
func YesNo(in io.Reader, out io.Writer) Confirmer {
	reader := bufio.NewReader(in)
	return func(message string) bool {
		_, _ = fmt.Fprintf(out, "%s ", message)
		response, err := reader.ReadString('\n')
		if err != nil && response == "" {
			_, _ = fmt.Fprintln(out)
			return false
		}
		switch strings.ToLower(strings.TrimSpace(response)) {
		case "y", "yes":
			return true
		}
		return false
	}
}
