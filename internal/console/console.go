package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Asker answers one user question against fixed grounding. Satisfied by
// *chat.Session.
type Asker interface {
	Ask(ctx context.Context, question string) (string, error)
	Clear()
}

// UI runs the interactive loop over injected reader/writer so tests can
// script a whole conversation.
type UI struct {
	in      io.Reader
	out     io.Writer
	scanner *bufio.Scanner
}

// New creates a UI reading from stdin and writing to stdout.
func New() *UI {
	return NewWithStreams(os.Stdin, os.Stdout)
}

// NewWithStreams creates a UI with custom input/output.
func NewWithStreams(in io.Reader, out io.Writer) *UI {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &UI{in: in, out: out, scanner: bufio.NewScanner(in)}
}

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	promptColor = color.New(color.FgGreen)
	warnColor   = color.New(color.FgYellow)
)

// ReadURL prompts for a website URL until a non-empty line arrives. An EOF
// returns io.EOF so the caller can exit cleanly.
func (u *UI) ReadURL() (string, error) {
	for {
		promptColor.Fprint(u.out, "Enter website URL: ")
		line, err := u.readLine()
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		warnColor.Fprintln(u.out, "Please enter a URL.")
	}
}

// Welcome prints the session banner with the loaded page title.
func (u *UI) Welcome(pageTitle string) {
	rule := strings.Repeat("=", 70)
	fmt.Fprintln(u.out)
	headerColor.Fprintln(u.out, rule)
	headerColor.Fprintln(u.out, "WEBSITE CONTENT CHATBOT")
	headerColor.Fprintln(u.out, rule)
	fmt.Fprintf(u.out, "\nLoaded page: %s\n", pageTitle)
	fmt.Fprintln(u.out, "\nCommands:")
	fmt.Fprintln(u.out, "  - Type your question and press Enter")
	fmt.Fprintln(u.out, "  - 'clear' resets the conversation history")
	fmt.Fprintln(u.out, "  - 'exit' or 'quit' ends the session")
	fmt.Fprintln(u.out)
}

// Run drives the question loop until exit/quit or EOF. Answering errors are
// reported to the user and the loop continues; only I/O errors end it.
func (u *UI) Run(ctx context.Context, bot Asker) error {
	for {
		promptColor.Fprint(u.out, "Your question: ")
		line, err := u.readLine()
		if err != nil {
			if err == io.EOF {
				fmt.Fprintln(u.out, "\nGoodbye!")
				return nil
			}
			return err
		}
		switch strings.ToLower(line) {
		case "exit", "quit":
			fmt.Fprintln(u.out, "Goodbye!")
			return nil
		case "clear":
			bot.Clear()
			fmt.Fprintln(u.out, "Conversation history cleared.")
			continue
		case "":
			warnColor.Fprintln(u.out, "Please enter a question.")
			continue
		}

		answer, err := bot.Ask(ctx, line)
		if err != nil {
			warnColor.Fprintf(u.out, "Error generating response: %v\n", err)
			continue
		}
		fmt.Fprintf(u.out, "\n%s\n\n", answer)
	}
}

func (u *UI) readLine() (string, error) {
	if !u.scanner.Scan() {
		if err := u.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(u.scanner.Text()), nil
}
