package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	// Keep test output free of ANSI escapes.
	color.NoColor = true
}

type scriptedBot struct {
	questions []string
	cleared   int
	err       error
}

func (b *scriptedBot) Ask(_ context.Context, q string) (string, error) {
	b.questions = append(b.questions, q)
	if b.err != nil {
		return "", b.err
	}
	return "answer to " + q, nil
}

func (b *scriptedBot) Clear() { b.cleared++ }

func TestRun_QuestionAnswerLoop(t *testing.T) {
	var out bytes.Buffer
	ui := NewWithStreams(strings.NewReader("what is this?\nexit\n"), &out)
	bot := &scriptedBot{}

	if err := ui.Run(context.Background(), bot); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bot.questions) != 1 || bot.questions[0] != "what is this?" {
		t.Fatalf("unexpected questions: %v", bot.questions)
	}
	if !strings.Contains(out.String(), "answer to what is this?") {
		t.Fatalf("answer not printed: %q", out.String())
	}
	if !strings.Contains(out.String(), "Goodbye!") {
		t.Fatalf("missing farewell: %q", out.String())
	}
}

func TestRun_CommandsAndBlankInput(t *testing.T) {
	var out bytes.Buffer
	ui := NewWithStreams(strings.NewReader("\nclear\nQUIT\n"), &out)
	bot := &scriptedBot{}

	if err := ui.Run(context.Background(), bot); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bot.cleared != 1 {
		t.Fatalf("expected one clear, got %d", bot.cleared)
	}
	if len(bot.questions) != 0 {
		t.Fatalf("commands must not reach the bot: %v", bot.questions)
	}
	if !strings.Contains(out.String(), "Please enter a question.") {
		t.Fatalf("blank input should re-prompt: %q", out.String())
	}
	if !strings.Contains(out.String(), "Conversation history cleared.") {
		t.Fatalf("clear should be acknowledged: %q", out.String())
	}
}

func TestRun_EOFExitsCleanly(t *testing.T) {
	var out bytes.Buffer
	ui := NewWithStreams(strings.NewReader("one question\n"), &out)
	bot := &scriptedBot{}

	if err := ui.Run(context.Background(), bot); err != nil {
		t.Fatalf("EOF should end the loop without error, got %v", err)
	}
	if len(bot.questions) != 1 {
		t.Fatalf("expected the question before EOF to be answered")
	}
}

func TestRun_AnswerErrorKeepsLoopAlive(t *testing.T) {
	var out bytes.Buffer
	ui := NewWithStreams(strings.NewReader("q1\nexit\n"), &out)
	bot := &scriptedBot{err: errors.New("endpoint down")}

	if err := ui.Run(context.Background(), bot); err != nil {
		t.Fatalf("per-question errors must not end the loop, got %v", err)
	}
	if !strings.Contains(out.String(), "endpoint down") {
		t.Fatalf("error should be reported to the user: %q", out.String())
	}
}

func TestReadURL_SkipsBlankLines(t *testing.T) {
	var out bytes.Buffer
	ui := NewWithStreams(strings.NewReader("\n  \nhttps://example.com\n"), &out)

	url, err := ui.ReadURL()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "https://example.com" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestReadURL_EOF(t *testing.T) {
	ui := NewWithStreams(strings.NewReader(""), io.Discard)
	if _, err := ui.ReadURL(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestWelcome_ShowsPageTitle(t *testing.T) {
	var out bytes.Buffer
	ui := NewWithStreams(strings.NewReader(""), &out)
	ui.Welcome("No title found")
	if !strings.Contains(out.String(), "Loaded page: No title found") {
		t.Fatalf("banner should surface the title sentinel: %q", out.String())
	}
}
