package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Coding-4A11j/chatbot-Scrape-Website/internal/llm"
)

// ErrEmptyCompletion indicates the model returned no usable answer.
var ErrEmptyCompletion = errors.New("chat: empty completion")

// historyWindow bounds how many prior messages ride along with each request.
const historyWindow = 10

// Defaults mirror a conversational rather than extractive temperature and a
// short, console-friendly answer budget.
const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 500
)

// Session is one grounded conversation. Context is set once from the
// extracted page and never mutated; only the history grows.
type Session struct {
	Client llm.Client
	Model  string
	// Context is the assembled page context used as the exclusive knowledge
	// source for every answer.
	Context string

	history []openai.ChatCompletionMessage
}

// Ask sends one question grounded on the session context and returns the
// model's answer. The exchange is appended to the history window on success.
func (s *Session) Ask(ctx context.Context, question string) (string, error) {
	if s.Client == nil || strings.TrimSpace(s.Model) == "" {
		return "", errors.New("chat: session not configured")
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(s.history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: s.systemMessage(),
	})
	messages = append(messages, s.recentHistory()...)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: question,
	})

	req := openai.ChatCompletionRequest{
		Model:       s.Model,
		Messages:    messages,
		Temperature: defaultTemperature,
		MaxTokens:   defaultMaxTokens,
		N:           1,
	}

	resp, err := s.Client.CreateChatCompletion(ctx, req)
	if err != nil {
		// One short-backoff retry before surfacing the failure.
		sleep(100)
		resp, err = s.Client.CreateChatCompletion(ctx, req)
		if err != nil {
			return "", fmt.Errorf("chat completion (after retry): %w", err)
		}
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	if answer == "" {
		return "", ErrEmptyCompletion
	}

	s.history = append(s.history,
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: question},
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: answer},
	)
	return answer, nil
}

// Clear drops the conversation history. The grounding context is untouched.
func (s *Session) Clear() {
	s.history = nil
}

func (s *Session) recentHistory() []openai.ChatCompletionMessage {
	if len(s.history) <= historyWindow {
		return s.history
	}
	return s.history[len(s.history)-historyWindow:]
}

func (s *Session) systemMessage() string {
	var sb strings.Builder
	sb.WriteString("You are a helpful assistant that answers questions based on the content of a specific website.\n\n")
	sb.WriteString("WEBSITE CONTENT:\n")
	sb.WriteString(s.Context)
	sb.WriteString("\n\nINSTRUCTIONS:\n")
	sb.WriteString("- Answer questions using ONLY the information provided in the website content above\n")
	sb.WriteString("- If the answer is not found in the website content, respond with: \"The requested information is not available on the provided website.\"\n")
	sb.WriteString("- Be helpful, clear, and concise in your responses\n")
	sb.WriteString("- Do not use external knowledge or information not present in the website content\n")
	sb.WriteString("- If relevant, reference specific sections or headings from the website\n")
	sb.WriteString("- Maintain a friendly and professional tone")
	return sb.String()
}

// sleepFunc allows tests to replace the retry backoff, measured in
// milliseconds. When nil, a real sleep is used.
var sleepFunc func(ms int)

func sleep(ms int) {
	if sleepFunc != nil {
		sleepFunc(ms)
		return
	}
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
