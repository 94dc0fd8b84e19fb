package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/LeoFurone/personal-finance-furone/internal/common"
	"github.com/schollz/progressbar/v3"
)

// cancelCommand aborts the review from any prompt.
const cancelCommand = "/cancel"

// Conversation implements the review conversation surface on a terminal. It
// stands in for the chat transport when reviewing locally: free-text replies
// for the account step, numbered menus for the closed-option steps.
type Conversation struct {
	reader *lineReader
	writer io.Writer
	bar    *progressbar.ProgressBar
}

// NewConversation creates a terminal conversation over the given reader and
// writer, defaulting to stdin/stdout.
func NewConversation(reader io.Reader, writer io.Writer) *Conversation {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	return &Conversation{
		reader: newLineReader(reader),
		writer: writer,
	}
}

// TrackProgress installs a progress bar over the batch. Each row's first
// prompt advances it by one.
func (c *Conversation) TrackProgress(total int) {
	c.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(c.writer),
		progressbar.OptionSetDescription("reviewing"),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionShowCount(),
	)
}

// Say writes a message to the reviewer.
func (c *Conversation) Say(_ context.Context, text string) error {
	if _, err := fmt.Fprintln(c.writer, text); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}

// AskText shows a free-text prompt and returns the reply verbatim. The
// cancel command aborts with common.ErrReviewCanceled.
func (c *Conversation) AskText(ctx context.Context, prompt string) (string, error) {
	if c.bar != nil {
		_ = c.bar.Add(1)
	}

	if _, err := fmt.Fprintln(c.writer, FormatPrompt(prompt)); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	reply, err := c.reader.ReadLine(ctx)
	if err != nil {
		return "", err
	}
	if strings.EqualFold(reply, cancelCommand) {
		return "", common.ErrReviewCanceled
	}

	return reply, nil
}

// AskOption shows a numbered menu and returns the chosen option verbatim.
// Replies outside the closed set re-prompt; selection is by number or by
// option text.
func (c *Conversation) AskOption(ctx context.Context, prompt string, options []string) (string, error) {
	if _, err := fmt.Fprintln(c.writer, FormatPrompt(prompt)); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	for i, option := range options {
		if _, err := fmt.Fprintf(c.writer, "  [%d] %s\n", i+1, option); err != nil {
			return "", fmt.Errorf("failed to write option: %w", err)
		}
	}

	for {
		reply, err := c.reader.ReadLine(ctx)
		if err != nil {
			return "", err
		}
		if strings.EqualFold(reply, cancelCommand) {
			return "", common.ErrReviewCanceled
		}

		if n, convErr := strconv.Atoi(reply); convErr == nil && n >= 1 && n <= len(options) {
			return options[n-1], nil
		}
		for _, option := range options {
			if strings.EqualFold(reply, option) {
				return option, nil
			}
		}

		msg := FormatWarning(fmt.Sprintf("Please pick a number between 1 and %d.", len(options)))
		if _, err := fmt.Fprintln(c.writer, msg); err != nil {
			return "", fmt.Errorf("failed to write retry message: %w", err)
		}
	}
}
