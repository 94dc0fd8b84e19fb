package review

import "context"

// Conversation is the chat surface that delivers prompts to the reviewer and
// returns their replies. AskText returns free-form text; AskOption returns
// one element of options verbatim. Implementations return
// common.ErrReviewCanceled when the reviewer aborts, and block until a reply
// arrives or ctx is canceled.
type Conversation interface {
	Say(ctx context.Context, text string) error
	AskText(ctx context.Context, prompt string) (string, error)
	AskOption(ctx context.Context, prompt string, options []string) (string, error)
}
