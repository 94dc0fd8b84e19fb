package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/LeoFurone/personal-finance-furone/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversation_Say(t *testing.T) {
	var out bytes.Buffer
	conv := NewConversation(strings.NewReader(""), &out)

	err := conv.Say(context.Background(), "hello")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "hello")
}

func TestConversation_AskText(t *testing.T) {
	var out bytes.Buffer
	conv := NewConversation(strings.NewReader("Casal\n"), &out)

	reply, err := conv.AskText(context.Background(), "Which account?")

	require.NoError(t, err)
	assert.Equal(t, "Casal", reply)
	assert.Contains(t, out.String(), "Which account?")
}

func TestConversation_AskTextCancel(t *testing.T) {
	var out bytes.Buffer
	conv := NewConversation(strings.NewReader("/cancel\n"), &out)

	_, err := conv.AskText(context.Background(), "Which account?")

	assert.ErrorIs(t, err, common.ErrReviewCanceled)
}

func TestConversation_AskOptionByNumber(t *testing.T) {
	var out bytes.Buffer
	conv := NewConversation(strings.NewReader("2\n"), &out)

	choice, err := conv.AskOption(context.Background(), "Category?", []string{"Casa", "Mercado", "Transporte"})

	require.NoError(t, err)
	assert.Equal(t, "Mercado", choice)
	assert.Contains(t, out.String(), "[2] Mercado")
}

func TestConversation_AskOptionByText(t *testing.T) {
	var out bytes.Buffer
	conv := NewConversation(strings.NewReader("transporte\n"), &out)

	choice, err := conv.AskOption(context.Background(), "Category?", []string{"Casa", "Mercado", "Transporte"})

	require.NoError(t, err)
	assert.Equal(t, "Transporte", choice)
}

func TestConversation_AskOptionRepromptsOnInvalidChoice(t *testing.T) {
	var out bytes.Buffer
	conv := NewConversation(strings.NewReader("9\nbogus\n1\n"), &out)

	choice, err := conv.AskOption(context.Background(), "Category?", []string{"Casa", "Mercado"})

	require.NoError(t, err)
	assert.Equal(t, "Casa", choice)
	assert.Contains(t, out.String(), "between 1 and 2")
}

func TestConversation_AskOptionCancel(t *testing.T) {
	var out bytes.Buffer
	conv := NewConversation(strings.NewReader("/CANCEL\n"), &out)

	_, err := conv.AskOption(context.Background(), "Category?", []string{"Casa"})

	assert.ErrorIs(t, err, common.ErrReviewCanceled)
}

func TestConversation_ContextCancellation(t *testing.T) {
	var out bytes.Buffer
	// A reader that never delivers a line.
	blocked, _ := blockedReader()
	conv := NewConversation(blocked, &out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := conv.AskText(ctx, "Which account?")

	assert.ErrorIs(t, err, common.ErrReviewCanceled)
}

// blockedReader returns a reader whose Read blocks forever, plus a closer.
func blockedReader() (readerFunc, func()) {
	ch := make(chan struct{})
	return func(p []byte) (int, error) {
		<-ch
		return 0, nil
	}, func() { close(ch) }
}

type readerFunc func(p []byte) (int, error)

func (f readerFunc) Read(p []byte) (int, error) {
	return f(p)
}
