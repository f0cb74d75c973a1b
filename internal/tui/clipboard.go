package tui

import (
	"context"

	"github.com/atotto/clipboard"
)

// ClipboardPublisher shares text by copying it to the system clipboard.
type ClipboardPublisher struct{}

func (ClipboardPublisher) Publish(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return clipboard.WriteAll(text)
}
