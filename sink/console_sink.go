package sink

import (
	"chat-formatter/colors"
	"chat-formatter/domain"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// ConsoleSink prints decorated lines. Legacy colour codes become ANSI
// sequences, or are stripped when colours are disabled.
type ConsoleSink struct {
	mu      sync.Mutex
	out     io.Writer
	log     *slog.Logger
	colours bool
}

func NewConsoleSink(out io.Writer, log *slog.Logger, colours bool) *ConsoleSink {
	return &ConsoleSink{out: out, log: log, colours: colours}
}

func (c *ConsoleSink) Consume(_ context.Context, msg domain.DecoratedMessage) error {
	line := colors.StripColor(msg.Line())
	if c.colours {
		line = colors.ToANSI(msg.Line())
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, err := fmt.Fprintln(c.out, line); err != nil {
		c.log.Error("Unable to write chat line", "message_id", msg.ID, "error", err)
		return err
	}
	return nil
}
