package workers

import (
	"bufio"
	"bytes"
	"chat-formatter/contract"
	"chat-formatter/domain"
	"chat-formatter/errors"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/samber/lo"
)

const (
	commandName = "chatformatter"
	// lines longer than this are skipped
	maxLineSize = 1024 * 1024
	// rejected lines are cut to this many characters in logs
	logLineLength = 120
)

// ChatInputWorker reads "name: message" lines and queues them as messages.
// Lines starting with "/chatformatter" are administrative commands.
//
// One goroutine reads the input for the whole life of the worker, restarts
// included. It only exits at the end of the input, so canceling Run while the
// input blocks (stdin) leaves it waiting for the next line, which is then
// handed to the next Run.
type ChatInputWorker struct {
	input       io.Reader
	formatter   contract.ChatFormatter
	messages    chan domain.Message
	log         *slog.Logger
	maxLineSize int
	lines       chan string
	readErr     error
	readOnce    sync.Once
	closeOnce   sync.Once
}

func NewChatInputWorker(log *slog.Logger, input io.Reader, formatter contract.ChatFormatter, messages chan domain.Message) *ChatInputWorker {
	return &ChatInputWorker{
		input:       input,
		formatter:   formatter,
		messages:    messages,
		log:         log,
		maxLineSize: maxLineSize,
		lines:       make(chan string),
	}
}

// Run stops at end of input and closes the message channel so decorators
// drain and stop too. Once the channel is closed Run always returns nil,
// a read error is only logged.
func (w *ChatInputWorker) Run(ctx context.Context) error {
	w.readOnce.Do(func() { go w.read() })

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case line, ok := <-w.lines:
			if !ok {
				w.closeOnce.Do(func() {
					close(w.messages)
					if w.readErr != nil {
						w.log.Error("Chat input failed, no more messages", "error", w.readErr)
					}
				})
				return nil
			}
			if err := w.handle(ctx, line); err != nil {
				return err
			}
		}
	}
}

func (w *ChatInputWorker) read() {
	defer close(w.lines)
	scanner := bufio.NewScanner(w.input)
	scanner.Buffer(make([]byte, 0, min(4096, w.maxLineSize)), w.maxLineSize)
	scanner.Split(boundedLines(w.maxLineSize, func() {
		w.log.Warn("Skipping oversized chat line", "max_bytes", w.maxLineSize)
	}))
	for scanner.Scan() {
		w.lines <- scanner.Text()
	}
	w.readErr = scanner.Err()
}

// boundedLines splits like bufio.ScanLines but drops a line that does not fit
// in limit bytes instead of failing the whole scan.
func boundedLines(limit int, onSkip func()) bufio.SplitFunc {
	discarding := false
	return func(data []byte, atEOF bool) (int, []byte, error) {
		if discarding {
			if i := bytes.IndexByte(data, '\n'); i >= 0 {
				discarding = false
				return i + 1, nil, nil
			}
			return len(data), nil, nil
		}
		advance, token, err := bufio.ScanLines(data, atEOF)
		if advance == 0 && token == nil && err == nil && len(data) >= limit {
			discarding = true
			onSkip()
			return len(data), nil, nil
		}
		return advance, token, err
	}
}

func (w *ChatInputWorker) handle(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	if command, ok := strings.CutPrefix(line, "/"); ok {
		w.command(strings.Fields(command))
		return nil
	}

	msg, err := ParseChatLine(line)
	if err != nil {
		w.log.Warn("Ignoring chat line", "line", lo.Ellipsis(line, logLineLength), "error", err)
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case w.messages <- msg:
		return nil
	}
}

func (w *ChatInputWorker) command(fields []string) {
	if len(fields) == 0 || !strings.EqualFold(fields[0], commandName) {
		w.log.Warn("Unknown command", "command", lo.Ellipsis(strings.Join(fields, " "), logLineLength))
		return
	}
	answer, err := w.formatter.HandleCommand(fields[1:])
	if err != nil {
		w.log.Warn(fmt.Sprintf("Usage: /%s reload", commandName), "error", err)
		return
	}
	w.log.Info(answer)
}

// ParseChatLine turns "name: message" into a message sent by name.
func ParseChatLine(line string) (domain.Message, error) {
	name, content, ok := strings.Cut(line, ":")
	if !ok {
		return domain.Message{}, errors.ErrMalformedChatLine
	}
	sender, err := domain.NewParticipant(name)
	if err != nil {
		return domain.Message{}, err
	}
	return domain.NewMessage(sender, strings.TrimPrefix(content, " ")), nil
}

// ChatDecoratorWorker decorates queued messages and hands them to the sink.
// Several of them may share the same queue.
type ChatDecoratorWorker struct {
	formatter contract.ChatFormatter
	messages  chan domain.Message
	sink      contract.MessageSink
	log       *slog.Logger
}

func NewChatDecoratorWorker(log *slog.Logger, formatter contract.ChatFormatter, messages chan domain.Message, sink contract.MessageSink) ChatDecoratorWorker {
	return ChatDecoratorWorker{formatter: formatter, messages: messages, sink: sink, log: log}
}

func (w ChatDecoratorWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case msg, ok := <-w.messages:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			if err := w.sink.Consume(ctx, w.formatter.OnChat(msg)); err != nil {
				w.log.Error("Sink failed", "message_id", msg.ID, "error", err)
			}
		}
	}
}
