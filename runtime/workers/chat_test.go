package workers

import (
	"bytes"
	"chat-formatter/domain"
	"chat-formatter/errors"
	"chat-formatter/mocks"
	"chat-formatter/sink"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParseChatLine(t *testing.T) {
	req := require.New(t)

	msg, err := ParseChatLine("Bob: hello: world")
	req.NoError(err)
	req.Equal("Bob", msg.Sender.Name)
	req.Equal("hello: world", msg.Content)
	req.Equal(domain.OfflineID("Bob"), msg.Sender.ID)

	_, err = ParseChatLine("no separator")
	req.ErrorIs(err, errors.ErrMalformedChatLine)

	_, err = ParseChatLine("  : hello")
	req.ErrorIs(err, errors.ErrEmptyParticipantName)
}

func TestChatInputWorker_Queues_Messages_And_Runs_Commands(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	formatter := mocks.NewMockChatFormatter(ctrl)

	// Given a reload command in the middle of the chat
	formatter.EXPECT().HandleCommand([]string{"reload"}).Return("Reloaded successfully.", nil)
	formatter.EXPECT().HandleCommand([]string{"oops"}).Return("", errors.ErrUnknownCommand)

	input := strings.NewReader(strings.Join([]string{
		"Bob: hello",
		"",
		"/chatformatter reload",
		"/ChatFormatter oops",
		"/unknown",
		"garbage",
		"Alice: hi Bob",
	}, "\n"))
	messages := make(chan domain.Message, 10)
	worker := NewChatInputWorker(slog.Default(), input, formatter, messages)

	// When the whole input is read
	err := worker.Run(context.Background())

	// Then both chat lines were queued and the channel is closed
	req.NoError(err)
	var received []string
	for msg := range messages {
		received = append(received, fmt.Sprintf("%s=%s", msg.Sender.Name, msg.Content))
	}
	req.Equal([]string{"Bob=hello", "Alice=hi Bob"}, received)
}

func TestChatInputWorker_Stops_On_Cancel(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Given an unbuffered queue nobody reads
	messages := make(chan domain.Message)
	worker := NewChatInputWorker(slog.Default(), strings.NewReader("Bob: hello\n"), mocks.NewMockChatFormatter(ctrl), messages)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := worker.Run(ctx)
	req.ErrorIs(err, context.DeadlineExceeded)
}

func TestChatDecoratorWorker_Decorates_Until_Channel_Closed(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	formatter := mocks.NewMockChatFormatter(ctrl)
	sink := mocks.NewMockMessageSink(ctrl)

	bob, err := domain.NewParticipant("Bob")
	req.NoError(err)
	first := domain.NewMessage(bob, "hello")
	second := domain.NewMessage(bob, "again")

	messages := make(chan domain.Message, 2)
	messages <- first
	messages <- second
	close(messages)

	gomock.InOrder(
		formatter.EXPECT().OnChat(first).Return(domain.DecoratedMessage{Message: first, Prefix: "<Bob> "}),
		sink.EXPECT().Consume(gomock.Any(), domain.DecoratedMessage{Message: first, Prefix: "<Bob> "}).Return(nil),
		formatter.EXPECT().OnChat(second).Return(domain.DecoratedMessage{Message: second, Prefix: "<Bob> "}),
		// A failing sink does not stop the worker
		sink.EXPECT().Consume(gomock.Any(), domain.DecoratedMessage{Message: second, Prefix: "<Bob> "}).Return(fmt.Errorf("disk full")),
	)

	worker := NewChatDecoratorWorker(slog.Default(), formatter, messages, sink)
	req.NoError(worker.Run(context.Background()))
}

func decorateWithName(ctrl *gomock.Controller) *mocks.MockChatFormatter {
	formatter := mocks.NewMockChatFormatter(ctrl)
	formatter.EXPECT().
		OnChat(gomock.Any()).
		DoAndReturn(func(msg domain.Message) domain.DecoratedMessage {
			return domain.DecoratedMessage{Message: msg, Prefix: fmt.Sprintf("<%s> ", msg.Sender.Name)}
		}).
		AnyTimes()
	return formatter
}

func TestChatWorkers_Long_Line_Does_Not_Stop_The_Chat(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	log := slog.Default()

	// Given a line over the default scanner limit between two normal ones
	long := strings.Repeat("a", 70*1024)
	input := strings.NewReader("alice: first\nbob: " + long + "\ncarol: after the long line\n")
	var out bytes.Buffer
	formatter := decorateWithName(ctrl)
	messages := make(chan domain.Message, 4)

	sup := NewSupervisor(log, 10*time.Millisecond)
	sup.Add(
		NewChatInputWorker(log, input, formatter, messages),
		NewChatDecoratorWorker(log, formatter, messages, sink.NewConsoleSink(&out, log, false)),
	)

	// When the supervised workers consume the whole input
	done := make(chan struct{})
	go func() {
		sup.Run(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		req.Fail("Workers should have stopped at end of input")
	}

	// Then every message went out, in order
	req.Equal("<alice> first\n<bob> "+long+"\n<carol> after the long line\n", out.String())
}

func TestChatInputWorker_Skips_Oversized_Line(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, nil))

	input := strings.NewReader("alice: first\nbob: " + strings.Repeat("x", 500) + "\ncarol: after")
	messages := make(chan domain.Message, 4)
	worker := NewChatInputWorker(log, input, mocks.NewMockChatFormatter(ctrl), messages)
	worker.maxLineSize = 64

	// When the input is read
	req.NoError(worker.Run(context.Background()))

	// Then the oversized line is skipped with a warning, the next one kept
	var received []string
	for msg := range messages {
		received = append(received, msg.Sender.Name)
	}
	req.Equal([]string{"alice", "carol"}, received)
	req.Contains(logs.String(), "Skipping oversized chat line")
}

func TestChatInputWorker_Run_After_End_Of_Input(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	messages := make(chan domain.Message, 1)
	worker := NewChatInputWorker(slog.Default(), iotest.ErrReader(fmt.Errorf("stdin gone")), mocks.NewMockChatFormatter(ctrl), messages)

	// Given the input failed and the queue is closed
	req.NoError(worker.Run(context.Background()))
	_, open := <-messages
	req.False(open)

	// When the worker is started again, it neither panics nor fails
	req.NotPanics(func() {
		req.NoError(worker.Run(context.Background()))
	})
}

func TestChatInputWorker_Truncates_Rejected_Line_In_Logs(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, nil))

	// Given a long line without a sender
	garbage := strings.Repeat("y", 5000)
	messages := make(chan domain.Message, 1)
	worker := NewChatInputWorker(log, strings.NewReader(garbage), mocks.NewMockChatFormatter(ctrl), messages)

	req.NoError(worker.Run(context.Background()))

	// Then the warning carries only the start of it
	req.Contains(logs.String(), "Ignoring chat line")
	req.Contains(logs.String(), strings.Repeat("y", 100))
	req.NotContains(logs.String(), strings.Repeat("y", logLineLength+1))
}
