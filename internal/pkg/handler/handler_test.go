package handler

import (
	"context"
	"sync"
	"testing"
	"time"

	eventpb "evstream/api/proto/gen/pb-go/eventpb"
	"evstream/api/proto/gen/pb-go/eventpb/mocks"
	"evstream/internal/pkg/session"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type result struct {
	err error
}

func start(ctx context.Context, t *testing.T, h *Handler, clientID string, stream session.Stream) <-chan result {
	t.Helper()
	done := make(chan result, 1)
	go func() {
		done <- result{err: h.Run(ctx, &eventpb.EventRequest{ClientId: clientID}, stream)}
	}()
	return done
}

func wait(t *testing.T, done <-chan result) error {
	t.Helper()
	select {
	case res := <-done:
		return res.err
	case <-time.After(5 * time.Second):
		t.Fatal("handler did not return")
	}
	return nil
}

func waitRegistered(t *testing.T, r session.Registry, clientID string) *session.Session {
	t.Helper()
	var sess *session.Session
	require.Eventually(t, func() bool {
		var err error
		sess, err = r.Get(clientID)
		return err == nil
	}, 5*time.Second, time.Millisecond)
	return sess
}

func recordingStream(t *testing.T, sendErr error) (*mocks.Controller_StreamEventServer, chan *eventpb.EventMessage) {
	t.Helper()
	sent := make(chan *eventpb.EventMessage, 16)
	stream := &mocks.Controller_StreamEventServer{}
	stream.On("Send", mock.IsType(&eventpb.EventMessage{})).Run(func(args mock.Arguments) {
		sent <- args.Get(0).(*eventpb.EventMessage)
	}).Return(sendErr)
	return stream, sent
}

func TestNewHandlerRequiresRegistry(t *testing.T) {
	_, err := NewHandler()
	require.Error(t, err)
}

func TestRunRejectsEmptyClientID(t *testing.T) {
	r := session.NewMemoryRegistry()
	h, err := NewHandler(WithRegistry(r))
	require.NoError(t, err)
	stream := &mocks.Controller_StreamEventServer{}
	err = h.Run(context.Background(), &eventpb.EventRequest{}, stream)
	require.ErrorIs(t, err, ErrInvalidClientID)
	require.Equal(t, StateRejected, h.State())
	require.Equal(t, 0, r.Size())
	stream.AssertNotCalled(t, "Send", mock.Anything)
}

func TestRunWritesEventsUntilCancelled(t *testing.T) {
	r := session.NewMemoryRegistry()
	h, err := NewHandler(WithRegistry(r))
	require.NoError(t, err)
	stream, sent := recordingStream(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := start(ctx, t, h, "A", stream)

	sess := waitRegistered(t, r, "A")
	require.Equal(t, StateActive, h.State())
	require.NoError(t, sess.Deliver(&eventpb.EventMessage{Id: "A", Message: "1"}))
	require.NoError(t, sess.Deliver(&eventpb.EventMessage{Id: "A", Message: "2"}))
	require.Equal(t, "1", (<-sent).Message)
	require.Equal(t, "2", (<-sent).Message)

	cancel()
	require.NoError(t, wait(t, done))
	require.Equal(t, StateClosed, h.State())
	require.Equal(t, 0, r.Size())
	require.Equal(t, uint64(2), h.Sent())
}

func TestRunEndsAfterMaxEvents(t *testing.T) {
	r := session.NewMemoryRegistry()
	h, err := NewHandler(WithRegistry(r), WithMaxEvents(2))
	require.NoError(t, err)
	stream, sent := recordingStream(t, nil)
	done := start(context.Background(), t, h, "A", stream)

	sess := waitRegistered(t, r, "A")
	require.NoError(t, sess.Deliver(&eventpb.EventMessage{Id: "A"}))
	require.NoError(t, sess.Deliver(&eventpb.EventMessage{Id: "A"}))
	_ = sess.Deliver(&eventpb.EventMessage{Id: "A"})
	require.NoError(t, wait(t, done))
	require.Len(t, sent, 2)
	require.Equal(t, StateClosed, h.State())
	require.Equal(t, 0, r.Size())
}

func TestRunWriteFailureTearsDown(t *testing.T) {
	r := session.NewMemoryRegistry()
	h, err := NewHandler(WithRegistry(r))
	require.NoError(t, err)
	stream, _ := recordingStream(t, errors.New("transport is closing"))
	done := start(context.Background(), t, h, "A", stream)

	sess := waitRegistered(t, r, "A")
	require.NoError(t, sess.Deliver(&eventpb.EventMessage{Id: "A"}))
	require.ErrorIs(t, wait(t, done), ErrWriteFailed)
	require.Equal(t, 0, r.Size())
	require.True(t, sess.Closed())
}

func TestRunReplacedSession(t *testing.T) {
	r := session.NewMemoryRegistry()
	h, err := NewHandler(WithRegistry(r))
	require.NoError(t, err)
	stream, _ := recordingStream(t, nil)
	done := start(context.Background(), t, h, "A", stream)
	old := waitRegistered(t, r, "A")

	newer, replaced, err := r.Register("A", &mocks.Controller_StreamEventServer{})
	require.NoError(t, err)
	require.Same(t, old, replaced)

	require.ErrorIs(t, wait(t, done), ErrSessionReplaced)
	got, err := r.Get("A")
	require.NoError(t, err)
	require.Same(t, newer, got)
}

// blockingStream blocks its first Send until release is closed and signals
// started once that Send is in progress.
func blockingStream(t *testing.T) (stream *mocks.Controller_StreamEventServer, started, release chan struct{}) {
	t.Helper()
	started = make(chan struct{})
	release = make(chan struct{})
	var once sync.Once
	stream = &mocks.Controller_StreamEventServer{}
	stream.On("Send", mock.IsType(&eventpb.EventMessage{})).Run(func(mock.Arguments) {
		once.Do(func() {
			close(started)
			<-release
		})
	}).Return(nil)
	return stream, started, release
}

func TestRunReplacedSessionStopsWriting(t *testing.T) {
	for i := 0; i < 50; i++ {
		r := session.NewMemoryRegistry()
		h, err := NewHandler(WithRegistry(r))
		require.NoError(t, err)
		stream, started, release := blockingStream(t)
		done := start(context.Background(), t, h, "A", stream)

		old := waitRegistered(t, r, "A")
		for j := 0; j < 5; j++ {
			require.NoError(t, old.Deliver(&eventpb.EventMessage{Id: "A"}))
		}
		<-started
		_, replaced, err := r.Register("A", &mocks.Controller_StreamEventServer{})
		require.NoError(t, err)
		require.Same(t, old, replaced)
		close(release)

		require.ErrorIs(t, wait(t, done), ErrSessionReplaced)
		stream.AssertNumberOfCalls(t, "Send", 1)
		require.Equal(t, uint64(1), h.Sent())
	}
}

func TestRunEvictedSessionStopsWriting(t *testing.T) {
	for i := 0; i < 50; i++ {
		r := session.NewMemoryRegistry()
		h, err := NewHandler(WithRegistry(r))
		require.NoError(t, err)
		stream, started, release := blockingStream(t)
		done := start(context.Background(), t, h, "A", stream)

		old := waitRegistered(t, r, "A")
		for j := 0; j < 5; j++ {
			require.NoError(t, old.Deliver(&eventpb.EventMessage{Id: "A"}))
		}
		<-started
		require.True(t, r.Remove(old))
		newer, replaced, err := r.Register("A", &mocks.Controller_StreamEventServer{})
		require.NoError(t, err)
		require.Nil(t, replaced)
		close(release)

		require.NoError(t, wait(t, done))
		stream.AssertNumberOfCalls(t, "Send", 1)
		got, err := r.Get("A")
		require.NoError(t, err)
		require.Same(t, newer, got)
	}
}

func TestRunFlushesWhenEndedByServer(t *testing.T) {
	r := session.NewMemoryRegistry()
	h, err := NewHandler(WithRegistry(r))
	require.NoError(t, err)

	release := make(chan struct{})
	sent := make(chan *eventpb.EventMessage, 16)
	stream := &mocks.Controller_StreamEventServer{}
	stream.On("Send", mock.IsType(&eventpb.EventMessage{})).Run(func(args mock.Arguments) {
		<-release
		sent <- args.Get(0).(*eventpb.EventMessage)
	}).Return(nil)
	done := start(context.Background(), t, h, "A", stream)

	sess := waitRegistered(t, r, "A")
	for i := 0; i < 3; i++ {
		require.NoError(t, sess.Deliver(&eventpb.EventMessage{Id: "A"}))
	}
	require.Equal(t, 1, r.CloseAll())
	close(release)

	require.NoError(t, wait(t, done))
	require.Len(t, sent, 3)
	require.Equal(t, StateClosed, h.State())
}

func TestRunClosedByServer(t *testing.T) {
	r := session.NewMemoryRegistry()
	h, err := NewHandler(WithRegistry(r))
	require.NoError(t, err)
	stream, _ := recordingStream(t, nil)
	done := start(context.Background(), t, h, "A", stream)

	r.Deregister(waitRegistered(t, r, "A").ClientID)
	require.NoError(t, wait(t, done))
	require.Equal(t, StateClosed, h.State())
}

func TestStateString(t *testing.T) {
	require.Equal(t, "OPENING", StateOpening.String())
	require.Equal(t, "ACTIVE", StateActive.String())
	require.Equal(t, "CLOSED", StateClosed.String())
	require.Equal(t, "REJECTED", StateRejected.String())
	require.True(t, StateClosed.Terminal())
	require.False(t, StateActive.Terminal())
}
