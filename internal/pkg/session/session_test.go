package session

import (
	"testing"

	eventpb "evstream/api/proto/gen/pb-go/eventpb"
	"evstream/api/proto/gen/pb-go/eventpb/mocks"

	"github.com/stretchr/testify/require"
)

func TestDeliver(t *testing.T) {
	r := NewMemoryRegistry(WithQueueSize(2))
	sess, _, err := r.Register("a", &mocks.Controller_StreamEventServer{})
	require.NoError(t, err)

	require.NoError(t, sess.Deliver(&eventpb.EventMessage{Message: "1"}))
	require.NoError(t, sess.Deliver(&eventpb.EventMessage{Message: "2"}))
	require.ErrorIs(t, sess.Deliver(&eventpb.EventMessage{Message: "3"}), ErrSlowConsumer)
	require.Equal(t, uint64(2), sess.Delivered())

	require.Equal(t, "1", (<-sess.Queue()).Message)
	require.Equal(t, "2", (<-sess.Queue()).Message)

	sess.Close()
	sess.Close()
	require.ErrorIs(t, sess.Deliver(&eventpb.EventMessage{}), ErrSessionClosed)
	<-sess.Done()
}
