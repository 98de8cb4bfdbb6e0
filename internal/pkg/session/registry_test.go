package session

import (
	"fmt"
	"sync"
	"testing"

	eventpb "evstream/api/proto/gen/pb-go/eventpb"
	"evstream/api/proto/gen/pb-go/eventpb/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRejectsEmptyClientID(t *testing.T) {
	r := NewMemoryRegistry()
	sess, replaced, err := r.Register("", &mocks.Controller_StreamEventServer{})
	require.ErrorIs(t, err, ErrInvalidClientID)
	require.Nil(t, sess)
	require.Nil(t, replaced)
	require.Equal(t, 0, r.Size())
}

func TestRegisterDeregisterSize(t *testing.T) {
	r := NewMemoryRegistry()
	for _, id := range []string{"a", "b", "c", "a"} {
		_, _, err := r.Register(id, &mocks.Controller_StreamEventServer{})
		require.NoError(t, err)
	}
	require.Equal(t, 3, r.Size())

	r.Deregister("b")
	require.Equal(t, 2, r.Size())
	r.Deregister("b")
	r.Deregister("unknown")
	require.Equal(t, 2, r.Size())

	_, err := r.Get("b")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRegisterReplacesPriorSession(t *testing.T) {
	r := NewMemoryRegistry()
	first, _, err := r.Register("a", &mocks.Controller_StreamEventServer{})
	require.NoError(t, err)
	second, replaced, err := r.Register("a", &mocks.Controller_StreamEventServer{})
	require.NoError(t, err)
	require.Same(t, first, replaced)
	require.True(t, first.Closed())
	require.True(t, first.Replaced())
	require.False(t, second.Closed())
	require.False(t, second.Replaced())

	got, err := r.Get("a")
	require.NoError(t, err)
	require.Same(t, second, got)

	require.ErrorIs(t, first.Deliver(&eventpb.EventMessage{Id: "a"}), ErrSessionClosed)
	require.NoError(t, second.Deliver(&eventpb.EventMessage{Id: "a"}))
}

func TestRemoveStaleSessionKeepsReplacement(t *testing.T) {
	r := NewMemoryRegistry()
	first, _, err := r.Register("a", &mocks.Controller_StreamEventServer{})
	require.NoError(t, err)
	second, _, err := r.Register("a", &mocks.Controller_StreamEventServer{})
	require.NoError(t, err)

	require.False(t, r.Remove(first))
	require.Equal(t, 1, r.Size())
	require.True(t, r.Remove(second))
	require.False(t, r.Remove(second))
	require.Equal(t, 0, r.Size())
	require.False(t, second.Replaced())
}

func TestSnapshotIsInRegistrationOrder(t *testing.T) {
	r := NewMemoryRegistry()
	ids := []string{"c", "a", "b"}
	for _, id := range ids {
		_, _, err := r.Register(id, &mocks.Controller_StreamEventServer{})
		require.NoError(t, err)
	}
	var got []string
	r.ForEachActive(func(s *Session) {
		got = append(got, s.ClientID)
	})
	require.Equal(t, ids, got)
}

func TestForEachActiveToleratesMutation(t *testing.T) {
	r := NewMemoryRegistry()
	for i := 0; i < 5; i++ {
		_, _, err := r.Register(fmt.Sprintf("client-%d", i), &mocks.Controller_StreamEventServer{})
		require.NoError(t, err)
	}
	visited := 0
	r.ForEachActive(func(s *Session) {
		visited++
		r.Deregister(s.ClientID)
		_, _, err := r.Register(s.ClientID+"-new", &mocks.Controller_StreamEventServer{})
		require.NoError(t, err)
	})
	require.Equal(t, 5, visited)
	require.Equal(t, 5, r.Size())
}

func TestCloseAll(t *testing.T) {
	r := NewMemoryRegistry()
	a, _, err := r.Register("a", &mocks.Controller_StreamEventServer{})
	require.NoError(t, err)
	b, _, err := r.Register("b", &mocks.Controller_StreamEventServer{})
	require.NoError(t, err)
	require.Equal(t, 2, r.CloseAll())
	require.Equal(t, 0, r.Size())
	require.True(t, a.Closed())
	require.True(t, b.Closed())
	require.True(t, a.Draining())
}

func TestConcurrentAccess(t *testing.T) {
	r := NewMemoryRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		id := fmt.Sprintf("client-%d", i%10)
		go func() {
			defer wg.Done()
			sess, _, err := r.Register(id, &mocks.Controller_StreamEventServer{})
			assert.NoError(t, err)
			r.Remove(sess)
		}()
		go func() {
			defer wg.Done()
			r.ForEachActive(func(s *Session) {
				_ = s.Deliver(&eventpb.EventMessage{Id: s.ClientID})
			})
		}()
	}
	wg.Wait()
	require.Equal(t, 0, r.Size())
}
