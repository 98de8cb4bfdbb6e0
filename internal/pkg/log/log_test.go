package log

import (
	"path/filepath"
	"testing"

	eventpb "evstream/api/proto/gen/pb-go/eventpb"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestSetLogger(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)
	for level, want := range map[string]logrus.Level{
		"trace":   logrus.TraceLevel,
		"DEBUG":   logrus.DebugLevel,
		"info":    logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"unknown": logrus.ErrorLevel,
	} {
		SetLogger(level)
		require.Equal(t, want, logrus.GetLevel(), level)
	}
}

func TestSetOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evstream.log")
	closer := SetOutput(path)
	logrus.Error("hello")
	require.NoError(t, closer.Close())
	require.FileExists(t, path)
	require.NoError(t, SetOutput("").Close())
}

func TestEventMessageToFields(t *testing.T) {
	fields := EventMessageToFields(&eventpb.EventMessage{Id: "a", Message: `{"message":1}`, Timestamp: "t"})
	require.Equal(t, logrus.Fields{"id": "a", "message": `{"message":1}`, "timestamp": "t"}, fields)
	require.Equal(t, logrus.Fields{"client_id": ""}, RequestToFields(nil))
}
