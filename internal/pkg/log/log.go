// Package log add logging utilities.
package log

import (
	"io"
	"os"
	"strings"
	"time"

	eventpb "evstream/api/proto/gen/pb-go/eventpb"
	"evstream/internal/pkg/session"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetLogger sets the default logger's level.
func SetLogger(level string) {
	customFormatter := new(logrus.TextFormatter)
	customFormatter.TimestampFormat = time.RFC3339
	customFormatter.FullTimestamp = true
	logrus.SetFormatter(customFormatter)
	switch strings.ToLower(level) {
	case "trace":
		logrus.SetLevel(logrus.TraceLevel)
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.ErrorLevel)
	}
}

// SetOutput sends log output to stderr and, when path is set, to a rotated log file.
func SetOutput(path string) io.Closer {
	if path == "" {
		logrus.SetOutput(os.Stderr)
		return nopCloser{}
	}
	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    50, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
	}
	logrus.SetOutput(io.MultiWriter(os.Stderr, file))
	return file
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// RequestToFields returns the log fields of a stream request.
func RequestToFields(req *eventpb.EventRequest) logrus.Fields {
	return logrus.Fields{
		"client_id": req.GetClientId(),
	}
}

// EventMessageToFields returns the log fields of an event.
func EventMessageToFields(msg *eventpb.EventMessage) logrus.Fields {
	return logrus.Fields{
		"id":        msg.GetId(),
		"message":   msg.GetMessage(),
		"timestamp": msg.GetTimestamp(),
	}
}

// SessionToFields returns the log fields of a session.
func SessionToFields(sess *session.Session) logrus.Fields {
	return logrus.Fields{
		"client_id": sess.ClientID,
		"seq":       sess.Seq,
		"delivered": sess.Delivered(),
	}
}
