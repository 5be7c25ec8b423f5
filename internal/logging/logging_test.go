package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferedLogger(buf *bytes.Buffer) *logrus.Logger {
	logger := SetupLogging("debug")
	logger.Out = buf
	return logger
}

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &fields))
	return fields
}

func TestSetupLogging_Level(t *testing.T) {
	assert.Equal(t, logrus.WarnLevel, SetupLogging("warn").Level)
	assert.Equal(t, logrus.InfoLevel, SetupLogging("nonsense").Level)
}

func TestLogData_ContextRoundTrip(t *testing.T) {
	assert.Nil(t, GetLogData(context.Background()))

	logData := NewLogData(SetupLogging("info"))
	ctx := WithLogData(context.Background(), logData)
	assert.Same(t, logData, GetLogData(ctx))
}

func TestLogData_LogIncludesDataAndTimings(t *testing.T) {
	var buf bytes.Buffer
	logData := NewLogData(bufferedLogger(&buf))

	logData.AddData("transactionCount", 3)
	stop := logData.AddTiming("listTransactionsMs")
	stop()
	logData.Log().Info("done")

	fields := lastLine(t, &buf)
	assert.Equal(t, "info", fields["loglevel"])
	assert.Equal(t, float64(3), fields["transactionCount"])
	assert.Contains(t, fields, "listTransactionsMs")
}

func TestLoggingWrapper_Error(t *testing.T) {
	var buf bytes.Buffer
	handler := LoggingWrapper("Test", bufferedLogger(&buf), func(w http.ResponseWriter, r *http.Request, l *LogData) error {
		l.AddData("reason", "boom")
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("bad request")
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	fields := lastLine(t, &buf)
	assert.Equal(t, "Handler.Test.Error", fields["msg"])
	assert.Equal(t, "bad request", fields["error"])
	assert.Equal(t, "boom", fields["reason"])
}

func TestLoggingWrapper_FreshLogDataPerRequest(t *testing.T) {
	var buf bytes.Buffer
	calls := 0
	handler := LoggingWrapper("Test", bufferedLogger(&buf), func(w http.ResponseWriter, r *http.Request, l *LogData) error {
		calls++
		if calls == 1 {
			l.AddData("firstOnly", true)
		}
		return nil
	})

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	fields := lastLine(t, &buf)
	assert.Equal(t, "Handler.Test.Complete", fields["msg"])
	assert.NotContains(t, fields, "firstOnly")
}
