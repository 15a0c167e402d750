package helper

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestStyleFormatter(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC),
		Level:   logrus.InfoLevel,
		Message: "hello",
		Data:    logrus.Fields{"b": 2, "a": "x"},
	}

	out, err := (&StyleFormatter{}).Format(entry)
	require.NoError(t, err)
	require.Equal(t, "2024-03-01 12:30:45 INFO  unknown - hello a=x b=2\n", string(out))
}

func TestSetLevel(t *testing.T) {
	defer Log.SetLevel(Log.GetLevel())

	require.NoError(t, SetLevel("trace"))
	require.Equal(t, logrus.TraceLevel, Log.GetLevel())

	require.Error(t, SetLevel("loud"))
	require.Equal(t, logrus.TraceLevel, Log.GetLevel())
}

func TestSetOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	SetOutput(buf)
	defer SetOutput(os.Stdout)

	Log.Info("to buffer")
	require.Contains(t, buf.String(), "INFO ")
	require.Contains(t, buf.String(), "TestSetOutput - to buffer")
}
