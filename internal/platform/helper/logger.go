package helper

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

type StyleFormatter struct{}

func (f *StyleFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	timestamp := entry.Time.Format("2006-01-02 15:04:05")
	level := strings.ToUpper(entry.Level.String())
	function := "unknown"
	if entry.Caller != nil {
		function = entry.Caller.Function
	}

	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "%s %-5s %s - %s", timestamp, level, function, entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for key := range entry.Data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(buf, " %s=%v", key, entry.Data[key])
	}

	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// SetLevel sets the level of Log from a logrus level name like "debug".
func SetLevel(name string) error {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return err
	}
	Log.SetLevel(level)
	return nil
}

func SetOutput(w io.Writer) {
	Log.SetOutput(w)
}

func init() {
	Log.SetFormatter(&StyleFormatter{})
	Log.SetOutput(os.Stdout)
	Log.SetReportCaller(true)
	Log.SetLevel(logrus.InfoLevel)
}
