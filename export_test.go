package digitize

import (
	"bytes"
	"errors"
	"testing"
)

type failingWriter struct{}

var errSink = errors.New("sink closed")

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errSink
}

func TestWriteCSVByColumn(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []Sample{{1, 2}, {3.5, -4}}, true)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, "x,y\n1,2\n3.5,-4\n", buf.String())
}

func TestWriteCSVByRow(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []Sample{{1, 2}, {3.5, -4}}, false)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, "x,1,3.5\ny,2,-4\n", buf.String())
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil, true); !errors.Is(err, ErrNoSamples) {
		t.Errorf("got %v, want ErrNoSamples", err)
	}
}

func TestWriteCSVWriterFailure(t *testing.T) {
	err := WriteCSV(failingWriter{}, []Sample{{1, 2}}, true)
	if !errors.Is(err, errSink) {
		t.Errorf("got %v, want the writer's error", err)
	}
}
