package evaluation

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// EventReader reads decoded events stored one JSON document per line.
type EventReader struct {
	reader *bufio.Reader
	closer io.Closer
	line   int
}

func NewEventReader(r io.Reader) *EventReader {
	return &EventReader{reader: bufio.NewReaderSize(r, 1<<20)}
}

func OpenEventFile(filename string) (*EventReader, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, &ErrOpenFile{Filename: filename, Err: err}
	}
	reader := NewEventReader(file)
	reader.closer = file
	return reader, nil
}

// Next returns the next event of the stream, or io.EOF when there are no
// more events. Blank lines are skipped.
func (r *EventReader) Next() (*Event, error) {
	for {
		data, err := r.reader.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("error reading event stream: %w", err)
		}
		if len(data) > 0 {
			r.line++
		}
		data = bytes.TrimSpace(data)
		if len(data) == 0 {
			if err != nil {
				return nil, io.EOF
			}
			continue
		}

		event := &Event{}
		if uerr := json.Unmarshal(data, event); uerr != nil {
			return nil, fmt.Errorf("error decoding event at line %d: %w", r.line, uerr)
		}
		return event, nil
	}
}

func (r *EventReader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
