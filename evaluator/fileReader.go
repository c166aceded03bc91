package main

import (
	"fmt"
	"io"

	evaluation "github.com/next-exp/evaluation_go/pkg"
)

// FileReader applies the skip and max events settings to an event stream.
type FileReader struct {
	Reader   *evaluation.EventReader
	EvtCount int
}

func NewFileReader(reader *evaluation.EventReader) *FileReader {
	return &FileReader{Reader: reader, EvtCount: -1}
}

func (f *FileReader) getNextEvent() (*evaluation.Event, error) {
	for {
		event, err := f.Reader.Next()
		if err != nil {
			return nil, err
		}
		f.EvtCount++
		if f.EvtCount >= configuration.MaxEvents {
			if VerbosityLevel > 0 {
				logger.Info("Max events reached", "fileReader")
			}
			return nil, io.EOF
		}
		if f.EvtCount < configuration.Skip {
			if VerbosityLevel > 0 {
				message := fmt.Sprintf("Skipping event %d with ID %d", f.EvtCount, event.EventID)
				logger.Info(message, "fileReader")
			}
			continue
		}
		if VerbosityLevel > 1 {
			message := fmt.Sprintf("Reading event %d with ID %d", f.EvtCount, event.EventID)
			logger.Info(message, "fileReader")
		}
		return event, nil
	}
}
