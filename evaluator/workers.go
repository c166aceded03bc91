package main

import (
	"errors"
	"fmt"
	"io"

	evaluation "github.com/next-exp/evaluation_go/pkg"
	"github.com/next-exp/evaluation_go/pkg/writer"
)

// sendEventsToEngine reads the input on its own goroutine. The engine itself
// must see the events in file order, so there is a single consumer.
func sendEventsToEngine(fileReader *FileReader, jobs chan<- *evaluation.Event) {
	defer close(jobs)
	for {
		event, err := fileReader.getNextEvent()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				message := fmt.Errorf("error reading event: %w", err)
				logger.Error(message.Error())
			}
			return
		}
		jobs <- event
	}
}

func processEvents(jobs <-chan *evaluation.Event, engine *evaluation.Engine, w *writer.Writer) {
	evtsProcessed := 0
	for event := range jobs {
		if processEvent(event, engine, w) {
			evtsProcessed++
		}
	}
	if VerbosityLevel > 0 {
		message := fmt.Sprintf("Events processed: %d", evtsProcessed)
		logger.Info(message, "main")
	}
}

func processEvent(event *evaluation.Event, engine *evaluation.Engine, w *writer.Writer) (processed bool) {
	defer func() {
		if r := recover(); r != nil {
			errMessage := fmt.Errorf("engine recovered from panic on event %d: %v", event.EventID, r)
			logger.Error(errMessage.Error())
			message := fmt.Sprintf("discarding event %d", event.EventID)
			logger.Error(message)
			processed = false
		}
	}()

	container, err := engine.ProcessEvent(event)
	if err != nil {
		if errors.Is(err, evaluation.ErrDiscardEvent) {
			if VerbosityLevel > 1 {
				logger.Info(err.Error(), "main")
			}
			return false
		}
		message := fmt.Errorf("error processing event %d: %w", event.EventID, err)
		logger.Error(message.Error())
		return false
	}

	if w != nil {
		if err := w.WriteEvent(event, container); err != nil {
			message := fmt.Errorf("error writing event %d: %w", event.EventID, err)
			logger.Error(message.Error())
		}
	}
	return true
}
