package main

import (
	"errors"
	"fmt"
	"io"

	evaluation "github.com/next-exp/evaluation_go/pkg"
)

type evaluatedEvent struct {
	Event     *evaluation.Event
	Container *evaluation.Container
}

// evaluateEvents runs the whole input through the engine and keeps a copy of
// every container, so that the output can be written several times.
func evaluateEvents(reader *evaluation.EventReader, engine *evaluation.Engine, maxEvents int) ([]evaluatedEvent, error) {
	events := make([]evaluatedEvent, 0)
	for len(events) < maxEvents {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return events, fmt.Errorf("error reading event: %w", err)
		}
		container, err := engine.ProcessEvent(event)
		if errors.Is(err, evaluation.ErrDiscardEvent) {
			continue
		}
		if err != nil {
			return events, err
		}
		events = append(events, evaluatedEvent{Event: event, Container: container.Clone()})
	}
	return events, nil
}
