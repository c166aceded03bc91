package evaluation

import (
	"errors"
	"fmt"
)

// ErrDiscardEvent is returned by Engine.ProcessEvent for events that do not
// carry detector data.
var ErrDiscardEvent = errors.New("event discarded")

// ErrOpenFile represents an error when opening a file.
type ErrOpenFile struct {
	Filename string
	Err      error
}

func (e *ErrOpenFile) Error() string {
	return fmt.Sprintf("error opening file %q: %v", e.Filename, e.Err)
}

func (e *ErrOpenFile) Unwrap() error { return e.Err }

// ErrCreateGroup represents an error when creating a group.
type ErrCreateGroup struct {
	GroupName string
	Err       error
}

func (e *ErrCreateGroup) Error() string {
	return fmt.Sprintf("error creating group %q: %v", e.GroupName, e.Err)
}

func (e *ErrCreateGroup) Unwrap() error { return e.Err }

// ErrCreateTable represents an error when creating a table.
type ErrCreateTable struct {
	TableName string
	Err       error
}

func (e *ErrCreateTable) Error() string {
	return fmt.Sprintf("error creating table %q: %v", e.TableName, e.Err)
}

func (e *ErrCreateTable) Unwrap() error { return e.Err }

// ErrWriteTable represents an error when appending rows to a table.
type ErrWriteTable struct {
	TableName string
	Err       error
}

func (e *ErrWriteTable) Error() string {
	return fmt.Sprintf("error writing table %q: %v", e.TableName, e.Err)
}

func (e *ErrWriteTable) Unwrap() error { return e.Err }

// ErrMissingPacket is reported when a configured packet is not in the event.
type ErrMissingPacket struct {
	PacketID int
	EventID  uint32
}

func (e *ErrMissingPacket) Error() string {
	return fmt.Sprintf("packet %d not found in event %d", e.PacketID, e.EventID)
}

// ErrInvalidChannel is reported when a waveform channel is out of range.
type ErrInvalidChannel struct {
	FeeID   uint16
	Channel uint16
}

func (e *ErrInvalidChannel) Error() string {
	return fmt.Sprintf("invalid channel %d for fee %d", e.Channel, e.FeeID)
}
