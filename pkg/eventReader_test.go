package evaluation

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestEventReader(t *testing.T) {
	stream := `{"run_number": 123, "event_id": 1, "event_type": 1, "packets": [{"packet_id": 5001, "taggers": [{"is_lvl1": true, "bco": 1000}], "waveforms": [{"fee_id": 1, "channel": 5, "fee_bco": 55, "samples": [1, 2, 3]}]}]}

{"run_number": 123, "event_id": 2, "event_type": 12}`

	reader := NewEventReader(strings.NewReader(stream))
	defer reader.Close()

	event, err := reader.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.RunNumber != 123 || event.EventID != 1 || len(event.Packets) != 1 {
		t.Fatalf("unexpected event %+v", event)
	}
	packet := event.Packet(5001)
	if packet == nil {
		t.Fatal("expected packet 5001")
	}
	if event.Packet(5000) != nil {
		t.Fatal("expected packet 5000 to be missing")
	}
	if len(packet.Taggers) != 1 || !packet.Taggers[0].IsLvl1 || packet.Taggers[0].Bco != 1000 {
		t.Fatalf("unexpected taggers %+v", packet.Taggers)
	}
	waveform := packet.Waveforms[0]
	if waveform.FeeID != 1 || waveform.Channel != 5 || waveform.FeeBco != 55 || len(waveform.Samples) != 3 {
		t.Fatalf("unexpected waveform %+v", waveform)
	}

	event, err = reader.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.EventID != 2 || event.EventType != 12 {
		t.Fatalf("unexpected event %+v", event)
	}

	if _, err := reader.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestEventReaderMalformedLine(t *testing.T) {
	reader := NewEventReader(strings.NewReader("{\"event_id\": 1}\n{\"event_id\": \n"))

	if _, err := reader.Next(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := reader.Next()
	if err == nil || errors.Is(err, io.EOF) {
		t.Fatalf("expected decoding error, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected line number in error, got %v", err)
	}
}

func TestOpenEventFileMissing(t *testing.T) {
	_, err := OpenEventFile("/nonexistent/events.jsonl")
	var openErr *ErrOpenFile
	if !errors.As(err, &openErr) {
		t.Fatalf("expected ErrOpenFile, got %v", err)
	}
}
