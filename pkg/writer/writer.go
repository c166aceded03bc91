package writer

import (
	"errors"
	"fmt"

	hdf5 "github.com/jmbenlloch/go-hdf5"
	evaluation "github.com/next-exp/evaluation_go/pkg"
)

const (
	GroupName     = "Evaluation"
	EventTable    = "events"
	TaggerTable   = "taggers"
	SampleTable   = "samples"
	WaveformTable = "waveforms"
	BcoTable      = "bco"
)

// Writer stores the evaluation containers in an HDF5 file, one row per
// record, each row tagged with its event number.
type Writer struct {
	File          *hdf5.File
	Filename      string
	Group         *hdf5.Group
	EventTable    *hdf5.Dataset
	TaggerTable   *hdf5.Dataset
	SampleTable   *hdf5.Dataset
	WaveformTable *hdf5.Dataset
	BcoTable      *hdf5.Dataset
	EvtCounter    int
}

func NewWriter(filename string, compressionLevel int) (*Writer, error) {
	writer := &Writer{Filename: filename}

	var err error
	writer.File, err = openFile(filename)
	if err != nil {
		return nil, err
	}
	writer.Group, err = createGroup(writer.File, GroupName)
	if err != nil {
		return nil, errors.Join(err, writer.Close())
	}

	tables := []struct {
		dataset  **hdf5.Dataset
		name     string
		datatype interface{}
	}{
		{&writer.EventTable, EventTable, EventHDF5{}},
		{&writer.TaggerTable, TaggerTable, TaggerHDF5{}},
		{&writer.SampleTable, SampleTable, SampleHDF5{}},
		{&writer.WaveformTable, WaveformTable, WaveformHDF5{}},
		{&writer.BcoTable, BcoTable, BcoCountHDF5{}},
	}
	for _, table := range tables {
		*table.dataset, err = createTable(writer.Group, table.name, table.datatype, compressionLevel)
		if err != nil {
			return nil, errors.Join(err, writer.Close())
		}
	}
	return writer, nil
}

type tableWrite struct {
	name  string
	write func() error
}

// eventWrites lists the appends of one event. The events row goes last, so
// an event listed in the events table has all its records in the file.
func (w *Writer) eventWrites(event *evaluation.Event, container *evaluation.Container) []tableWrite {
	eventRow := []EventHDF5{{
		evt_number:  int32(event.EventID),
		run_number:  int32(event.RunNumber),
		n_taggers:   int32(container.NTaggers()),
		n_samples:   int32(container.NSamples()),
		n_waveforms: int32(container.NWaveforms()),
	}}
	taggers := taggerRows(event.EventID, container.Taggers())
	samples := sampleRows(event.EventID, container.Samples())
	waveforms := waveformRows(event.EventID, container.Waveforms())

	return []tableWrite{
		{TaggerTable, func() error { return writeArrayToTable(w.TaggerTable, TaggerTable, &taggers) }},
		{SampleTable, func() error { return writeArrayToTable(w.SampleTable, SampleTable, &samples) }},
		{WaveformTable, func() error { return writeArrayToTable(w.WaveformTable, WaveformTable, &waveforms) }},
		{EventTable, func() error { return writeArrayToTable(w.EventTable, EventTable, &eventRow) }},
	}
}

// WriteEvent appends the records of one event. A failure stops the event
// before its events row is written, but the record tables written until then
// are kept: readers should select records by the events table.
func (w *Writer) WriteEvent(event *evaluation.Event, container *evaluation.Container) error {
	for _, table := range w.eventWrites(event, container) {
		if err := table.write(); err != nil {
			return fmt.Errorf("event %d: %w", event.EventID, err)
		}
	}
	w.EvtCounter++
	return nil
}

// WriteBcoHistogram stores the run BCO histogram.
func (w *Writer) WriteBcoHistogram(entries []evaluation.BcoCount) error {
	rows := bcoCountRows(entries)
	return writeArrayToTable(w.BcoTable, BcoTable, &rows)
}

func (w *Writer) Close() error {
	var errs []error

	datasets := []struct {
		dataset *hdf5.Dataset
		name    string
	}{
		{w.EventTable, "event table"},
		{w.TaggerTable, "tagger table"},
		{w.SampleTable, "sample table"},
		{w.WaveformTable, "waveform table"},
		{w.BcoTable, "bco table"},
	}
	for _, d := range datasets {
		if d.dataset == nil {
			continue
		}
		if err := d.dataset.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing %s: %w", d.name, err))
		}
	}
	if w.Group != nil {
		if err := w.Group.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing %s group: %w", GroupName, err))
		}
	}
	if w.File != nil {
		if err := w.File.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing file: %w", err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
