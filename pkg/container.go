package evaluation

import (
	"cmp"
	"slices"
)

// Container holds the records of one event. Samples and waveforms are
// returned sorted by lvl1 BCO, records with the same BCO stay in insertion
// order. Taggers are kept in arrival order.
//
// Records are appended as they come and sorted once, on the first read after
// an out of order append.
type Container struct {
	samples   []Sample
	waveforms []Waveform
	taggers   []TaggerRecord

	samplesUnsorted   bool
	waveformsUnsorted bool
}

func NewContainer() *Container {
	return &Container{
		samples:   make([]Sample, 0),
		waveforms: make([]Waveform, 0),
		taggers:   make([]TaggerRecord, 0),
	}
}

// Reset empties the container. Must be called at the start of every event.
func (c *Container) Reset() {
	c.samples = c.samples[:0]
	c.waveforms = c.waveforms[:0]
	c.taggers = c.taggers[:0]
	c.samplesUnsorted = false
	c.waveformsUnsorted = false
}

func (c *Container) AppendSample(sample Sample) {
	if n := len(c.samples); n > 0 && c.samples[n-1].Lvl1Bco > sample.Lvl1Bco {
		c.samplesUnsorted = true
	}
	c.samples = append(c.samples, sample)
}

func (c *Container) AppendWaveform(waveform Waveform) {
	if n := len(c.waveforms); n > 0 && c.waveforms[n-1].Lvl1Bco > waveform.Lvl1Bco {
		c.waveformsUnsorted = true
	}
	c.waveforms = append(c.waveforms, waveform)
}

func (c *Container) AppendTagger(tagger TaggerRecord) {
	c.taggers = append(c.taggers, tagger)
}

// sort restores the lvl1 BCO order. The sort is stable, so records with the
// same BCO keep their insertion order.
func (c *Container) sort() {
	if c.samplesUnsorted {
		slices.SortStableFunc(c.samples, func(a, b Sample) int {
			return cmp.Compare(a.Lvl1Bco, b.Lvl1Bco)
		})
		c.samplesUnsorted = false
	}
	if c.waveformsUnsorted {
		slices.SortStableFunc(c.waveforms, func(a, b Waveform) int {
			return cmp.Compare(a.Lvl1Bco, b.Lvl1Bco)
		})
		c.waveformsUnsorted = false
	}
}

// Samples returns a copy of the event samples.
func (c *Container) Samples() []Sample {
	c.sort()
	return slices.Clone(c.samples)
}

// Waveforms returns a copy of the event waveforms.
func (c *Container) Waveforms() []Waveform {
	c.sort()
	return slices.Clone(c.waveforms)
}

// Taggers returns a copy of the event taggers.
func (c *Container) Taggers() []TaggerRecord {
	return slices.Clone(c.taggers)
}

func (c *Container) NSamples() int { return len(c.samples) }
func (c *Container) NWaveforms() int { return len(c.waveforms) }
func (c *Container) NTaggers() int { return len(c.taggers) }

// Clone returns an independent copy of the container.
func (c *Container) Clone() *Container {
	c.sort()
	return &Container{
		samples:   slices.Clone(c.samples),
		waveforms: slices.Clone(c.waveforms),
		taggers:   slices.Clone(c.taggers),
	}
}
