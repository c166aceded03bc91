package evaluation

import (
	"testing"
)

func TestResetEmptiesContainer(t *testing.T) {
	c := NewContainer()
	c.Reset()
	assertContainerLengths(t, c, 0, 0, 0)

	c.AppendSample(Sample{Lvl1Bco: 1})
	c.AppendWaveform(Waveform{Lvl1Bco: 1})
	c.AppendTagger(TaggerRecord{Bco: 1})
	c.AppendTagger(TaggerRecord{Bco: 2})
	assertContainerLengths(t, c, 1, 1, 2)

	c.Reset()
	assertContainerLengths(t, c, 0, 0, 0)
	if len(c.Samples()) != 0 || len(c.Waveforms()) != 0 || len(c.Taggers()) != 0 {
		t.Fatal("expected empty snapshots after reset")
	}
}

func assertContainerLengths(t *testing.T, c *Container, samples, waveforms, taggers int) {
	t.Helper()
	if c.NSamples() != samples || c.NWaveforms() != waveforms || c.NTaggers() != taggers {
		t.Fatalf("expected %d/%d/%d records, got %d/%d/%d", samples, waveforms, taggers,
			c.NSamples(), c.NWaveforms(), c.NTaggers())
	}
}

func TestContainerKeepsStableOrderByBco(t *testing.T) {
	c := NewContainer()
	inputs := []struct {
		bco     uint64
		channel uint16
	}{
		{2000, 1},
		{1000, 2},
		{2000, 3},
		{1000, 4},
		{0, 5},
	}
	for _, in := range inputs {
		c.AppendWaveform(Waveform{Lvl1Bco: in.bco, Channel: in.channel})
		c.AppendSample(Sample{Lvl1Bco: in.bco, Channel: in.channel})
	}

	expected := []uint16{5, 2, 4, 1, 3}
	waveforms := c.Waveforms()
	samples := c.Samples()
	for i, channel := range expected {
		if waveforms[i].Channel != channel {
			t.Fatalf("waveform %d: expected channel %d, got %d", i, channel, waveforms[i].Channel)
		}
		if samples[i].Channel != channel {
			t.Fatalf("sample %d: expected channel %d, got %d", i, channel, samples[i].Channel)
		}
	}
}

func TestContainerTaggersKeepArrivalOrder(t *testing.T) {
	c := NewContainer()
	for _, bco := range []uint64{30, 10, 20} {
		c.AppendTagger(TaggerRecord{Bco: bco})
	}
	taggers := c.Taggers()
	if taggers[0].Bco != 30 || taggers[1].Bco != 10 || taggers[2].Bco != 20 {
		t.Fatalf("expected arrival order, got %+v", taggers)
	}
}

func TestContainerSnapshotsAreCopies(t *testing.T) {
	c := NewContainer()
	c.AppendWaveform(Waveform{Lvl1Bco: 1, AdcMax: 10})

	snapshot := c.Waveforms()
	snapshot[0].AdcMax = 99
	if c.Waveforms()[0].AdcMax != 10 {
		t.Fatal("expected container to be unaffected by snapshot changes")
	}

	clone := c.Clone()
	c.Reset()
	if clone.NWaveforms() != 1 {
		t.Fatal("expected clone to survive a reset of the original")
	}
}

func TestContainerSortsAfterLateAppends(t *testing.T) {
	c := NewContainer()
	for i, bco := range []uint64{1000, 1000, 3000} {
		c.AppendSample(Sample{Lvl1Bco: bco, SampleIndex: uint16(i)})
	}
	if samples := c.Samples(); samples[2].Lvl1Bco != 3000 {
		t.Fatalf("expected in order samples, got %+v", samples)
	}

	// a second packet appends earlier bcos after a read
	for i, bco := range []uint64{2000, 1000} {
		c.AppendSample(Sample{Lvl1Bco: bco, SampleIndex: uint16(10 + i)})
	}
	expected := []uint16{0, 1, 11, 10, 2}
	samples := c.Samples()
	for i, index := range expected {
		if samples[i].SampleIndex != index {
			t.Fatalf("sample %d: expected index %d, got %d", i, index, samples[i].SampleIndex)
		}
	}

	clone := c.Clone()
	if clone.Samples()[4].Lvl1Bco != 3000 {
		t.Fatal("expected clone to be sorted")
	}
}
