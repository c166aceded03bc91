package evaluation

import (
	"slices"
	"testing"
)

func testExtractor() PeakExtractor {
	return PeakExtractor{
		MaxSamples: DefaultMaxSamples,
		AdcInvalid: DefaultAdcInvalid,
		MinAdc:     0,
		SampleMin:  0,
		SampleMax:  1024,
		NSigma:     3,
	}
}

func TestScanFirstMaximumWins(t *testing.T) {
	p := testExtractor()
	adcs := []uint16{5, 10, 7, 10}

	peak := p.Scan(Sample{FeeID: 2, Channel: 12}, adcs, uint16(len(adcs)), nil)
	if peak.SampleIndex != 1 || peak.Adc != 10 {
		t.Fatalf("expected peak at sample 1 with adc 10, got sample %d adc %d", peak.SampleIndex, peak.Adc)
	}
	if peak.FeeID != 2 || peak.Channel != 12 {
		t.Fatalf("expected peak to keep the channel fields, got %+v", peak)
	}
}

func TestScanSkipsInvalidAdc(t *testing.T) {
	p := testExtractor()
	adcs := []uint16{DefaultAdcInvalid, 3, DefaultAdcInvalid, 4}

	var emitted []uint16
	peak := p.Scan(Sample{}, adcs, uint16(len(adcs)), func(s Sample) {
		emitted = append(emitted, s.SampleIndex)
	})
	if peak.SampleIndex != 3 || peak.Adc != 4 {
		t.Fatalf("expected peak at sample 3 with adc 4, got sample %d adc %d", peak.SampleIndex, peak.Adc)
	}
	if !slices.Equal(emitted, []uint16{1, 3}) {
		t.Fatalf("expected samples 1 and 3 to be emitted, got %v", emitted)
	}
}

func TestScanAllInvalidReturnsZeroSample(t *testing.T) {
	p := testExtractor()
	adcs := []uint16{DefaultAdcInvalid, DefaultAdcInvalid}

	emitted := 0
	peak := p.Scan(Sample{FeeID: 9, FeeBco: 100}, adcs, uint16(len(adcs)), func(Sample) { emitted++ })
	if peak != (Sample{}) {
		t.Fatalf("expected zero sample, got %+v", peak)
	}
	if emitted != 0 {
		t.Fatalf("expected no emitted samples, got %d", emitted)
	}
}

func TestScanRespectsSampleCaps(t *testing.T) {
	p := testExtractor()
	p.MaxSamples = 4
	adcs := []uint16{1, 2, 3, 4, 50, 60}

	peak := p.Scan(Sample{}, adcs, uint16(len(adcs)), nil)
	if peak.SampleIndex != 3 || peak.Adc != 4 {
		t.Fatalf("expected scan capped at 4 samples, got sample %d adc %d", peak.SampleIndex, peak.Adc)
	}

	peak = testExtractor().Scan(Sample{}, adcs, 2, nil)
	if peak.SampleIndex != 1 || peak.Adc != 2 {
		t.Fatalf("expected scan limited by sample count, got sample %d adc %d", peak.SampleIndex, peak.Adc)
	}

	peak = testExtractor().Scan(Sample{}, adcs[:3], 100, nil)
	if peak.SampleIndex != 2 || peak.Adc != 3 {
		t.Fatalf("expected scan limited by array length, got sample %d adc %d", peak.SampleIndex, peak.Adc)
	}
}

func TestIsSignal(t *testing.T) {
	tests := []struct {
		name      string
		adcMax    uint16
		sampleMax uint16
		pedestal  float64
		rms       float64
		minAdc    uint16
		expected  bool
	}{
		{"below threshold", 15, 10, 10, 2, 0, false},
		{"at threshold", 16, 10, 10, 2, 0, false},
		{"above threshold", 17, 10, 10, 2, 0, true},
		{"no rms", 500, 10, 10, 0, 0, false},
		{"below min adc", 17, 10, 10, 2, 20, false},
		{"sample past window", 17, 1024, 10, 2, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testExtractor()
			p.MinAdc = tt.minAdc
			if got := p.IsSignal(tt.adcMax, tt.sampleMax, tt.pedestal, tt.rms); got != tt.expected {
				t.Fatalf("expected %t, got %t", tt.expected, got)
			}
		})
	}

	p := testExtractor()
	p.SampleMin = 20
	if p.IsSignal(100, 19, 10, 2) {
		t.Fatal("expected sample before window to be noise")
	}
	if !p.IsSignal(100, 20, 10, 2) {
		t.Fatal("expected sample at window start to be signal")
	}
}

func TestScanZeroAdcKeepsFirstValidSample(t *testing.T) {
	p := testExtractor()
	adcs := []uint16{0, 0, DefaultAdcInvalid}

	base := Sample{PacketID: 5001, FeeID: 7, Channel: 3, FeeBco: 55}
	base.SetLvl1Bco(1000)
	peak := p.Scan(base, adcs, uint16(len(adcs)), nil)
	if peak.SampleIndex != 0 || peak.Adc != 0 {
		t.Fatalf("expected peak at sample 0 with adc 0, got sample %d adc %d", peak.SampleIndex, peak.Adc)
	}
	if peak.FeeID != 7 || peak.Channel != 3 || peak.PacketID != 5001 || peak.Lvl1Bco != 1000 {
		t.Fatalf("expected peak to keep the channel fields, got %+v", peak)
	}

	peak = p.Scan(base, []uint16{DefaultAdcInvalid, 0, 0}, 3, nil)
	if peak.SampleIndex != 1 {
		t.Fatalf("expected first valid sample to win, got sample %d", peak.SampleIndex)
	}
}
