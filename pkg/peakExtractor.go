package evaluation

// PeakExtractor finds the maximum of a channel waveform and classifies it.
type PeakExtractor struct {
	MaxSamples uint16
	AdcInvalid uint16
	MinAdc     uint16
	SampleMin  uint16
	SampleMax  uint16
	NSigma     float64
}

func NewPeakExtractor(config Configuration) PeakExtractor {
	maxSamples := config.MaxSamples
	if maxSamples == 0 {
		maxSamples = DefaultMaxSamples
	}
	return PeakExtractor{
		MaxSamples: maxSamples,
		AdcInvalid: config.AdcInvalid,
		MinAdc:     config.MinAdc,
		SampleMin:  config.SampleMin,
		SampleMax:  config.SampleMax,
		NSigma:     config.NSigma,
	}
}

// Scan walks over the first sampleCount entries of adcs (capped to
// MaxSamples), skipping invalid ADC values. Each valid sample is built from
// base and passed to emit when emit is not nil. The sample with the highest
// ADC is returned; on ties the first one wins. If every sample is invalid
// the zero Sample is returned.
func (p PeakExtractor) Scan(base Sample, adcs []uint16, sampleCount uint16, emit func(Sample)) Sample {
	n := int(min(sampleCount, p.MaxSamples))
	if n > len(adcs) {
		n = len(adcs)
	}

	var peak Sample
	found := false
	sample := base
	for i := 0; i < n; i++ {
		adc := adcs[i]
		if adc == p.AdcInvalid {
			continue
		}
		sample.SampleIndex = uint16(i)
		sample.Adc = adc
		if emit != nil {
			emit(sample)
		}
		if !found || sample.Adc > peak.Adc {
			peak = sample
			found = true
		}
	}
	return peak
}

// IsSignal tells whether a waveform maximum stands above the channel noise
// and sits inside the sample window.
func (p PeakExtractor) IsSignal(adcMax uint16, sampleMax uint16, pedestal float64, rms float64) bool {
	return rms > 0 &&
		adcMax >= p.MinAdc &&
		sampleMax >= p.SampleMin &&
		sampleMax < p.SampleMax &&
		float64(adcMax) > pedestal+p.NSigma*rms
}
