package evaluation

import (
	"fmt"
)

// Event types at or above this value carry no detector data.
const dataEventTypeLimit = 8

type RunSummary struct {
	EventsProcessed int
	EventsDiscarded int
	Waveforms       int
	OrphanWaveforms int
	DistinctOrphans int
	Histogram       []BcoCount
}

// Lvl1Bcos returns the distinct lvl1 BCOs of the run, in increasing order.
func (r RunSummary) Lvl1Bcos() []uint64 {
	bcos := make([]uint64, len(r.Histogram))
	for i, entry := range r.Histogram {
		bcos[i] = entry.Bco
	}
	return bcos
}

// Engine correlates the waveforms of each event with the lvl1 BCOs tagged in
// the same packet and fills the per-event container.
//
// Match states, the BCO histogram and the orphan list live for the whole run.
// The container only holds the current event. Engine is not safe for
// concurrent use: events must be processed one at a time, in order.
type Engine struct {
	config      Configuration
	mapping     MappingService
	calibration CalibrationService

	taggers   TaggerCollector
	matcher   *BcoMatcher
	peaks     PeakExtractor
	container *Container
	histogram *BcoHistogram
	orphans   *OrphanTracker

	eventsProcessed int
	eventsDiscarded int
	waveforms       int
	orphanWaveforms int
}

// NewEngine builds an engine for one run. Zero tolerance, channel count and
// packet list in config are replaced by their defaults.
func NewEngine(config Configuration, mapping MappingService, calibration CalibrationService) *Engine {
	if config.Tolerance == 0 {
		config.Tolerance = DefaultTolerance
	}
	if config.NChannelsFee == 0 {
		config.NChannelsFee = DefaultNChannelsFee
	}
	if config.PacketIDs == nil {
		config.PacketIDs = append([]int(nil), DefaultPacketIDs...)
	}
	if mapping == nil {
		mapping = NewChannelMap()
	}
	if calibration == nil {
		calibration = NewCalibrationData()
	}
	evalWaveforms := config.EvalSample || config.EvalWaveform
	return &Engine{
		config:      config,
		mapping:     mapping,
		calibration: calibration,
		taggers: TaggerCollector{
			RecordTaggers: config.EvalTagger,
			CollectLvl1:   evalWaveforms,
		},
		matcher:   NewBcoMatcher(config.Tolerance),
		peaks:     NewPeakExtractor(config),
		container: NewContainer(),
		histogram: NewBcoHistogram(),
		orphans:   NewOrphanTracker(),
	}
}

func (e *Engine) Matcher() *BcoMatcher { return e.matcher }
func (e *Engine) Histogram() *BcoHistogram { return e.histogram }
func (e *Engine) Orphans() *OrphanTracker { return e.orphans }
func (e *Engine) Container() *Container { return e.container }
func (e *Engine) Configuration() Configuration { return e.config }

// ProcessEvent fills the container with the records of event. The returned
// container is reused by the next call. Non data events are rejected with
// ErrDiscardEvent and leave the engine untouched.
func (e *Engine) ProcessEvent(event *Event) (*Container, error) {
	if event.EventType >= dataEventTypeLimit {
		e.eventsDiscarded++
		return nil, fmt.Errorf("event %d has type %d: %w", event.EventID, event.EventType, ErrDiscardEvent)
	}

	e.container.Reset()
	for _, packetID := range e.config.PacketIDs {
		packet := event.Packet(packetID)
		if packet == nil {
			if e.config.Verbosity > 1 {
				err := &ErrMissingPacket{PacketID: packetID, EventID: event.EventID}
				logger.Info(err.Error(), "engine")
			}
			continue
		}
		e.processPacket(packet)
	}
	e.eventsProcessed++
	return e.container, nil
}

func (e *Engine) processPacket(packet *Packet) {
	lvl1Bcos := e.taggers.Collect(packet, e.container)

	if e.config.Verbosity > 0 {
		message := fmt.Sprintf("packet: %d taggers: %d n_lvl1_bco: %d n_waveform: %d",
			packet.PacketID, len(packet.Taggers), len(lvl1Bcos), len(packet.Waveforms))
		logger.Info(message, "engine")
		if len(lvl1Bcos) > 0 {
			message = fmt.Sprintf("packet: %d bco: %#x", packet.PacketID, lvl1Bcos)
			logger.Info(message, "engine")
		}
	}

	if !e.config.EvalSample && !e.config.EvalWaveform {
		return
	}

	e.matcher.SetCandidates(lvl1Bcos)
	for i := range packet.Waveforms {
		e.processWaveform(packet.PacketID, &packet.Waveforms[i])
	}
}

func (e *Engine) processWaveform(packetID int, row *WaveformRow) {
	sample := Sample{
		PacketID: packetID,
		FeeID:    row.FeeID,
		Channel:  row.Channel,
	}

	if sample.Channel >= e.config.NChannelsFee {
		if e.config.Verbosity > 0 {
			err := &ErrInvalidChannel{FeeID: sample.FeeID, Channel: sample.Channel}
			logger.Info(err.Error(), "engine")
		}
		return
	}

	sample.FeeBco = row.FeeBco
	if lvl1Bco, ok := e.matcher.Match(sample.FeeID, sample.FeeBco); ok {
		sample.SetLvl1Bco(lvl1Bco)
	} else {
		e.orphanWaveforms++
		if e.orphans.Report(sample.FeeID, sample.FeeBco) && e.config.Verbosity > 0 {
			message := fmt.Sprintf("fee_id: %d fee_bco: %#x gtm_bco: none", sample.FeeID, sample.FeeBco)
			logger.Info(message, "engine")
		}
	}

	sample.Checksum = row.Checksum
	sample.ChecksumError = row.ChecksumError

	e.histogram.Increment(sample.Lvl1Bco)
	e.waveforms++

	sample.SampaAddress = row.SampaAddress
	sample.SampaChannel = row.SampaChannel
	sample.Layer, sample.Tile, sample.Strip = e.mapping.Resolve(sample.FeeID, sample.Channel)
	pedestal, rms := e.calibration.Lookup(sample.FeeID, sample.Channel)
	sample.Pedestal = pedestal
	sample.Rms = rms

	if e.config.Verbosity > 1 {
		message := fmt.Sprintf("fee: %d layer: %d tile: %d lvl1_bco: %d fee_bco: %d error: %t channel: %d strip: %d samples: %d",
			sample.FeeID, sample.Layer, sample.Tile, sample.Lvl1Bco, sample.FeeBco,
			sample.ChecksumError, sample.Channel, sample.Strip, row.SampleCount)
		logger.Info(message, "engine")
	}

	var emit func(Sample)
	if e.config.EvalSample {
		emit = e.container.AppendSample
	}
	peak := e.peaks.Scan(sample, row.Samples, row.SampleCount, emit)

	if e.config.EvalWaveform {
		isSignal := e.peaks.IsSignal(peak.Adc, peak.SampleIndex, pedestal, rms)
		e.container.AppendWaveform(NewWaveform(peak, isSignal))
	}
}

// End closes the run: the BCO histogram is drained into the summary.
func (e *Engine) End() RunSummary {
	summary := RunSummary{
		EventsProcessed: e.eventsProcessed,
		EventsDiscarded: e.eventsDiscarded,
		Waveforms:       e.waveforms,
		OrphanWaveforms: e.orphanWaveforms,
		DistinctOrphans: e.orphans.Len(),
		Histogram:       e.histogram.Drain(),
	}
	if e.config.Verbosity > 0 {
		for _, entry := range summary.Histogram {
			message := fmt.Sprintf("bco: %d, nwaveforms: %d", entry.Bco, entry.Count)
			logger.Info(message, "engine")
		}
	}
	return summary
}
