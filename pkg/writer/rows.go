package writer

import (
	evaluation "github.com/next-exp/evaluation_go/pkg"
)

type EventHDF5 struct {
	evt_number  int32
	run_number  int32
	n_taggers   int32
	n_samples   int32
	n_waveforms int32
}

type TaggerHDF5 struct {
	evt_number  int32
	packet_id   int32
	tagger_type uint16
	is_lvl1     uint8
	is_endat    uint8
	bco         uint64
	last_bco    uint64
	lvl1_count  uint32
	endat_count uint32
}

type SampleHDF5 struct {
	evt_number      int32
	packet_id       int32
	fee_id          uint16
	layer           uint16
	tile            uint16
	channel         uint16
	strip           int32
	sampa_address   uint16
	sampa_channel   uint16
	fee_bco         uint32
	lvl1_bco        uint64
	lvl1_bco_masked uint32
	checksum        uint16
	checksum_error  uint8
	sample          uint16
	adc             uint16
	pedestal        float64
	rms             float64
}

type WaveformHDF5 struct {
	evt_number      int32
	packet_id       int32
	fee_id          uint16
	layer           uint16
	tile            uint16
	channel         uint16
	strip           int32
	sampa_address   uint16
	sampa_channel   uint16
	fee_bco         uint32
	lvl1_bco        uint64
	lvl1_bco_masked uint32
	checksum        uint16
	checksum_error  uint8
	sample_max      uint16
	adc_max         uint16
	pedestal        float64
	rms             float64
	is_signal       uint8
}

type BcoCountHDF5 struct {
	lvl1_bco   uint64
	nwaveforms uint64
}

func boolToUint8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func taggerRows(eventID uint32, taggers []evaluation.TaggerRecord) []TaggerHDF5 {
	rows := make([]TaggerHDF5, len(taggers))
	for i, tagger := range taggers {
		rows[i] = TaggerHDF5{
			evt_number:  int32(eventID),
			packet_id:   int32(tagger.PacketID),
			tagger_type: tagger.TaggerType,
			is_lvl1:     boolToUint8(tagger.IsLvl1),
			is_endat:    boolToUint8(tagger.IsEndat),
			bco:         tagger.Bco,
			last_bco:    tagger.LastBco,
			lvl1_count:  tagger.Lvl1Count,
			endat_count: tagger.EndatCount,
		}
	}
	return rows
}

func sampleRows(eventID uint32, samples []evaluation.Sample) []SampleHDF5 {
	rows := make([]SampleHDF5, len(samples))
	for i, sample := range samples {
		rows[i] = SampleHDF5{
			evt_number:      int32(eventID),
			packet_id:       int32(sample.PacketID),
			fee_id:          sample.FeeID,
			layer:           sample.Layer,
			tile:            sample.Tile,
			channel:         sample.Channel,
			strip:           sample.Strip,
			sampa_address:   sample.SampaAddress,
			sampa_channel:   sample.SampaChannel,
			fee_bco:         sample.FeeBco,
			lvl1_bco:        sample.Lvl1Bco,
			lvl1_bco_masked: sample.Lvl1BcoMasked,
			checksum:        sample.Checksum,
			checksum_error:  boolToUint8(sample.ChecksumError),
			sample:          sample.SampleIndex,
			adc:             sample.Adc,
			pedestal:        sample.Pedestal,
			rms:             sample.Rms,
		}
	}
	return rows
}

func waveformRows(eventID uint32, waveforms []evaluation.Waveform) []WaveformHDF5 {
	rows := make([]WaveformHDF5, len(waveforms))
	for i, waveform := range waveforms {
		rows[i] = WaveformHDF5{
			evt_number:      int32(eventID),
			packet_id:       int32(waveform.PacketID),
			fee_id:          waveform.FeeID,
			layer:           waveform.Layer,
			tile:            waveform.Tile,
			channel:         waveform.Channel,
			strip:           waveform.Strip,
			sampa_address:   waveform.SampaAddress,
			sampa_channel:   waveform.SampaChannel,
			fee_bco:         waveform.FeeBco,
			lvl1_bco:        waveform.Lvl1Bco,
			lvl1_bco_masked: waveform.Lvl1BcoMasked,
			checksum:        waveform.Checksum,
			checksum_error:  boolToUint8(waveform.ChecksumError),
			sample_max:      waveform.SampleMax,
			adc_max:         waveform.AdcMax,
			pedestal:        waveform.Pedestal,
			rms:             waveform.Rms,
			is_signal:       boolToUint8(waveform.IsSignal),
		}
	}
	return rows
}

func bcoCountRows(entries []evaluation.BcoCount) []BcoCountHDF5 {
	rows := make([]BcoCountHDF5, len(entries))
	for i, entry := range entries {
		rows[i] = BcoCountHDF5{
			lvl1_bco:   entry.Bco,
			nwaveforms: entry.Count,
		}
	}
	return rows
}
