package evaluation

// Event is one decoded event as handed over by the external packet decoder.
type Event struct {
	RunNumber uint32    `json:"run_number"`
	EventID   uint32    `json:"event_id"`
	EventType uint16    `json:"event_type"`
	Packets   []*Packet `json:"packets"`
}

// Packet returns the packet with the given id, or nil if the event does not
// have it.
func (e *Event) Packet(packetID int) *Packet {
	for _, packet := range e.Packets {
		if packet != nil && packet.PacketID == packetID {
			return packet
		}
	}
	return nil
}

type Packet struct {
	PacketID  int           `json:"packet_id"`
	Taggers   []TaggerRow   `json:"taggers"`
	Waveforms []WaveformRow `json:"waveforms"`
}

type TaggerRow struct {
	Type       uint16 `json:"type"`
	IsLvl1     bool   `json:"is_lvl1"`
	IsEndat    bool   `json:"is_endat"`
	Bco        uint64 `json:"bco"`
	LastBco    uint64 `json:"last_bco"`
	Lvl1Count  uint32 `json:"lvl1_count"`
	EndatCount uint32 `json:"endat_count"`
}

type WaveformRow struct {
	FeeID         uint16   `json:"fee_id"`
	Channel       uint16   `json:"channel"`
	FeeBco        uint32   `json:"fee_bco"`
	Checksum      uint16   `json:"checksum"`
	ChecksumError bool     `json:"checksum_error"`
	SampaAddress  uint16   `json:"sampa_address"`
	SampaChannel  uint16   `json:"sampa_channel"`
	SampleCount   uint16   `json:"sample_count"`
	Samples       []uint16 `json:"samples"`
}

type TaggerRecord struct {
	PacketID   int
	TaggerType uint16
	IsLvl1     bool
	IsEndat    bool
	Bco        uint64
	LastBco    uint64
	Lvl1Count  uint32
	EndatCount uint32
}

// Lvl1BcoMask keeps the bits of the lvl1 BCO that fit in a FEE BCO word.
const Lvl1BcoMask uint64 = 0xFFFFF

type Sample struct {
	PacketID      int
	FeeID         uint16
	Layer         uint16
	Tile          uint16
	Channel       uint16
	Strip         int32
	SampaAddress  uint16
	SampaChannel  uint16
	FeeBco        uint32
	Lvl1Bco       uint64
	Lvl1BcoMasked uint32
	Checksum      uint16
	ChecksumError bool
	SampleIndex   uint16
	Adc           uint16
	Pedestal      float64
	Rms           float64
}

// SetLvl1Bco assigns the lvl1 BCO together with its masked copy.
func (s *Sample) SetLvl1Bco(bco uint64) {
	s.Lvl1Bco = bco
	s.Lvl1BcoMasked = uint32(bco & Lvl1BcoMask)
}

// Waveform is the maximum-ADC sample of one channel scan.
type Waveform struct {
	PacketID      int
	FeeID         uint16
	Layer         uint16
	Tile          uint16
	Channel       uint16
	Strip         int32
	SampaAddress  uint16
	SampaChannel  uint16
	FeeBco        uint32
	Lvl1Bco       uint64
	Lvl1BcoMasked uint32
	Checksum      uint16
	ChecksumError bool
	SampleMax     uint16
	AdcMax        uint16
	Pedestal      float64
	Rms           float64
	IsSignal      bool
}

func NewWaveform(peak Sample, isSignal bool) Waveform {
	return Waveform{
		PacketID:      peak.PacketID,
		FeeID:         peak.FeeID,
		Layer:         peak.Layer,
		Tile:          peak.Tile,
		Channel:       peak.Channel,
		Strip:         peak.Strip,
		SampaAddress:  peak.SampaAddress,
		SampaChannel:  peak.SampaChannel,
		FeeBco:        peak.FeeBco,
		Lvl1Bco:       peak.Lvl1Bco,
		Lvl1BcoMasked: peak.Lvl1BcoMasked,
		Checksum:      peak.Checksum,
		ChecksumError: peak.ChecksumError,
		SampleMax:     peak.SampleIndex,
		AdcMax:        peak.Adc,
		Pedestal:      peak.Pedestal,
		Rms:           peak.Rms,
		IsSignal:      isSignal,
	}
}
