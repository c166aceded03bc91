package evaluation

// TaggerCollector reads the tagger table of a packet.
type TaggerCollector struct {
	// RecordTaggers appends every tagger to the event container
	RecordTaggers bool
	// CollectLvl1 returns the BCOs of the lvl1 taggers
	CollectLvl1 bool
}

// CollectTaggers converts the tagger table of a packet into records, and
// returns separately the BCOs of the lvl1 taggers in table order.
func CollectTaggers(packet *Packet) ([]TaggerRecord, []uint64) {
	records := make([]TaggerRecord, 0, len(packet.Taggers))
	lvl1Bcos := make([]uint64, 0)
	for _, row := range packet.Taggers {
		tagger := TaggerRecord{
			PacketID:   packet.PacketID,
			TaggerType: row.Type,
			IsLvl1:     row.IsLvl1,
			IsEndat:    row.IsEndat,
			Bco:        row.Bco,
			LastBco:    row.LastBco,
			Lvl1Count:  row.Lvl1Count,
			EndatCount: row.EndatCount,
		}
		records = append(records, tagger)
		if tagger.IsLvl1 {
			lvl1Bcos = append(lvl1Bcos, tagger.Bco)
		}
	}
	return records, lvl1Bcos
}

// Collect reads the packet taggers, stores them in the container if
// requested and returns the lvl1 BCO candidates for the packet.
func (t TaggerCollector) Collect(packet *Packet, container *Container) []uint64 {
	records, lvl1Bcos := CollectTaggers(packet)
	if t.RecordTaggers && container != nil {
		for _, tagger := range records {
			container.AppendTagger(tagger)
		}
	}
	if !t.CollectLvl1 {
		return nil
	}
	return lvl1Bcos
}
