package evaluation

import (
	"slices"
	"testing"
)

func TestCollectTaggers(t *testing.T) {
	packet := &Packet{
		PacketID: 5001,
		Taggers: []TaggerRow{
			{Type: 0x85, IsLvl1: true, Bco: 300, LastBco: 200, Lvl1Count: 4},
			{Type: 0x89, IsEndat: true, Bco: 310, EndatCount: 2},
			{Type: 0x85, IsLvl1: true, Bco: 100, LastBco: 300, Lvl1Count: 5},
		},
	}

	records, lvl1Bcos := CollectTaggers(packet)
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if !slices.Equal(lvl1Bcos, []uint64{300, 100}) {
		t.Fatalf("expected lvl1 bcos in table order, got %v", lvl1Bcos)
	}
	endat := records[1]
	if endat.PacketID != 5001 || !endat.IsEndat || endat.IsLvl1 || endat.EndatCount != 2 {
		t.Fatalf("unexpected endat record %+v", endat)
	}
	if records[2].LastBco != 300 || records[2].Lvl1Count != 5 {
		t.Fatalf("unexpected lvl1 record %+v", records[2])
	}
}

func TestTaggerCollectorSwitches(t *testing.T) {
	packet := &Packet{
		PacketID: 5000,
		Taggers:  []TaggerRow{{IsLvl1: true, Bco: 1}, {IsEndat: true, Bco: 2}},
	}

	container := NewContainer()
	lvl1Bcos := TaggerCollector{RecordTaggers: false, CollectLvl1: true}.Collect(packet, container)
	if container.NTaggers() != 0 {
		t.Fatalf("expected no recorded taggers, got %d", container.NTaggers())
	}
	if !slices.Equal(lvl1Bcos, []uint64{1}) {
		t.Fatalf("expected [1], got %v", lvl1Bcos)
	}

	lvl1Bcos = TaggerCollector{RecordTaggers: true, CollectLvl1: false}.Collect(packet, container)
	if container.NTaggers() != 2 {
		t.Fatalf("expected both taggers recorded, got %d", container.NTaggers())
	}
	if lvl1Bcos != nil {
		t.Fatalf("expected no lvl1 bcos, got %v", lvl1Bcos)
	}
}
