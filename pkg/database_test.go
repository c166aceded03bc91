package evaluation

import (
	"path/filepath"
	"testing"
)

func TestLoadDatabaseFromSQLite(t *testing.T) {
	db, err := OpenLocalDatabase(filepath.Join(t.TempDir(), "calibration.db"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer db.Close()

	statements := []string{
		"CREATE TABLE ChannelMapping (FeeID INTEGER, Channel INTEGER, Layer INTEGER, Tile INTEGER, Strip INTEGER, MinRun INTEGER, MaxRun INTEGER)",
		"CREATE TABLE Calibration (FeeID INTEGER, Channel INTEGER, Pedestal REAL, Rms REAL, MinRun INTEGER, MaxRun INTEGER)",
		"INSERT INTO ChannelMapping VALUES (1, 5, 2, 3, 42, 100, 200)",
		"INSERT INTO ChannelMapping VALUES (1, 6, 2, 3, 43, 300, 400)",
		"INSERT INTO Calibration VALUES (1, 5, 10.5, 2.5, 100, 200)",
		"INSERT INTO Calibration VALUES (1, 5, 99, 9, 0, 50)",
	}
	for _, statement := range statements {
		db.MustExec(statement)
	}

	channelMap, calibration, err := LoadDatabase(db, 150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if channelMap.Len() != 1 || calibration.Len() != 1 {
		t.Fatalf("expected one entry per table, got %d and %d", channelMap.Len(), calibration.Len())
	}

	layer, tile, strip := channelMap.Resolve(1, 5)
	if layer != 2 || tile != 3 || strip != 42 {
		t.Fatalf("unexpected geometry %d %d %d", layer, tile, strip)
	}
	if _, _, strip := channelMap.Resolve(1, 6); strip != UnmappedStrip {
		t.Fatalf("expected channel outside run range to be unmapped, got strip %d", strip)
	}

	pedestal, rms := calibration.Lookup(1, 5)
	if pedestal != 10.5 || rms != 2.5 {
		t.Fatalf("unexpected calibration %v %v", pedestal, rms)
	}
}

func TestLoadDatabaseMissingTables(t *testing.T) {
	db, err := OpenLocalDatabase(filepath.Join(t.TempDir(), "empty.db"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer db.Close()

	if _, _, err := LoadDatabase(db, 1); err == nil {
		t.Fatal("expected error when tables are missing")
	}
}
