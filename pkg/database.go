package evaluation

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	sqlx "github.com/jmoiron/sqlx" //make alias name the package to sqlx
	_ "modernc.org/sqlite"
)

func ConnectToDatabase(user string, pass string, host string, dbname string) (*sqlx.DB, error) {
	port := "3306"
	dbURI := fmt.Sprintf("%s:%s@(%s:%s)/%s?parseTime=true", user, pass, host, port, dbname)
	db, err := sqlx.Connect("mysql", dbURI)
	return db, err
}

// OpenLocalDatabase opens a SQLite file with the same tables as the run
// database.
func OpenLocalDatabase(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, &ErrOpenFile{Filename: path, Err: err}
	}
	return db, nil
}

type ChannelMappingEntry struct {
	FeeID   int `db:"FeeID"`
	Channel int `db:"Channel"`
	Layer   int `db:"Layer"`
	Tile    int `db:"Tile"`
	Strip   int `db:"Strip"`
}

type CalibrationEntry struct {
	FeeID    int     `db:"FeeID"`
	Channel  int     `db:"Channel"`
	Pedestal float64 `db:"Pedestal"`
	Rms      float64 `db:"Rms"`
}

func LoadChannelMap(db *sqlx.DB, runNumber int) (*ChannelMap, error) {
	query := "SELECT FeeID, Channel, Layer, Tile, Strip FROM ChannelMapping WHERE MinRun <= ? and MaxRun >= ?"

	rows, err := db.Queryx(query, runNumber, runNumber)
	if err != nil {
		return nil, fmt.Errorf("error querying database: %w", err)
	}
	defer rows.Close()

	channelMap := NewChannelMap()
	for rows.Next() {
		result := ChannelMappingEntry{}
		if err := rows.StructScan(&result); err != nil {
			return nil, fmt.Errorf("error scanning DB row: %w", err)
		}
		channelMap.Add(uint16(result.FeeID), uint16(result.Channel), ChannelGeometry{
			Layer: uint16(result.Layer),
			Tile:  uint16(result.Tile),
			Strip: int32(result.Strip),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading DB rows: %w", err)
	}
	return channelMap, nil
}

func LoadCalibration(db *sqlx.DB, runNumber int) (*CalibrationData, error) {
	query := "SELECT FeeID, Channel, Pedestal, Rms FROM Calibration WHERE MinRun <= ? and MaxRun >= ?"

	rows, err := db.Queryx(query, runNumber, runNumber)
	if err != nil {
		return nil, fmt.Errorf("error querying database: %w", err)
	}
	defer rows.Close()

	calibration := NewCalibrationData()
	for rows.Next() {
		result := CalibrationEntry{}
		if err := rows.StructScan(&result); err != nil {
			return nil, fmt.Errorf("error scanning DB row: %w", err)
		}
		calibration.Add(uint16(result.FeeID), uint16(result.Channel), ChannelCalibration{
			Pedestal: result.Pedestal,
			Rms:      result.Rms,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading DB rows: %w", err)
	}
	return calibration, nil
}

// LoadDatabase reads the channel map and the calibration valid for runNumber.
func LoadDatabase(db *sqlx.DB, runNumber int) (*ChannelMap, *CalibrationData, error) {
	channelMap, err := LoadChannelMap(db, runNumber)
	if err != nil {
		errMessage := fmt.Errorf("error getting channel map from database: %w", err)
		logger.Error(errMessage.Error())
		return nil, nil, errMessage
	}
	calibration, err := LoadCalibration(db, runNumber)
	if err != nil {
		errMessage := fmt.Errorf("error getting calibration from database: %w", err)
		logger.Error(errMessage.Error())
		return nil, nil, errMessage
	}
	return channelMap, calibration, nil
}
