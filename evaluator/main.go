package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	sqlx "github.com/jmoiron/sqlx"
	evaluation "github.com/next-exp/evaluation_go/pkg"
	"github.com/next-exp/evaluation_go/pkg/writer"
)

var configuration evaluation.Configuration

var (
	logger         Logger
	VerbosityLevel int
)

func init() {
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	handlerStdOut := newLineHandler(os.Stdout, opts.Level)
	handlerStdErr := slog.NewJSONHandler(os.Stderr, opts)
	logger = Logger{
		InfoLog:  slog.New(handlerStdOut),
		ErrorLog: slog.New(handlerStdErr),
	}
}

func main() {
	configFilename := flag.String("config", "", "Configuration file path")
	flag.Parse()

	var err error
	configuration, err = evaluation.LoadConfiguration(*configFilename)
	if err != nil {
		message := fmt.Errorf("Error reading configuration file: %w", err)
		logger.Error(message.Error())
		os.Exit(1)
	}
	evaluation.SetLogger(logger)

	VerbosityLevel = configuration.Verbosity
	if VerbosityLevel > 0 {
		message := fmt.Sprintf("Reading configuration file: %s", *configFilename)
		logger.Info(message, "main")
		printConfiguration(configuration, logger)
	}

	channelMap, calibration, err := loadServices(configuration)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	reader, err := evaluation.OpenEventFile(configuration.FileIn)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	defer reader.Close()

	var hdfWriter *writer.Writer
	if configuration.WriteData {
		hdfWriter, err = writer.NewWriter(configuration.FileOut, configuration.CompressionLevel)
		if err != nil {
			message := fmt.Errorf("error creating output file: %w", err)
			logger.Error(message.Error())
			os.Exit(1)
		}
	}

	engine := evaluation.NewEngine(configuration, channelMap, calibration)

	start := time.Now()
	jobs := make(chan *evaluation.Event, 100)
	go sendEventsToEngine(NewFileReader(reader), jobs)
	processEvents(jobs, engine, hdfWriter)

	summary := engine.End()
	if hdfWriter != nil {
		if err := hdfWriter.WriteBcoHistogram(summary.Histogram); err != nil {
			message := fmt.Errorf("error writing bco histogram: %w", err)
			logger.Error(message.Error())
		}
		if err := hdfWriter.Close(); err != nil {
			logger.Error(err.Error())
		}
	}

	if err := writeReport(configuration, summary); err != nil {
		logger.Error(err.Error())
	}

	duration := time.Since(start)
	message := fmt.Sprintf("Total time: %d ms", duration.Milliseconds())
	logger.Info(message, "main")
}

// loadServices reads the channel map and calibration from the run database,
// or from the local calibration file when the DB is disabled.
func loadServices(config evaluation.Configuration) (*evaluation.ChannelMap, *evaluation.CalibrationData, error) {
	var db *sqlx.DB
	var err error
	switch {
	case !config.NoDB:
		db, err = evaluation.ConnectToDatabase(config.User, config.Passwd, config.Host, config.DBName)
		if err != nil {
			return nil, nil, fmt.Errorf("Error connection to database: %w", err)
		}
	case config.CalibrationFile != "":
		db, err = evaluation.OpenLocalDatabase(config.CalibrationFile)
		if err != nil {
			return nil, nil, fmt.Errorf("Error opening calibration file: %w", err)
		}
	default:
		if VerbosityLevel > 0 {
			logger.Info("No channel map nor calibration, all waveforms are noise", "main")
		}
		return evaluation.NewChannelMap(), evaluation.NewCalibrationData(), nil
	}
	defer db.Close()

	channelMap, calibration, err := evaluation.LoadDatabase(db, config.RunNumber)
	if err != nil {
		return nil, nil, err
	}
	if VerbosityLevel > 0 {
		message := fmt.Sprintf("Channels mapped: %d, channels calibrated: %d", channelMap.Len(), calibration.Len())
		logger.Info(message, "main")
	}
	return channelMap, calibration, nil
}

func writeReport(config evaluation.Configuration, summary evaluation.RunSummary) error {
	if err := evaluation.PrintRunSummary(os.Stdout, summary); err != nil {
		return err
	}
	if VerbosityLevel > 0 {
		if err := evaluation.PrintBcoHistogram(os.Stdout, summary.Histogram); err != nil {
			return err
		}
	}
	if config.BcoListOut == "" {
		return nil
	}

	file, err := os.Create(config.BcoListOut)
	if err != nil {
		return &evaluation.ErrOpenFile{Filename: config.BcoListOut, Err: err}
	}
	defer file.Close()
	if err := evaluation.WriteBcoList(file, summary.Lvl1Bcos()); err != nil {
		return fmt.Errorf("error writing bco list: %w", err)
	}
	return file.Close()
}
