package main

import (
	"fmt"

	evaluation "github.com/next-exp/evaluation_go/pkg"
)

func printConfiguration(config evaluation.Configuration, logger Logger) {
	logger.Info(fmt.Sprintf("File in: %s", config.FileIn), "config")
	logger.Info(fmt.Sprintf("File out: %s", config.FileOut), "config")
	logger.Info(fmt.Sprintf("BCO list out: %s", config.BcoListOut), "config")
	logger.Info(fmt.Sprintf("No DB: %t", config.NoDB), "config")
	logger.Info(fmt.Sprintf("Host: %s", config.Host), "config")
	logger.Info(fmt.Sprintf("DB name: %s", config.DBName), "config")
	logger.Info(fmt.Sprintf("Calibration file: %s", config.CalibrationFile), "config")
	logger.Info(fmt.Sprintf("Run number: %d", config.RunNumber), "config")
	logger.Info(fmt.Sprintf("Skip: %d", config.Skip), "config")
	logger.Info(fmt.Sprintf("Max events: %d", config.MaxEvents), "config")
	logger.Info(fmt.Sprintf("Verbosity: %d", config.Verbosity), "config")
	logger.Info(fmt.Sprintf("Write data: %t", config.WriteData), "config")
	logger.Info(fmt.Sprintf("Compression level: %d", config.CompressionLevel), "config")
	logger.Info(fmt.Sprintf("Eval tagger: %t", config.EvalTagger), "config")
	logger.Info(fmt.Sprintf("Eval sample: %t", config.EvalSample), "config")
	logger.Info(fmt.Sprintf("Eval waveform: %t", config.EvalWaveform), "config")
	logger.Info(fmt.Sprintf("Tolerance: %d", config.Tolerance), "config")
	logger.Info(fmt.Sprintf("Min ADC: %d", config.MinAdc), "config")
	logger.Info(fmt.Sprintf("Sample window: [%d, %d)", config.SampleMin, config.SampleMax), "config")
	logger.Info(fmt.Sprintf("N sigma: %g", config.NSigma), "config")
	logger.Info(fmt.Sprintf("Max samples: %d", config.MaxSamples), "config")
	logger.Info(fmt.Sprintf("Invalid ADC: %d", config.AdcInvalid), "config")
	logger.Info(fmt.Sprintf("Channels per FEE: %d", config.NChannelsFee), "config")
	logger.Info(fmt.Sprintf("Packet IDs: %v", config.PacketIDs), "config")
}
