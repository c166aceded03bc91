package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	evaluation "github.com/next-exp/evaluation_go/pkg"
	"github.com/next-exp/evaluation_go/pkg/writer"
)

type Logger struct {
	InfoLog *slog.Logger
}

func (l Logger) Info(message string, module string) {
	l.InfoLog.Info(message, "module", module)
}

func (l Logger) Error(message string) {
	l.InfoLog.Error(message)
}

var logger = Logger{InfoLog: slog.New(slog.NewTextHandler(os.Stdout, nil))}

func main() {
	configFilename := flag.String("config", "", "Configuration file path")
	repetitions := flag.Int("repetitions", 3, "Number of writes per compression level")
	flag.Parse()

	configuration, err := evaluation.LoadConfiguration(*configFilename)
	if err != nil {
		message := fmt.Errorf("Error reading configuration file: %w", err)
		logger.Error(message.Error())
		os.Exit(1)
	}
	evaluation.SetLogger(logger)

	reader, err := evaluation.OpenEventFile(configuration.FileIn)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	defer reader.Close()

	engine := evaluation.NewEngine(configuration, nil, nil)
	events, err := evaluateEvents(reader, engine, configuration.MaxEvents)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	histogram := engine.End().Histogram
	fmt.Println("Total events evaluated: ", len(events))

	for compressionLevel := 0; compressionLevel < 10; compressionLevel++ {
		for i := 0; i < *repetitions; i++ {
			start := time.Now()
			if err := writeAll(configuration.FileOut, compressionLevel, events, histogram); err != nil {
				logger.Error(err.Error())
				continue
			}
			duration := time.Since(start)
			fileInfo, err := os.Stat(configuration.FileOut)
			if err != nil {
				logger.Error(fmt.Sprintf("Error getting file info: %v", err))
				continue
			}
			fmt.Printf("(deflate, comp %d) Time: %d ms, size %s\n",
				compressionLevel, duration.Milliseconds(), humanize.Bytes(uint64(fileInfo.Size())))
		}
	}
}

func writeAll(filename string, compressionLevel int, events []evaluatedEvent, histogram []evaluation.BcoCount) error {
	w, err := writer.NewWriter(filename, compressionLevel)
	if err != nil {
		return err
	}
	for _, evaluated := range events {
		if err := w.WriteEvent(evaluated.Event, evaluated.Container); err != nil {
			w.Close()
			return err
		}
	}
	if err := w.WriteBcoHistogram(histogram); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
