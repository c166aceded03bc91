package evaluation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Configuration struct {
	MaxEvents        int    `json:"max_events" yaml:"max_events"`
	Verbosity        int    `json:"verbosity" yaml:"verbosity"`
	FileIn           string `json:"file_in" yaml:"file_in"`
	FileOut          string `json:"file_out" yaml:"file_out"`
	BcoListOut       string `json:"bco_list_out" yaml:"bco_list_out"`
	Skip             int    `json:"skip" yaml:"skip"`
	WriteData        bool   `json:"write_data" yaml:"write_data"`
	CompressionLevel int    `json:"compression_level" yaml:"compression_level"`
	NoDB             bool   `json:"no_db" yaml:"no_db"`
	Host             string `json:"host" yaml:"host"`
	User             string `json:"user" yaml:"user"`
	Passwd           string `json:"pass" yaml:"pass"`
	DBName           string `json:"dbname" yaml:"dbname"`
	CalibrationFile  string `json:"calibration_file" yaml:"calibration_file"`
	RunNumber        int    `json:"run_number" yaml:"run_number"`

	// Record kinds kept in the per-event container
	EvalTagger   bool `json:"eval_tagger" yaml:"eval_tagger"`
	EvalSample   bool `json:"eval_sample" yaml:"eval_sample"`
	EvalWaveform bool `json:"eval_waveform" yaml:"eval_waveform"`

	// FEE BCO window within which samples reuse the cached lvl1 BCO, zero
	// means DefaultTolerance
	Tolerance uint32 `json:"tolerance" yaml:"tolerance"`

	// Signal classification
	MinAdc    uint16  `json:"min_adc" yaml:"min_adc"`
	SampleMin uint16  `json:"sample_min" yaml:"sample_min"`
	SampleMax uint16  `json:"sample_max" yaml:"sample_max"`
	NSigma    float64 `json:"n_sigma" yaml:"n_sigma"`

	MaxSamples   uint16 `json:"max_samples" yaml:"max_samples"`
	AdcInvalid   uint16 `json:"adc_invalid" yaml:"adc_invalid"`
	NChannelsFee uint16 `json:"n_channels_fee" yaml:"n_channels_fee"`
	PacketIDs    []int  `json:"packet_ids" yaml:"packet_ids"`
}

const (
	DefaultTolerance    uint32 = 10
	DefaultMaxSamples   uint16 = 1024
	DefaultAdcInvalid   uint16 = 65000
	DefaultNChannelsFee uint16 = 256
)

var DefaultPacketIDs = []int{5000, 5001}

// DefaultConfiguration returns the settings used when no configuration file
// overrides them.
func DefaultConfiguration() Configuration {
	return Configuration{
		MaxEvents:        1000000000,
		Verbosity:        0,
		Skip:             0,
		WriteData:        true,
		CompressionLevel: 4,
		NoDB:             false,
		Host:             "next.ific.uv.es",
		User:             "nextreader",
		Passwd:           "readonly",
		DBName:           "TPOT",
		EvalTagger:       true,
		EvalSample:       false,
		EvalWaveform:     true,
		Tolerance:        DefaultTolerance,
		MinAdc:           50,
		SampleMin:        0,
		SampleMax:        100,
		NSigma:           5,
		MaxSamples:       DefaultMaxSamples,
		AdcInvalid:       DefaultAdcInvalid,
		NChannelsFee:     DefaultNChannelsFee,
		PacketIDs:        append([]int(nil), DefaultPacketIDs...),
	}
}

// LoadConfiguration reads a configuration file on top of the defaults. Files
// ending in .yaml or .yml are read as YAML, anything else as JSON.
func LoadConfiguration(filename string) (Configuration, error) {
	config := DefaultConfiguration()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return config, fmt.Errorf("error decoding %s: %w", filename, err)
	}
	return config, nil
}
