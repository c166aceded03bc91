package evaluation

// MappingService resolves the detector geometry of a FEE channel.
type MappingService interface {
	Resolve(feeID uint16, channel uint16) (layer uint16, tile uint16, strip int32)
}

// CalibrationService gives the pedestal and noise of a FEE channel.
type CalibrationService interface {
	Lookup(feeID uint16, channel uint16) (pedestal float64, rms float64)
}

type channelKey struct {
	FeeID   uint16
	Channel uint16
}

type ChannelGeometry struct {
	Layer uint16
	Tile  uint16
	Strip int32
}

// UnmappedStrip is the strip returned for channels missing from the map.
const UnmappedStrip int32 = -1

type ChannelMap struct {
	channels map[channelKey]ChannelGeometry
}

func NewChannelMap() *ChannelMap {
	return &ChannelMap{channels: make(map[channelKey]ChannelGeometry)}
}

func (m *ChannelMap) Add(feeID uint16, channel uint16, geometry ChannelGeometry) {
	m.channels[channelKey{FeeID: feeID, Channel: channel}] = geometry
}

func (m *ChannelMap) Resolve(feeID uint16, channel uint16) (uint16, uint16, int32) {
	if m == nil {
		return 0, 0, UnmappedStrip
	}
	geometry, ok := m.channels[channelKey{FeeID: feeID, Channel: channel}]
	if !ok {
		return 0, 0, UnmappedStrip
	}
	return geometry.Layer, geometry.Tile, geometry.Strip
}

func (m *ChannelMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.channels)
}

type ChannelCalibration struct {
	Pedestal float64
	Rms      float64
}

// CalibrationData returns zero pedestal and rms for unknown channels, so
// they are never classified as signal.
type CalibrationData struct {
	channels map[channelKey]ChannelCalibration
}

func NewCalibrationData() *CalibrationData {
	return &CalibrationData{channels: make(map[channelKey]ChannelCalibration)}
}

func (c *CalibrationData) Add(feeID uint16, channel uint16, calibration ChannelCalibration) {
	c.channels[channelKey{FeeID: feeID, Channel: channel}] = calibration
}

func (c *CalibrationData) Lookup(feeID uint16, channel uint16) (float64, float64) {
	if c == nil {
		return 0, 0
	}
	calibration := c.channels[channelKey{FeeID: feeID, Channel: channel}]
	return calibration.Pedestal, calibration.Rms
}

func (c *CalibrationData) Len() int {
	if c == nil {
		return 0
	}
	return len(c.channels)
}
