package touch

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Calibration maps normalized panel coordinates into device pixel
// space and gates pressure validity. The normalized band [XLow, XHigh]
// (and [YLow, YHigh], with Y inverted: the panel's Y axis grows
// opposite to screen rows) spans the visible display area; readings
// outside the band clamp to the edges. These are configuration data
// measured per panel batch, not part of the classification logic.
type Calibration struct {
	WidthPixels  int     `yaml:"width_pixels"`
	HeightPixels int     `yaml:"height_pixels"`
	XLow         float64 `yaml:"x_low"`
	XHigh        float64 `yaml:"x_high"`
	YLow         float64 `yaml:"y_low"`
	YHigh        float64 `yaml:"y_high"`

	// RTouchThreshold is the resistance (ohms) below which contact is
	// considered firm enough to be deliberate rather than noise.
	RTouchThreshold float64 `yaml:"r_touch_threshold"`
}

// DefaultCalibration returns the stock panel calibration.
func DefaultCalibration() Calibration {
	return Calibration{
		WidthPixels:     240,
		HeightPixels:    320,
		XLow:            0.07,
		XHigh:           0.94,
		YLow:            0.04,
		YHigh:           0.96,
		RTouchThreshold: 600,
	}
}

// Validate checks the calibration for degenerate spans.
func (c Calibration) Validate() error {
	if c.WidthPixels <= 0 || c.HeightPixels <= 0 {
		return fmt.Errorf("display size %dx%d must be positive", c.WidthPixels, c.HeightPixels)
	}
	if c.XHigh <= c.XLow {
		return fmt.Errorf("x band [%v, %v] has no span", c.XLow, c.XHigh)
	}
	if c.YHigh <= c.YLow {
		return fmt.Errorf("y band [%v, %v] has no span", c.YLow, c.YHigh)
	}
	if c.RTouchThreshold <= 0 {
		return fmt.Errorf("r_touch_threshold %v must be positive", c.RTouchThreshold)
	}
	return nil
}

// LoadCalibration reads a calibration YAML file if present, falling
// back to DefaultCalibration when the file does not exist. Fields
// absent from the file keep their defaults.
func LoadCalibration(path string) (Calibration, error) {
	cal := DefaultCalibration()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cal, nil
		}
		return cal, fmt.Errorf("failed to read calibration: %w", err)
	}
	if err := yaml.Unmarshal(data, &cal); err != nil {
		return cal, fmt.Errorf("failed to parse calibration: %w", err)
	}
	if err := cal.Validate(); err != nil {
		return cal, fmt.Errorf("invalid calibration %s: %w", path, err)
	}
	return cal, nil
}
