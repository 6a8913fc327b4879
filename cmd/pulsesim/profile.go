package main

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nextcore/pulse/pkg/mqueue"
	"github.com/nextcore/pulse/pkg/touch"
)

// Profile is the optional pulsesim.yaml device profile. Absent fields
// keep the stock device defaults.
type Profile struct {
	Queues QueueConfig       `yaml:"queues"`
	Touch  touch.Calibration `yaml:"touch"`
	Coproc CoprocConfig      `yaml:"coproc"`
}

// QueueConfig overrides the shared-region queue capacities.
type QueueConfig struct {
	Coproc      int `yaml:"coproc,omitempty"`
	Application int `yaml:"application,omitempty"`
	Local       int `yaml:"local,omitempty"`
}

// CoprocConfig describes the simulated second core.
type CoprocConfig struct {
	// Version announced in the ready message, e.g. "v1.4.0".
	Version string `yaml:"version,omitempty"`
	// MinVersion is the oldest image the application accepts.
	MinVersion string `yaml:"min_version,omitempty"`
}

// LoadProfile reads a device profile if present.
func LoadProfile(path string) (*Profile, error) {
	p := &Profile{
		Touch: touch.DefaultCalibration(),
		Coproc: CoprocConfig{
			Version:    "v1.4.0",
			MinVersion: "v1.0.0",
		},
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	if err := p.Touch.Validate(); err != nil {
		return nil, fmt.Errorf("invalid touch calibration in %s: %w", path, err)
	}
	return p, nil
}

// BuildRegion constructs the shared queues, applying any capacity
// overrides from the profile.
func (p *Profile) BuildRegion() *mqueue.SharedRegion {
	region := &mqueue.SharedRegion{}
	mqueue.InitSharedRegion(region)
	if p.Queues.Coproc > 0 {
		region.Coproc.Init(p.Queues.Coproc)
	}
	if p.Queues.Application > 0 {
		region.Application.Init(p.Queues.Application)
	}
	if p.Queues.Local > 0 {
		region.Local.Init(p.Queues.Local)
	}
	return region
}
