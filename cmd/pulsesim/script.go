package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nextcore/pulse/pkg/dispatch"
	"github.com/nextcore/pulse/pkg/hal"
	"github.com/nextcore/pulse/pkg/touch"
	"github.com/nextcore/pulse/pkg/ui"
)

// Step is one scripted input action. Exactly one field should be set
// per step; a step with several set applies them in struct order.
type Step struct {
	// Touch presses the panel at a normalized position.
	Touch *TouchStep `yaml:"touch,omitempty"`
	// Release lifts the contact.
	Release bool `yaml:"release,omitempty"`
	// Key names a switch line to press: right, left, down, up, select.
	Key string `yaml:"key,omitempty"`
	// Encoder turns the rotary encoder by the given detent count.
	Encoder int32 `yaml:"encoder,omitempty"`
	// Tick fires one RTC second tick.
	Tick bool `yaml:"tick,omitempty"`
	// Frame fires one display frame sync.
	Frame bool `yaml:"frame,omitempty"`
}

// TouchStep is a contact position in normalized panel coordinates.
type TouchStep struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LoadScript reads a YAML step list.
func LoadScript(path string) ([]Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	var steps []Step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	return steps, nil
}

// Player applies script steps to the in-memory controls and signals the
// dispatcher, standing in for the device's input hardware.
type Player struct {
	Controls *hal.MemControls
	Flags    *dispatch.Flags
	// StepDelay paces playback so dispatcher output interleaves with
	// the steps that caused it.
	StepDelay time.Duration

	encoder uint32
}

const adcMax = 1023

// synthFrame builds a raw frame whose ratio metrics resolve to the
// given normalized position with firm pressure.
func synthFrame(nx, ny float64) touch.Frame {
	xMid := uint16(nx * adcMax)
	yMid := uint16(ny * adcMax)
	return touch.Frame{
		Touched:  true,
		X:        touch.Sense{XP: adcMax, XN: 0, YP: xMid, YN: xMid},
		Y:        touch.Sense{YN: adcMax, YP: 0, XP: yMid, XN: yMid},
		Pressure: touch.Sense{YP: adcMax, XN: 0, XP: 512, YN: 512},
	}
}

// keyCode resolves a script key name.
func keyCode(name string) (ui.KeyEvent, error) {
	switch strings.ToLower(name) {
	case "right":
		return ui.KeyRight, nil
	case "left":
		return ui.KeyLeft, nil
	case "down":
		return ui.KeyDown, nil
	case "up":
		return ui.KeyUp, nil
	case "select":
		return ui.KeySelect, nil
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

// Play applies every step in order.
func (p *Player) Play(steps []Step) error {
	for i, step := range steps {
		if err := p.apply(step); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		if p.StepDelay > 0 {
			time.Sleep(p.StepDelay)
		}
	}
	return nil
}

func (p *Player) apply(step Step) error {
	if step.Touch != nil {
		// One frame per sample period; the classifier needs a full
		// settling window before it starts a gesture.
		p.Controls.SetTouchFrame(synthFrame(step.Touch.X, step.Touch.Y))
		p.Flags.Signal(dispatch.EvtTouch)
	}

	if step.Release {
		p.Controls.SetTouchFrame(touch.Frame{})
		p.Flags.Signal(dispatch.EvtTouch)
	}

	if step.Key != "" {
		key, err := keyCode(step.Key)
		if err != nil {
			return err
		}
		p.Controls.SetSwitches(hal.Switches(1) << key)
		p.Flags.Signal(dispatch.EvtSwitches)
	}

	if step.Encoder != 0 {
		p.encoder += uint32(step.Encoder)
		p.Controls.SetEncoder(p.encoder)
		p.Flags.Signal(dispatch.EvtEncoder)
	}

	if step.Tick {
		p.Flags.Signal(dispatch.EvtRTCTick)
	}

	if step.Frame {
		p.Flags.Signal(dispatch.EvtFrameSync)
	}

	return nil
}
