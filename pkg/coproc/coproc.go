// Package coproc models the collaboration with the second processor
// core: the one-bit notification gate the dispatcher toggles around
// its run state, and the image version handshake performed when the
// coprocessor announces itself.
package coproc

import (
	"fmt"
	"sync"

	"golang.org/x/mod/semver"
)

// Notifier is the cross-core notification gate. Enable/Disable bracket
// the dispatcher run loop so the other core only raises interrupts
// while someone is consuming events; Clear acknowledges the hardware
// notification flag from interrupt context.
type Notifier interface {
	Enable()
	Disable()
	Clear()
}

// MemNotifier is an in-memory Notifier for simulation and tests.
type MemNotifier struct {
	mu      sync.Mutex
	enabled bool
	clears  int
}

func (n *MemNotifier) Enable() {
	n.mu.Lock()
	n.enabled = true
	n.mu.Unlock()
}

func (n *MemNotifier) Disable() {
	n.mu.Lock()
	n.enabled = false
	n.mu.Unlock()
}

func (n *MemNotifier) Clear() {
	n.mu.Lock()
	n.clears++
	n.mu.Unlock()
}

// Enabled reports whether notifications are currently enabled.
func (n *MemNotifier) Enabled() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.enabled
}

// Clears returns how many times the notification flag was cleared.
func (n *MemNotifier) Clears() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.clears
}

// CheckImageVersion validates the coprocessor image version announced
// in the ready message against the minimum the application core was
// built for. Both versions are semantic version strings ("v1.4.0").
// An incompatible or malformed version is an advisory condition at
// this layer: the caller reports it and keeps running with the
// coprocessor traffic it can understand.
func CheckImageVersion(got, min string) error {
	if !semver.IsValid(got) {
		return fmt.Errorf("coprocessor reported malformed version %q", got)
	}
	if !semver.IsValid(min) {
		return fmt.Errorf("minimum version %q is malformed", min)
	}
	if semver.Compare(got, min) < 0 {
		return fmt.Errorf("coprocessor image %s is older than required %s", got, min)
	}
	if semver.Major(got) != semver.Major(min) {
		return fmt.Errorf("coprocessor image %s has incompatible major version (want %s line)", got, semver.Major(min))
	}
	return nil
}
