// Package message defines the typed cross-core message model and the
// handler registry that routes drained messages to their single owner.
//
// The identifier space is fixed at build time and acts as the dispatch
// key. Messages are value types created by the producer and passed by
// reference to exactly one handler invocation; handlers must not retain
// them past the call.
package message

// ID identifies a message type. Valid IDs are in [0, MaxID).
type ID uint8

// Message identifiers. The space is append-only: an ID is never reused
// for an unrelated meaning.
const (
	// IDDisplayFrameSync is broadcast once per display frame interval,
	// before the widget tree repaints.
	IDDisplayFrameSync ID = iota
	// IDRTCTickSecond fires once per second from the real-time tick.
	IDRTCTickSecond
	// IDCoprocReady announces the coprocessor image and its version.
	IDCoprocReady
	// IDStorageMedia reports storage-media presence changes.
	IDStorageMedia
	// IDShutdown requests an orderly dispatcher stop.
	IDShutdown
	// IDChannelStats carries coprocessor channel statistics.
	IDChannelStats
	// IDAudioLevel carries a coprocessor audio level sample.
	IDAudioLevel

	// MaxID bounds the identifier space. Must stay last.
	MaxID
)

// Message is implemented by every payload carried through the queues.
type Message interface {
	MessageID() ID
}

// DisplayFrameSync is sent to the registered handler before each
// widget-tree repaint pass.
type DisplayFrameSync struct{}

func (DisplayFrameSync) MessageID() ID { return IDDisplayFrameSync }

// RTCTickSecond is sent once per second.
type RTCTickSecond struct{}

func (RTCTickSecond) MessageID() ID { return IDRTCTickSecond }

// CoprocReady announces that the second core has booted its image.
type CoprocReady struct {
	// Version is the semantic version of the coprocessor image,
	// e.g. "v1.4.0".
	Version string
}

func (CoprocReady) MessageID() ID { return IDCoprocReady }

// StorageMedia reports a storage-media presence change.
type StorageMedia struct {
	Present bool
}

func (StorageMedia) MessageID() ID { return IDStorageMedia }

// Shutdown requests an orderly stop of the event dispatcher.
type Shutdown struct{}

func (Shutdown) MessageID() ID { return IDShutdown }

// ChannelStats carries periodic statistics from the coprocessor.
type ChannelStats struct {
	Saturation uint32
	Dropped    uint32
}

func (ChannelStats) MessageID() ID { return IDChannelStats }

// AudioLevel carries an audio level sample from the coprocessor.
type AudioLevel struct {
	RMS  uint16
	Peak uint16
}

func (AudioLevel) MessageID() ID { return IDAudioLevel }
