// Command pulsesim runs the event pipeline on a host machine against
// scripted input: an in-memory control set stands in for the device
// hardware, a small widget tree receives the classified events, and
// every delivery is printed so pipeline behavior can be inspected
// without a device attached.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/nextcore/pulse/pkg/coproc"
	"github.com/nextcore/pulse/pkg/dispatch"
	"github.com/nextcore/pulse/pkg/fault"
	"github.com/nextcore/pulse/pkg/focus"
	"github.com/nextcore/pulse/pkg/hal"
	"github.com/nextcore/pulse/pkg/irq"
	"github.com/nextcore/pulse/pkg/message"
	"github.com/nextcore/pulse/pkg/touch"
	"github.com/nextcore/pulse/pkg/ui"
)

func main() {
	profilePath := flag.String("profile", "pulsesim.yaml", "device profile (optional)")
	scriptPath := flag.String("script", "", "input script to play (required)")
	stepDelay := flag.Duration("step-delay", 5*time.Millisecond, "pause between script steps")
	verbose := flag.Bool("v", false, "verbose fault log")
	flag.Parse()

	if *scriptPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: pulsesim -script input.yaml [-profile device.yaml]")
		os.Exit(2)
	}

	fault.SetHandler(&fault.LogHandler{Verbose: *verbose})

	if err := run(*profilePath, *scriptPath, *stepDelay); err != nil {
		fmt.Fprintf(os.Stderr, "pulsesim: %v\n", err)
		os.Exit(1)
	}
}

func run(profilePath, scriptPath string, stepDelay time.Duration) error {
	profile, err := LoadProfile(profilePath)
	if err != nil {
		return err
	}
	steps, err := LoadScript(scriptPath)
	if err != nil {
		return err
	}

	registry := message.NewRegistry()
	region := profile.BuildRegion()
	controls := hal.NewMemControls()
	display := hal.NewMemDisplay()
	notifier := &coproc.MemNotifier{}
	focusMgr := focus.NewManager()
	root := buildTree(profile.Touch.WidthPixels, profile.Touch.HeightPixels)

	dispatcher := dispatch.New(dispatch.Config{
		Registry: registry,
		Region:   region,
		Controls: controls,
		Display:  display,
		Focus:    focusMgr,
		Root:     root,
		Touch:    touch.NewManager(profile.Touch),
		Notifier: notifier,
		OnStats: func(avg, max time.Duration) {
			fmt.Printf("[stats] cycle avg=%v max=%v\n", avg, max)
		},
	})

	focusMgr.OnFocusChange = func(from, to ui.Widget) {
		fmt.Printf("[focus] %s -> %s\n", widgetName(from), widgetName(to))
	}

	registry.Register(message.IDCoprocReady, func(m message.Message) {
		ready := m.(message.CoprocReady)
		if err := coproc.CheckImageVersion(ready.Version, profile.Coproc.MinVersion); err != nil {
			fault.Reportf("coproc ready", fault.KindHandshake, err)
			return
		}
		fmt.Printf("[coproc] image %s accepted\n", ready.Version)
	})
	registry.Register(message.IDShutdown, func(message.Message) {
		fmt.Println("[dispatch] shutdown requested")
		dispatcher.RequestStop()
	})
	registry.Register(message.IDRTCTickSecond, func(message.Message) {
		fmt.Println("[rtc] tick")
	})

	bridge := irq.NewBridge(dispatcher.Flags(), notifier,
		irq.NewQueueChecker(&region.Application, dispatch.EvtApplication),
		irq.NewQueueChecker(&region.Local, dispatch.EvtLocal),
	)

	done := make(chan struct{})
	go func() {
		dispatcher.Run()
		close(done)
	}()

	// Coprocessor boot announcement arrives the way real traffic does:
	// pushed to the application queue, then the notification line fires.
	if !region.Application.Push(message.CoprocReady{Version: profile.Coproc.Version}) {
		fault.Reportf("coproc boot", fault.KindQueue, errors.New("application queue full"))
	}
	bridge.OnNotify()

	player := &Player{
		Controls:  controls,
		Flags:     dispatcher.Flags(),
		StepDelay: stepDelay,
	}
	if err := player.Play(steps); err != nil {
		dispatcher.RequestStop()
		<-done
		return err
	}

	if !region.Local.Push(message.Shutdown{}) {
		fault.Reportf("shutdown", fault.KindQueue, errors.New("local queue full"))
		dispatcher.RequestStop()
	}
	bridge.OnNotify()
	<-done
	return nil
}

// simWidget is a printable widget tree node. Buttons consume touches
// inside their rectangle and select-key presses while focused.
type simWidget struct {
	name      string
	rect      ui.Rect
	parent    ui.Widget
	children  []ui.Widget
	focusable bool
	focused   *focus.Manager
}

func (w *simWidget) OnTouch(ev ui.TouchEvent) bool {
	if !w.focusable {
		return false
	}
	fmt.Printf("[touch] %s %s at %d,%d\n", w.name, ev.Phase, ev.Point.X, ev.Point.Y)
	return true
}

func (w *simWidget) OnKey(ev ui.KeyEvent) bool {
	if w.focusable && ev == ui.KeySelect {
		fmt.Printf("[key] %s activated\n", w.name)
		return true
	}
	return false
}

func (w *simWidget) OnEncoder(ev ui.EncoderEvent) bool {
	if !w.focusable {
		return false
	}
	fmt.Printf("[encoder] %s delta %+d\n", w.name, int32(ev))
	return true
}

func (w *simWidget) Children() []ui.Widget { return w.children }
func (w *simWidget) Parent() ui.Widget     { return w.parent }
func (w *simWidget) Hidden() bool          { return false }
func (w *simWidget) ScreenRect() ui.Rect   { return w.rect }
func (w *simWidget) CanFocus() bool        { return w.focusable }

// buildTree lays out a screen with two buttons, top and bottom half.
func buildTree(width, height int) ui.Widget {
	root := &simWidget{
		name: "screen",
		rect: ui.Rect{Width: width, Height: height},
	}
	top := &simWidget{
		name:      "button-top",
		rect:      ui.Rect{Width: width, Height: height / 2},
		parent:    root,
		focusable: true,
	}
	bottom := &simWidget{
		name:      "button-bottom",
		rect:      ui.Rect{Y: height / 2, Width: width, Height: height - height/2},
		parent:    root,
		focusable: true,
	}
	root.children = []ui.Widget{top, bottom}
	return root
}

func widgetName(w ui.Widget) string {
	if w == nil {
		return "(none)"
	}
	if sw, ok := w.(*simWidget); ok {
		return sw.name
	}
	return fmt.Sprintf("%T", w)
}
