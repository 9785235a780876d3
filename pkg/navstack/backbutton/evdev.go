package backbutton

import (
	"context"
	"errors"
	"io"
	"os"
	"slices"

	"github.com/BrandonKowalski/navstack/pkg/navstack/constants"
	"github.com/BrandonKowalski/navstack/pkg/navstack/internal"
	"github.com/holoplot/go-evdev"
)

// DefaultCodes are the key codes treated as a back press when none are given.
var DefaultCodes = []evdev.EvCode{evdev.KEY_BACK, evdev.KEY_ESC, evdev.BTN_EAST}

// EventReader is the part of *evdev.InputDevice used by Listen.
type EventReader interface {
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// OpenDevice opens the input device that carries the back button.
// An empty path falls back to NAVSTACK_BACK_DEVICE, then to
// constants.DefaultBackDevice.
func OpenDevice(path string) (*evdev.InputDevice, error) {
	if path == "" {
		path = os.Getenv(constants.BackDeviceEnvVar)
	}
	if path == "" {
		path = constants.DefaultBackDevice
	}

	dev, err := evdev.Open(path)
	if err != nil {
		return nil, err
	}

	internal.GetInternalLogger().Debug("Opened back button device", "path", path)
	return dev, nil
}

// Listen reads key events from r and sends one request per press of any
// of codes. The returned channel is closed when reading stops. The reader
// is closed when ctx is done.
//
// Requests are delivered on the channel rather than dispatched directly,
// so that handlers run on the caller's event loop.
func Listen(ctx context.Context, r EventReader, codes ...evdev.EvCode) <-chan struct{} {
	if len(codes) == 0 {
		codes = DefaultCodes
	}

	requests := make(chan struct{})
	done := make(chan struct{})

	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
		r.Close()
	}()

	go func() {
		defer close(requests)
		defer close(done)

		logger := internal.GetInternalLogger()

		for {
			ev, err := r.ReadOne()
			if err != nil {
				if ctx.Err() == nil && !errors.Is(err, io.EOF) && !errors.Is(err, os.ErrClosed) {
					logger.Error("Back button device read failed", "error", err)
				}
				return
			}

			// Value 1 is a press; 0 is release and 2 is autorepeat.
			if ev.Type != evdev.EV_KEY || ev.Value != 1 || !slices.Contains(codes, ev.Code) {
				continue
			}

			select {
			case requests <- struct{}{}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return requests
}
