// Package bitbangtest is meant to be used to test drivers over a bit-banged bus.
//
// A Record hands out fake pins that log every level written to them, along
// with delay markers, and can reconstruct the chip-select framed bytes from
// that log.
package bitbangtest

import (
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

// Event is one entry in the log. Either Pin is set and Level was written to
// it, or Pin is empty and Delay is a recorded wait.
type Event struct {
	Pin   string
	Level gpio.Level
	Delay time.Duration
}

// Frame is one chip-select framed transaction reconstructed from the log.
type Frame struct {
	// W is the bytes shifted out while CS was low.
	W []byte
	// Settle is the total delay recorded after CS was released and before the
	// next frame started.
	Settle time.Duration
}

// Record logs pin writes and delays in order.
type Record struct {
	sync.Mutex
	Events []Event
}

// Pin is a gpiotest.Pin whose writes are logged in a Record.
type Pin struct {
	gpiotest.Pin
	// Err, when set, is returned by Out and nothing is logged.
	Err error

	r *Record
}

// Pin returns a new output pin named name logging into r.
func (r *Record) Pin(name string) *Pin {
	return &Pin{Pin: gpiotest.Pin{N: name}, r: r}
}

// Sleep logs a delay marker. It has the signature of time.Sleep so it can be
// injected where a driver waits.
func (r *Record) Sleep(d time.Duration) {
	r.Lock()
	defer r.Unlock()
	r.Events = append(r.Events, Event{Delay: d})
}

// Reset clears the log.
func (r *Record) Reset() {
	r.Lock()
	defer r.Unlock()
	r.Events = nil
}

// Frames reconstructs the transactions written over the pins named din, clk
// and cs. DIN is sampled on every CLK rising edge while CS is low, least
// significant bit first.
//
// It returns an error if a frame ends on a partial byte.
func (r *Record) Frames(din, clk, cs string) ([]Frame, error) {
	r.Lock()
	defer r.Unlock()

	var (
		frames   []Frame
		cur      []byte
		selected bool
		data     gpio.Level
		clock    gpio.Level
		shift    byte
		bits     int
	)
	for i, e := range r.Events {
		switch e.Pin {
		case "":
			if !selected && len(frames) != 0 {
				frames[len(frames)-1].Settle += e.Delay
			}
		case din:
			data = e.Level
		case clk:
			if selected && clock == gpio.Low && e.Level == gpio.High {
				if data == gpio.High {
					shift |= 1 << uint(bits)
				}
				bits++
				if bits == 8 {
					cur = append(cur, shift)
					shift, bits = 0, 0
				}
			}
			clock = e.Level
		case cs:
			switch {
			case e.Level == gpio.Low && !selected:
				selected = true
				cur = []byte{}
			case e.Level == gpio.High && selected:
				if bits != 0 {
					return frames, fmt.Errorf("bitbangtest: frame %d ended after %d stray bits (event %d)", len(frames), bits, i)
				}
				frames = append(frames, Frame{W: cur})
				selected = false
			}
		}
	}
	if selected {
		return frames, fmt.Errorf("bitbangtest: frame %d never released CS", len(frames))
	}
	return frames, nil
}

// Out logs l and sets the pin level.
func (p *Pin) Out(l gpio.Level) error {
	if p.Err != nil {
		return p.Err
	}
	p.r.Lock()
	p.r.Events = append(p.r.Events, Event{Pin: p.N, Level: l})
	p.r.Unlock()
	return p.Pin.Out(l)
}

// String returns the pin name.
func (p *Pin) String() string {
	return p.N
}

var _ gpio.PinOut = &Pin{}
