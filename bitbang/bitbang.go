// Package bitbang drives a write-only 3-wire serial bus from plain GPIO lines.
//
// The bus has a data line (DIN), a clock line (CLK) and an active-low chip
// select line (CS). Bytes are shifted out least significant bit first and the
// receiver samples DIN on the rising edge of CLK:
//
//	CS   ‾‾\____________________________________/‾‾
//	CLK  ____/‾\_/‾\_/‾\_/‾\_/‾\_/‾\_/‾\_/‾\________
//	DIN  ---<b0><b1><b2><b3><b4><b5><b6><b7>--------
//
// A Bus implements conn.Conn. Each Tx call is one transaction: CS is pulled
// low, every byte of w is shifted out, then CS is released.
package bitbang

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// Bus is a software clocked serial bus.
type Bus struct {
	din gpio.PinOut
	clk gpio.PinOut
	cs  gpio.PinOut
}

// New configures din, clk and cs as outputs and returns the bus in its idle
// state: CS high, CLK low, DIN low.
func New(din, clk, cs gpio.PinOut) (*Bus, error) {
	if din == nil || clk == nil || cs == nil {
		return nil, errors.New("bitbang: din, clk and cs pins are required")
	}
	b := &Bus{din: din, clk: clk, cs: cs}
	if err := cs.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("bitbang: failed to set up CS: %w", err)
	}
	if err := clk.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("bitbang: failed to set up CLK: %w", err)
	}
	if err := din.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("bitbang: failed to set up DIN: %w", err)
	}
	return b, nil
}

// Select asserts chip select (CS low).
func (b *Bus) Select() error {
	return b.cs.Out(gpio.Low)
}

// Deselect releases chip select (CS high).
func (b *Bus) Deselect() error {
	return b.cs.Out(gpio.High)
}

// WriteByte shifts v out, least significant bit first. For each bit CLK is
// driven low, DIN is set, then CLK is driven high.
//
// The caller is responsible for asserting chip select.
func (b *Bus) WriteByte(v byte) error {
	for i := 0; i < 8; i++ {
		if err := b.clk.Out(gpio.Low); err != nil {
			return err
		}
		if err := b.din.Out(gpio.Level(v&0x01 != 0)); err != nil {
			return err
		}
		v >>= 1
		if err := b.clk.Out(gpio.High); err != nil {
			return err
		}
	}
	return nil
}

// Tx sends w as a single chip-select framed transaction.
//
// The bus cannot read; r must be empty.
func (b *Bus) Tx(w, r []byte) error {
	if len(r) != 0 {
		return errors.New("bitbang: read not supported")
	}
	if err := b.Select(); err != nil {
		return fmt.Errorf("bitbang: failed to assert CS: %w", err)
	}
	for _, v := range w {
		if err := b.WriteByte(v); err != nil {
			// Release the receiver before reporting.
			_ = b.Deselect()
			return fmt.Errorf("bitbang: write failed: %w", err)
		}
	}
	if err := b.Deselect(); err != nil {
		return fmt.Errorf("bitbang: failed to release CS: %w", err)
	}
	return nil
}

// Duplex implements conn.Conn.
func (b *Bus) Duplex() conn.Duplex {
	return conn.Half
}

// Halt releases chip select so the receiver ignores the lines.
func (b *Bus) Halt() error {
	return b.Deselect()
}

// String returns a string representation of the bus.
func (b *Bus) String() string {
	return fmt.Sprintf("bitbang.Bus{din=%s, clk=%s, cs=%s}", b.din, b.clk, b.cs)
}

var _ conn.Conn = &Bus{}
var _ conn.Resource = &Bus{}
