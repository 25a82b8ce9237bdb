// Package vfd controls a character VFD module over a bit-banged 3-wire bus.
//
// The module is a vacuum-fluorescent character display with a small serial
// controller. It is driven by three GPIO lines toggled in software rather than
// a hardware SPI peripheral. The driver implements the display.TextDisplay and
// display.DisplayBacklight interfaces from periph.io.
//
// # Display Characteristics
//
// - Up to 32 character cells, arranged as rows x columns (typically 1x8, 1x16 or 2x16)
// - Brightness from 1 to 255
// - 16 user defined 5x7 glyphs
// - Write-only bus: DIN, CLK and active-low CS
//
// # Hardware Connection
//
// Connect the module to any three free GPIO pins:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 5V
//	DIN         → GPIO (any available pin)
//	CLK         → GPIO (any available pin)
//	CS          → GPIO (any available pin)
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"github.com/flavioheleno/vfd"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Get the bus pins
//		din := gpioreg.ByName("GPIO10")
//		clk := gpioreg.ByName("GPIO11")
//		cs := gpioreg.ByName("GPIO8")
//
//		// Create and initialize the device
//		dev, _ := vfd.NewGPIO(din, clk, cs, &vfd.Opts{
//			Rows:       2,
//			Cols:       16,
//			Brightness: 128,
//		})
//		defer dev.Halt()
//
//		dev.WriteText(0, 0, "Hello")
//	}
//
// # Character Encoding
//
// WriteText and WriteBytes send raw character codes. Text is cut at the end
// of the row and at the first NUL byte; it never wraps.
//
// WriteChar adds 0x30 to the character code before sending it, matching the
// controller's single character command:
//
//	dev.WriteChar(0, 0, '5') // sends 0x65
//
// # Custom Glyphs
//
// Glyphs are registered under a lookup symbol. The order of registration is
// the controller memory slot (0-15), and the table only grows:
//
//	bell := glyph.Bitmap{0x30, 0x3E, 0x7F, 0x3E, 0x30}
//	if !dev.AddGlyph('♪', bell) {
//		// all 16 slots are taken
//	}
//	dev.WriteGlyph(0, 15, '♪')
//
// WriteGlyph uploads the bitmap, assigns the slot to the cell and refreshes
// the display. Writing a symbol that was never added does nothing.
//
// # Wire Protocol
//
// Each command is one transaction with CS held low. Bytes are sent least
// significant bit first, sampled on the rising edge of CLK:
//
//	Command           Encoding   Payload
//	Set digit count   0xE0       rows*cols - 1
//	Set brightness    0xE4       level
//	Refresh           0xE8       none
//	Write cell n      0x20+n     character codes
//	Upload glyph m    0x40+m     5 bitmap bytes
//
// Configuration and text commands are followed by a 5µs settle delay.
//
// # Other Transports
//
// New accepts any conn.Conn whose Tx call is one chip-select framed
// transaction, which allows running the driver over a hardware SPI port with
// LSB-first mode or over a recording fake in tests.
package vfd
