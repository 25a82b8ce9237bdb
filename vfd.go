// Package vfd controls a character VFD module over a bit-banged 3-wire bus.
//
// The controller addresses a rows x cols grid of character cells and holds up
// to 16 user defined 5x7 glyphs.
//
// See the examples for how to use this package.
package vfd

import (
	"errors"
	"fmt"
	"time"

	"github.com/flavioheleno/vfd/bitbang"
	"github.com/flavioheleno/vfd/glyph"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
)

// MaxGlyphs is the number of glyph memory slots in the controller.
const MaxGlyphs = 16

// maxCells is the number of addressable character cells. Cell addresses past
// 0x3F fall into the glyph upload command range.
const maxCells = 32

// Wire commands. Display and glyph addresses are offsets added to the cell
// index and glyph slot.
const (
	cmdDigits     byte = 0xE0
	cmdBrightness byte = 0xE4
	cmdRefresh    byte = 0xE8
	addrDisplay   byte = 0x20
	addrGlyph     byte = 0x40

	charOffset byte = 0x30
	blank      byte = 0x20
)

// settleDelay is the wait after framed configuration and write commands.
const settleDelay = 5 * time.Microsecond

var errHalted = errors.New("vfd: halted")

// Opts is the configuration for the display.
type Opts struct {
	Rows       int  // Rows of characters (default: 2)
	Cols       int  // Columns per row (default: 16)
	Brightness byte // 1-255 (default: 128)
}

// entry is a glyph table slot. Its index is the controller memory slot.
type entry struct {
	symbol rune
	bitmap glyph.Bitmap
}

// Dev is the device handle for the display.
type Dev struct {
	c     conn.Conn
	sleep func(time.Duration)

	// Display geometry
	rows, cols int
	brightness byte

	glyphs  [MaxGlyphs]entry
	nglyphs int

	// Text cursor for the display.TextDisplay methods
	row, col int

	halted bool
}

// New creates a display on c and initializes it.
//
// Each c.Tx call must be one chip-select framed transaction; a *bitbang.Bus
// does exactly that. opts can be nil to use defaults (2x16, brightness 128).
func New(c conn.Conn, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{Rows: 2, Cols: 16}
	}
	if opts.Rows <= 0 || opts.Cols <= 0 {
		return nil, errors.New("vfd: rows and cols must be positive")
	}
	if opts.Rows*opts.Cols > maxCells {
		return nil, fmt.Errorf("vfd: %dx%d exceeds %d character cells", opts.Rows, opts.Cols, maxCells)
	}
	brightness := opts.Brightness
	if brightness == 0 {
		brightness = 128
	}

	d := &Dev{c: c, sleep: time.Sleep}
	if err := d.Init(opts.Rows, opts.Cols, brightness); err != nil {
		return nil, err
	}
	return d, nil
}

// NewGPIO creates a display driven by bit-banging din, clk and cs, and
// initializes it.
func NewGPIO(din, clk, cs gpio.PinOut, opts *Opts) (*Dev, error) {
	b, err := bitbang.New(din, clk, cs)
	if err != nil {
		return nil, wrap(err)
	}
	return New(b, opts)
}

// Init sets the geometry and brightness, then runs the power-up sequence:
// digit count, brightness, clear, refresh.
//
// New calls Init. Calling it again re-runs the sequence and resumes a halted
// device.
func (d *Dev) Init(rows, cols int, brightness byte) error {
	d.rows = rows
	d.cols = cols
	d.brightness = brightness
	d.halted = false

	if err := d.send(cmdDigits, byte(rows*cols-1)); err != nil {
		return err
	}
	d.sleep(settleDelay)

	if err := d.SetBrightness(brightness); err != nil {
		return err
	}
	if err := d.Clear(); err != nil {
		return err
	}

	if err := d.send(cmdRefresh); err != nil {
		return err
	}
	d.sleep(settleDelay)
	return nil
}

// SetBrightness sets the display brightness (1-255).
func (d *Dev) SetBrightness(level byte) error {
	if d.halted {
		return errHalted
	}
	d.brightness = level
	if err := d.send(cmdBrightness, level); err != nil {
		return err
	}
	d.sleep(settleDelay)
	return nil
}

// Clear writes a space to every cell, one transaction per cell, and moves the
// text cursor home.
func (d *Dev) Clear() error {
	if d.halted {
		return errHalted
	}
	for i := 0; i < d.rows*d.cols; i++ {
		if err := d.send(addrDisplay+byte(i), blank); err != nil {
			return err
		}
	}
	d.row, d.col = 0, 0
	return nil
}

// WriteChar writes c at row, col.
//
// The controller character set is offset by 0x30 for this command: the byte
// on the wire is c+0x30.
func (d *Dev) WriteChar(row, col int, c byte) error {
	if d.halted {
		return errHalted
	}
	if err := d.send(addrDisplay+d.cell(row, col), c+charOffset); err != nil {
		return err
	}
	d.sleep(settleDelay)
	return nil
}

// WriteText writes text starting at row, col. See WriteBytes.
func (d *Dev) WriteText(row, col int, text string) (int, error) {
	return d.WriteBytes(row, col, []byte(text))
}

// WriteBytes writes raw character codes starting at row, col in a single
// transaction. Output stops at the end of the row or at the first NUL byte;
// it never wraps to the next row. Like the controller's 8-bit registers the
// room left in the row is cols-col modulo 256, so a col past the row end
// does not block the write.
//
// It returns the number of characters sent.
func (d *Dev) WriteBytes(row, col int, p []byte) (int, error) {
	if d.halted {
		return 0, errHalted
	}
	room := int(byte(d.cols - col))
	w := make([]byte, 1, 1+len(p))
	w[0] = addrDisplay + d.cell(row, col)
	for _, c := range p {
		if c == 0 || len(w)-1 >= room {
			break
		}
		w = append(w, c)
	}
	if err := d.send(w...); err != nil {
		return 0, err
	}
	d.sleep(settleDelay)
	return len(w) - 1, nil
}

// AddGlyph stores bm under symbol in the next free glyph slot.
//
// It returns false, leaving the table unchanged, when all MaxGlyphs slots are
// taken. Slots are never freed. If symbol is added twice only the first entry
// is reachable.
func (d *Dev) AddGlyph(symbol rune, bm glyph.Bitmap) bool {
	if d.nglyphs >= MaxGlyphs {
		return false
	}
	d.glyphs[d.nglyphs] = entry{symbol: symbol, bitmap: bm}
	d.nglyphs++
	return true
}

// WriteGlyph uploads the glyph registered for symbol into its memory slot,
// points the cell at row, col to that slot and refreshes the display.
//
// An unknown symbol is ignored and nothing is sent.
func (d *Dev) WriteGlyph(row, col int, symbol rune) error {
	if d.halted {
		return errHalted
	}
	for i := 0; i < d.nglyphs; i++ {
		e := &d.glyphs[i]
		if e.symbol != symbol {
			continue
		}
		slot := byte(i)
		upload := append([]byte{addrGlyph + slot}, e.bitmap[:]...)
		if err := d.send(upload...); err != nil {
			return err
		}
		if err := d.send(addrDisplay+d.cell(row, col), slot); err != nil {
			return err
		}
		return d.send(cmdRefresh)
	}
	return nil
}

// Rows returns the number of character rows.
func (d *Dev) Rows() int {
	return d.rows
}

// Cols returns the number of characters per row.
func (d *Dev) Cols() int {
	return d.cols
}

// Brightness returns the last brightness level set.
func (d *Dev) Brightness() byte {
	return d.brightness
}

// Halt blanks the display. Further operations fail until Init is called.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	err := d.Clear()
	d.halted = true
	return err
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("vfd.Dev{%dx%d}", d.rows, d.cols)
}

// cell returns the linear cell index of row, col. Like the controller's 8-bit
// address register it wraps at 256.
func (d *Dev) cell(row, col int) byte {
	return byte(row*d.cols + col)
}

// send writes w as one framed transaction.
func (d *Dev) send(w ...byte) error {
	if err := d.c.Tx(w, nil); err != nil {
		return wrap(err)
	}
	return nil
}
