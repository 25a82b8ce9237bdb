package vfd

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
)

func wrap(err error) error {
	return fmt.Errorf("vfd: %w", err)
}

// AutoScroll is not supported by the controller.
func (d *Dev) AutoScroll(enabled bool) error {
	return wrap(display.ErrNotImplemented)
}

// Cursor sets the cursor mode. The controller has no visible cursor, so only
// display.CursorOff is accepted.
func (d *Dev) Cursor(modes ...display.CursorMode) error {
	for _, mode := range modes {
		switch mode {
		case display.CursorOff:
		case display.CursorBlink, display.CursorUnderline, display.CursorBlock:
			return wrap(display.ErrNotImplemented)
		default:
			return wrap(display.ErrInvalidCommand)
		}
	}
	return nil
}

// Display turns the display on by sending a refresh. Turning it off is not
// supported.
func (d *Dev) Display(on bool) error {
	if !on {
		return wrap(display.ErrNotImplemented)
	}
	if d.halted {
		return errHalted
	}
	return d.send(cmdRefresh)
}

// Home moves the cursor to (MinRow(), MinCol()).
func (d *Dev) Home() error {
	return d.MoveTo(d.MinRow(), d.MinCol())
}

// MinCol returns the min column position.
func (d *Dev) MinCol() int {
	return 0
}

// MinRow returns the min row position.
func (d *Dev) MinRow() int {
	return 0
}

// Move moves the cursor one cell in dir.
func (d *Dev) Move(dir display.CursorDirection) error {
	row, col := d.row, d.col
	switch dir {
	case display.Forward:
		col++
	case display.Backward:
		col--
	case display.Up:
		row--
	case display.Down:
		row++
	default:
		return wrap(display.ErrInvalidCommand)
	}
	return d.MoveTo(row, col)
}

// MoveTo moves the cursor to row, col.
func (d *Dev) MoveTo(row, col int) error {
	if row < d.MinRow() || row >= d.rows || col < d.MinCol() || col >= d.cols {
		return fmt.Errorf("vfd: MoveTo(%d, %d) out of range", row, col)
	}
	d.row, d.col = row, col
	return nil
}

// Write writes p at the cursor and advances it by the number of characters
// sent.
//
// Text is cut at the end of the row and at the first NUL byte. Unlike
// io.Writer, a cut write returns n < len(p) with a nil error; only bus
// failures are errors.
func (d *Dev) Write(p []byte) (int, error) {
	n, err := d.WriteBytes(d.row, d.col, p)
	d.col += n
	return n, err
}

// WriteString writes text at the cursor. See Write.
func (d *Dev) WriteString(text string) (int, error) {
	return d.Write([]byte(text))
}

// Backlight sets the display brightness.
func (d *Dev) Backlight(intensity display.Intensity) error {
	return d.SetBrightness(byte(intensity))
}

var _ display.TextDisplay = &Dev{}
var _ display.DisplayBacklight = &Dev{}
var _ conn.Resource = &Dev{}
