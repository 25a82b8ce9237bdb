package bitbangtest

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/gpio"
)

// shift writes v LSB first the way a bit-banged bus does.
func shift(din, clk *Pin, v byte) {
	for i := 0; i < 8; i++ {
		_ = clk.Out(gpio.Low)
		_ = din.Out(gpio.Level(v&(1<<uint(i)) != 0))
		_ = clk.Out(gpio.High)
	}
}

func TestFrames(t *testing.T) {
	r := &Record{}
	din, clk, cs := r.Pin("DIN"), r.Pin("CLK"), r.Pin("CS")

	r.Sleep(time.Millisecond) // before any frame, ignored
	_ = cs.Out(gpio.Low)
	shift(din, clk, 0xE4)
	shift(din, clk, 0x80)
	_ = cs.Out(gpio.High)
	r.Sleep(5 * time.Microsecond)
	r.Sleep(5 * time.Microsecond)
	_ = cs.Out(gpio.Low)
	shift(din, clk, 0xE8)
	_ = cs.Out(gpio.High)

	got, err := r.Frames("DIN", "CLK", "CS")
	if err != nil {
		t.Fatalf("Frames() failed: %v", err)
	}
	want := []Frame{
		{W: []byte{0xE4, 0x80}, Settle: 10 * time.Microsecond},
		{W: []byte{0xE8}},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Frames() difference (-got +want):\n%s", diff)
	}
}

func TestFramesIgnoresClockWhileDeselected(t *testing.T) {
	r := &Record{}
	din, clk, cs := r.Pin("DIN"), r.Pin("CLK"), r.Pin("CS")

	shift(din, clk, 0xFF)
	_ = cs.Out(gpio.Low)
	shift(din, clk, 0x01)
	_ = cs.Out(gpio.High)

	got, err := r.Frames("DIN", "CLK", "CS")
	if err != nil {
		t.Fatalf("Frames() failed: %v", err)
	}
	want := []Frame{{W: []byte{0x01}}}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Frames() difference (-got +want):\n%s", diff)
	}
}

func TestFramesStrayBits(t *testing.T) {
	r := &Record{}
	din, clk, cs := r.Pin("DIN"), r.Pin("CLK"), r.Pin("CS")

	_ = cs.Out(gpio.Low)
	_ = clk.Out(gpio.Low)
	_ = din.Out(gpio.High)
	_ = clk.Out(gpio.High)
	_ = cs.Out(gpio.High)

	if _, err := r.Frames("DIN", "CLK", "CS"); err == nil {
		t.Error("Frames() should fail on a partial byte")
	}
}

func TestFramesUnreleased(t *testing.T) {
	r := &Record{}
	din, clk, cs := r.Pin("DIN"), r.Pin("CLK"), r.Pin("CS")

	_ = cs.Out(gpio.Low)
	shift(din, clk, 0x20)

	if _, err := r.Frames("DIN", "CLK", "CS"); err == nil {
		t.Error("Frames() should fail when CS is never released")
	}
}

func TestPinErr(t *testing.T) {
	r := &Record{}
	p := r.Pin("CS")
	p.Err = errors.New("boom")

	if err := p.Out(gpio.High); !errors.Is(err, p.Err) {
		t.Errorf("Out() = %v, want %v", err, p.Err)
	}
	if len(r.Events) != 0 {
		t.Errorf("failed Out() was logged: %v", r.Events)
	}
	if p.L != gpio.Low {
		t.Error("failed Out() changed the pin level")
	}
}

func TestPinLevelAndName(t *testing.T) {
	r := &Record{}
	p := r.Pin("CLK")
	if err := p.Out(gpio.High); err != nil {
		t.Fatal(err)
	}
	if p.L != gpio.High {
		t.Errorf("L = %v, want High", p.L)
	}
	if p.String() != "CLK" {
		t.Errorf("String() = %q, want %q", p.String(), "CLK")
	}
}
