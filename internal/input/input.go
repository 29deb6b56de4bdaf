// Package input decodes raw terminal bytes into per-frame key and mouse state.
package input

import (
	"bufio"
	"strconv"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// maxPendingSeq bounds an unfinished escape sequence carried to the next
// frame. The longest SGR mouse report is well below it.
const maxPendingSeq = 24

// Input represents the current frame's input state.
type Input struct {
	Quit      bool
	Interrupt bool // Ctrl-C
	Tab       bool
	Left      bool
	Right     bool
	Enter     bool
	Escape    bool

	Fire         int    // Space presses and left clicks this frame; each fires once
	Erase        int    // Backspace presses this frame
	Text         []rune // Printable characters typed this frame
	PointerCol   int    // Last reported mouse column (1-based)
	PointerRow   int    // Last reported mouse row (1-based)
	PointerMoved bool   // A mouse report arrived this frame
	Pressed      []byte
}

// keyState tracks the last time each held key was pressed.
type keyState struct {
	quit   time.Time
	left   time.Time
	right  time.Time
	enter  time.Time
	escape time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch      chan byte
	state   keyState
	pending []byte // Unfinished escape sequence from the previous frame
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func newStream() *Stream {
	return &Stream{ch: make(chan byte, 128)}
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys and mouse reports, and
// accumulates all pressed keys. Uses key state persistence to allow
// detecting simultaneous key combinations.
func ReadInput(s *Stream) Input {
	var buf []byte

	// Drain all available bytes
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	return s.parse(buf, time.Now())
}

// ResetKeyInput forgets held keys and discards any unread bytes, so a key
// that started a screen does not leak into the next one.
func ResetKeyInput(s *Stream) {
	s.state = keyState{}
	s.pending = nil
	for {
		select {
		case _, ok := <-s.ch:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

// parse updates key state from buf and builds the frame's Input. A CSI
// sequence cut off at the end of buf is held back and completed by the
// next call.
func (s *Stream) parse(buf []byte, now time.Time) Input {
	if len(s.pending) > 0 {
		buf = append(s.pending, buf...)
		s.pending = nil
	}
	input := Input{Pressed: buf}

scan:
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// Check for escape sequences (arrow keys, mouse, etc.)
		if b == '\x1b' && i+1 < len(buf) && buf[i+1] == '[' {
			if i+2 == len(buf) && s.hold(buf[i:]) {
				break scan
			}
			// CSI sequence: ESC [ <code>
			if i+2 < len(buf) {
				switch buf[i+2] {
				case 'A', 'B': // Up and down arrows are unused
					i += 2
					continue
				case 'C': // Right arrow
					s.state.right = now
					i += 2
					continue
				case 'D': // Left arrow
					s.state.left = now
					i += 2
					continue
				case '<': // SGR mouse report
					n, status := parseMouse(buf[i+3:], &input)
					if status == mouseDone {
						i += 2 + n
						continue
					}
					if status == mousePartial && s.hold(buf[i:]) {
						break scan
					}
				}
			}
		}

		switch {
		case b == ' ':
			input.Fire++
		case b == 0x03:
			input.Interrupt = true
		case b == '\t':
			input.Tab = true
		case b == '\b' || b == 0x7f:
			input.Erase++
		}
		if b >= 0x20 && b < 0x7f {
			input.Text = append(input.Text, rune(b))
		}

		// Single byte handling - update key state
		applyByteToState(&s.state, b, now)
	}

	// Build input from key state - keys are "pressed" if seen within hold duration
	input.Quit = now.Sub(s.state.quit) < keyHoldDuration
	input.Left = now.Sub(s.state.left) < keyHoldDuration
	input.Right = now.Sub(s.state.right) < keyHoldDuration
	input.Enter = now.Sub(s.state.enter) < keyHoldDuration
	input.Escape = now.Sub(s.state.escape) < keyHoldDuration

	return input
}

// hold keeps an unfinished sequence for the next frame. Overlong
// sequences are refused and decoded as plain bytes.
func (s *Stream) hold(seq []byte) bool {
	if len(seq) > maxPendingSeq {
		return false
	}
	s.pending = append([]byte(nil), seq...)
	return true
}

// mouseStatus is the outcome of decoding an SGR mouse report.
type mouseStatus int

const (
	mouseDone      mouseStatus = iota // Report decoded
	mousePartial                      // Valid so far, more bytes needed
	mouseMalformed                    // Not a mouse report
)

// parseMouse decodes the body of an SGR mouse report, "b;col;row" followed
// by M (press or motion) or m (release). Returns the bytes consumed.
func parseMouse(buf []byte, input *Input) (int, mouseStatus) {
	var fields [3]int
	field := 0
	start := 0
	for i, b := range buf {
		switch {
		case b >= '0' && b <= '9':
			continue
		case b == ';' && field < 2:
			n, err := strconv.Atoi(string(buf[start:i]))
			if err != nil {
				return 0, mouseMalformed
			}
			fields[field] = n
			field++
			start = i + 1
		case (b == 'M' || b == 'm') && field == 2:
			n, err := strconv.Atoi(string(buf[start:i]))
			if err != nil {
				return 0, mouseMalformed
			}
			fields[2] = n
			button := fields[0]
			input.PointerCol = fields[1]
			input.PointerRow = fields[2]
			input.PointerMoved = true
			// Left button press; motion reports carry bit 32, wheel bit 64
			if b == 'M' && button&(32|64) == 0 && button&3 == 0 {
				input.Fire++
			}
			return i + 1, mouseDone
		default:
			return 0, mouseMalformed
		}
	}
	return 0, mousePartial
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		state.quit = now
	case 'a', 'A', 'h', 'H':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case '\n', '\r':
		state.enter = now
	case '\x1b':
		state.escape = now
	}
}
