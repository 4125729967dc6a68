// Package input turns a raw terminal byte stream into per-frame key state.
package input

import (
	"bufio"
	"io"
	"sync"
	"time"
)

// keyHoldDuration is how long a key is considered held after its last byte.
// Terminals send no key-up, so a held key is a stream of auto-repeats,
// typically 30-40 ms apart. The window is shorter than the usual 250-500 ms
// delay before the first repeat, so holding a key moves the ship for one
// window, pauses until repeats start, then moves continuously. A longer
// window would make every tap move the ship that far instead.
const keyHoldDuration = 120 * time.Millisecond

// Input is one frame's view of the keyboard.
type Input struct {
	// Seen in this frame's bytes.
	Quit  bool
	Fire  bool
	Enter bool

	// Held: seen within keyHoldDuration.
	Left  bool
	Right bool
	Warp  bool

	// Closed is set once the byte stream has ended.
	Closed  bool
	Pressed []byte
}

// keyState tracks the last time each holdable key was seen.
type keyState struct {
	left  time.Time
	right time.Time
	warp  time.Time
}

// Stream delivers input bytes via a channel and tracks key state.
type Stream struct {
	ch       chan byte
	done     chan struct{}
	stopOnce sync.Once
	state    keyState
	closed   bool
}

func newStream() *Stream {
	return &Stream{
		ch:   make(chan byte, 128),
		done: make(chan struct{}),
	}
}

// StartStream spawns a goroutine that reads from r and feeds the stream. The
// goroutine ends when r returns an error or once Close is called and its
// current read returns.
func StartStream(r io.Reader) *Stream {
	s := newStream()
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	go func() {
		defer close(s.ch)
		for {
			select {
			case <-s.done:
				return
			default:
			}
			b, err := br.ReadByte()
			if err != nil {
				return
			}
			select {
			case s.ch <- b:
			case <-s.done:
				return
			}
		}
	}()
	return s
}

// Close stops delivering bytes. Safe to call more than once.
func (s *Stream) Close() {
	s.stopOnce.Do(func() { close(s.done) })
}

// ReadInput drains all available bytes from the stream without blocking.
func ReadInput(s *Stream) Input {
	return s.readAt(time.Now())
}

func (s *Stream) readAt(now time.Time) Input {
	var buf []byte

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := Input{Closed: s.closed, Quit: s.closed, Pressed: buf}
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI arrow keys: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.warp = now
			case 'C':
				s.state.right = now
			case 'D':
				s.state.left = now
			}
			i += 2
			continue
		}
		applyByte(&in, &s.state, b, now)
	}

	in.Left = now.Sub(s.state.left) < keyHoldDuration
	in.Right = now.Sub(s.state.right) < keyHoldDuration
	in.Warp = now.Sub(s.state.warp) < keyHoldDuration
	return in
}

func applyByte(in *Input, state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		in.Quit = true
	case 'a', 'A', 'j', 'J':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'i', 'I':
		state.warp = now
	case ' ':
		in.Fire = true
	case '\n', '\r':
		in.Enter = true
	}
}

// Reset forgets every held key.
func (s *Stream) Reset() {
	s.state = keyState{}
}

// Button is a holdable key.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonWarp
	numButtons
)

// Tracker turns per-frame held state into press and release edges.
type Tracker struct {
	held [numButtons]bool
}

// Update compares in with the previous frame, calling down for every newly
// held button and up for every released one.
func (t *Tracker) Update(in Input, down, up func(Button)) {
	now := [numButtons]bool{
		ButtonLeft:  in.Left,
		ButtonRight: in.Right,
		ButtonWarp:  in.Warp,
	}
	for b := Button(0); b < numButtons; b++ {
		switch {
		case now[b] && !t.held[b]:
			down(b)
		case !now[b] && t.held[b]:
			up(b)
		}
	}
	t.held = now
}

// Held reports whether b was held at the last Update.
func (t *Tracker) Held(b Button) bool {
	return t.held[b]
}
