package input

import (
	"strings"
	"testing"
	"time"
)

func feed(s *Stream, bytes string) {
	for i := 0; i < len(bytes); i++ {
		s.ch <- bytes[i]
	}
}

func TestReadInputKeys(t *testing.T) {
	tests := []struct {
		name  string
		bytes string
		want  Input
	}{
		{"nothing", "", Input{}},
		{"quit", "q", Input{Quit: true}},
		{"ctrl-c", "\x03", Input{Quit: true}},
		{"fire", " ", Input{Fire: true}},
		{"enter", "\r", Input{Enter: true}},
		{"left letter", "a", Input{Left: true}},
		{"right letter", "d", Input{Right: true}},
		{"warp letter", "w", Input{Warp: true}},
		{"left arrow", "\x1b[D", Input{Left: true}},
		{"right arrow", "\x1b[C", Input{Right: true}},
		{"up arrow warps", "\x1b[A", Input{Warp: true}},
		{"down arrow ignored", "\x1b[B", Input{}},
		{"combined", "a \x1b[A", Input{Left: true, Fire: true, Warp: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStream()
			feed(s, tt.bytes)
			got := s.readAt(time.Now())
			if string(got.Pressed) != tt.bytes {
				t.Errorf("Pressed = %q, want %q", got.Pressed, tt.bytes)
			}
			got.Pressed = nil
			if !sameKeys(got, tt.want) {
				t.Errorf("readAt(%q) = %+v, want %+v", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestHeldKeysExpire(t *testing.T) {
	s := newStream()
	start := time.Now()
	feed(s, "a")
	if in := s.readAt(start); !in.Left {
		t.Fatal("left not held on the frame it was pressed")
	}
	if in := s.readAt(start.Add(keyHoldDuration / 2)); !in.Left {
		t.Fatal("left released inside the hold window")
	}
	if in := s.readAt(start.Add(keyHoldDuration)); in.Left {
		t.Fatal("left still held after the hold window")
	}
}

func TestFireIsPerFrame(t *testing.T) {
	s := newStream()
	now := time.Now()
	feed(s, " ")
	if in := s.readAt(now); !in.Fire {
		t.Fatal("fire not reported")
	}
	if in := s.readAt(now); in.Fire {
		t.Fatal("fire reported twice for one press")
	}
}

func TestReset(t *testing.T) {
	s := newStream()
	now := time.Now()
	feed(s, "d")
	s.readAt(now)
	s.Reset()
	if in := s.readAt(now); in.Right {
		t.Fatal("right still held after Reset")
	}
}

func TestClosedStreamQuits(t *testing.T) {
	s := StartStream(strings.NewReader("a"))

	deadline := time.Now().Add(2 * time.Second)
	var in Input
	for time.Now().Before(deadline) {
		if in = ReadInput(s); in.Closed {
			break
		}
		time.Sleep(time.Millisecond)
	}
	if !in.Closed || !in.Quit {
		t.Fatalf("stream never reported closed: %+v", in)
	}
	// Later reads stay closed without blocking.
	if in := ReadInput(s); !in.Closed {
		t.Fatal("closed state lost")
	}
}

func TestTrackerEdges(t *testing.T) {
	var tr Tracker
	var events []string
	down := func(b Button) { events = append(events, "down", buttonName(b)) }
	up := func(b Button) { events = append(events, "up", buttonName(b)) }

	tr.Update(Input{Left: true}, down, up)
	tr.Update(Input{Left: true}, down, up)
	tr.Update(Input{Right: true, Warp: true}, down, up)
	tr.Update(Input{}, down, up)

	want := []string{
		"down", "left",
		"up", "left",
		"down", "right",
		"down", "warp",
		"up", "right",
		"up", "warp",
	}
	if strings.Join(events, " ") != strings.Join(want, " ") {
		t.Fatalf("events = %v, want %v", events, want)
	}
	if tr.Held(ButtonLeft) {
		t.Fatal("left reported held")
	}
}

func buttonName(b Button) string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	default:
		return "warp"
	}
}

func sameKeys(a, b Input) bool {
	return a.Quit == b.Quit && a.Fire == b.Fire && a.Enter == b.Enter &&
		a.Left == b.Left && a.Right == b.Right && a.Warp == b.Warp &&
		a.Closed == b.Closed
}

// endless yields the same byte forever, like a key stuck in auto-repeat.
type endless byte

func (e endless) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(e)
	}
	return len(p), nil
}

func TestCloseStopsReaderWhenNotDrained(t *testing.T) {
	s := StartStream(endless('a'))
	// Let the reader fill the channel and block on send.
	time.Sleep(20 * time.Millisecond)
	s.Close()
	s.Close()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-s.ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("reader goroutine still running after Close")
		}
	}
}

func TestAutoRepeatKeepsKeyHeld(t *testing.T) {
	s := newStream()
	start := time.Now()
	feed(s, "d")
	s.readAt(start)

	// Repeats 30 ms apart keep the key held on every frame between them.
	for ms := 30; ms <= 300; ms += 30 {
		now := start.Add(time.Duration(ms) * time.Millisecond)
		feed(s, "d")
		if in := s.readAt(now); !in.Right {
			t.Fatalf("right released at %d ms during auto-repeat", ms)
		}
		if in := s.readAt(now.Add(25 * time.Millisecond)); !in.Right {
			t.Fatalf("right released between repeats at %d ms", ms)
		}
	}
}
