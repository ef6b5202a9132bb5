// internal/playback/state_test.go
package playback

import (
	"errors"
	"testing"
)

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateStopped, "Stopped"},
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{State(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestSession_State(t *testing.T) {
	tests := []struct {
		name    string
		session Session
		want    State
	}{
		{"no track", Session{IsPlaying: true}, StateStopped},
		{"playing", Session{CurrentTrackID: "a", IsPlaying: true}, StatePlaying},
		{"paused", Session{CurrentTrackID: "a"}, StatePaused},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.session.State(); got != tt.want {
				t.Errorf("State() = %v, want %v", got, tt.want)
			}
			if got := tt.session.State().IsActive(); got != (tt.want != StateStopped) {
				t.Errorf("IsActive() = %v", got)
			}
		})
	}
}

func TestLoopMode_String(t *testing.T) {
	tests := []struct {
		mode LoopMode
		want string
	}{
		{LoopOff, "off"},
		{LoopAll, "all"},
		{LoopOne, "one"},
		{LoopMode(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestLoopMode_NextCycles(t *testing.T) {
	m := LoopOff
	want := []LoopMode{LoopAll, LoopOne, LoopOff, LoopAll}
	for i, w := range want {
		m = m.Next()
		if m != w {
			t.Fatalf("step %d: Next() = %v, want %v", i, m, w)
		}
	}
}

func TestParseLoopMode(t *testing.T) {
	tests := []struct {
		in   string
		want LoopMode
		err  bool
	}{
		{"off", LoopOff, false},
		{"all", LoopAll, false},
		{" ONE ", LoopOne, false},
		{"radio", LoopOff, true},
		{"", LoopOff, true},
	}
	for _, tt := range tests {
		got, err := ParseLoopMode(tt.in)
		if tt.err {
			if !errors.Is(err, ErrInvalidLoopMode) {
				t.Errorf("ParseLoopMode(%q) err = %v, want ErrInvalidLoopMode", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseLoopMode(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestNewSession_ClampsAndNeverRestoresTrack(t *testing.T) {
	s := NewSession(Settings{Volume: 3, Loop: LoopOne, Shuffle: true})

	if s.Volume != 1 {
		t.Errorf("Volume = %v, want 1", s.Volume)
	}
	if s.CurrentTrackID != "" || s.IsPlaying || s.ShuffleQueue != nil {
		t.Errorf("session should start paused with no track: %+v", s)
	}
	if s.Settings() != (Settings{Volume: 1, Loop: LoopOne, Shuffle: true}) {
		t.Errorf("Settings() = %+v", s.Settings())
	}
}

func TestSession_CloneDoesNotShareQueue(t *testing.T) {
	s := Session{ShuffleEnabled: true, ShuffleQueue: []string{"a", "b"}}
	c := s.Clone()
	c.ShuffleQueue[0] = "z"
	if s.ShuffleQueue[0] != "a" {
		t.Error("Clone should copy the shuffle queue")
	}
}
