package keymap

import (
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name    string
		context string
		minLen  int
	}{
		{"global", ContextGlobal, 3},
		{"playback", ContextPlayback, 7},
		{"playlists", ContextPlaylists, 5},
		{"tracks", ContextTracks, 5},
		{"unknown", "unknown", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)
			if len(result) < tt.minLen {
				t.Errorf("ByContext(%q) returned %d items, want at least %d", tt.context, len(result), tt.minLen)
			}
			if tt.minLen == 0 && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, want none", tt.context, len(result))
			}
			for _, b := range result {
				if b.Context != tt.context {
					t.Errorf("binding context = %q, want %q", b.Context, tt.context)
				}
			}
		})
	}
}

func TestPlaybackBindingsCoverControls(t *testing.T) {
	want := []Action{
		ActionPlayPause,
		ActionNextTrack,
		ActionPrevTrack,
		ActionVolumeUp,
		ActionVolumeDown,
		ActionCycleRepeat,
		ActionToggleShuffle,
	}
	have := make(map[Action]bool)
	for _, b := range ByContext(ContextPlayback) {
		have[b.Action] = true
	}
	for _, a := range want {
		if !have[a] {
			t.Errorf("missing playback action %q", a)
		}
	}
}

func TestBindingsHaveRequiredFields(t *testing.T) {
	valid := map[string]bool{
		ContextGlobal:    true,
		ContextPlayback:  true,
		ContextPlaylists: true,
		ContextTracks:    true,
	}
	for i, b := range Bindings {
		if b.Action == "" {
			t.Errorf("binding[%d] has empty Action", i)
		}
		if len(b.Keys) == 0 {
			t.Errorf("binding[%d] (%s) has no Keys", i, b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding[%d] (%s) has empty Description", i, b.Action)
		}
		if !valid[b.Context] {
			t.Errorf("binding[%d] (%s) has invalid context %q", i, b.Action, b.Context)
		}
	}
}

func TestBindingsNoConflictsWithinScope(t *testing.T) {
	// A pane key must not shadow a different playback or global action.
	shared := make(map[string]Action)
	for _, b := range Bindings {
		if b.Context != ContextGlobal && b.Context != ContextPlayback {
			continue
		}
		for _, k := range b.Keys {
			if prev, ok := shared[k]; ok && prev != b.Action {
				t.Errorf("key %q bound to both %q and %q", k, prev, b.Action)
			}
			shared[k] = b.Action
		}
	}
	for _, b := range Bindings {
		if b.Context == ContextGlobal || b.Context == ContextPlayback {
			continue
		}
		for _, k := range b.Keys {
			if a, ok := shared[k]; ok {
				t.Errorf("%s key %q shadows %q", b.Context, k, a)
			}
		}
	}
}
