// Package keymap defines key bindings for the application.
package keymap

// Contexts a binding can belong to.
const (
	ContextGlobal    = "global"
	ContextPlayback  = "playback"
	ContextPlaylists = "playlists"
	ContextTracks    = "tracks"
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
	{ActionSwitchFocus, []string{"tab"}, "Switch pane", ContextGlobal},
	{ActionHelp, []string{"?"}, "Show help", ContextGlobal},

	// Playback
	{ActionPlayPause, []string{" ", "space"}, "Play/pause", ContextPlayback},
	{ActionNextTrack, []string{"pgdown", "."}, "Next track", ContextPlayback},
	{ActionPrevTrack, []string{"pgup", ","}, "Previous track", ContextPlayback},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", ContextPlayback},
	{ActionVolumeDown, []string{"-"}, "Volume down", ContextPlayback},
	{ActionCycleRepeat, []string{"R"}, "Cycle loop mode", ContextPlayback},
	{ActionToggleShuffle, []string{"S"}, "Toggle shuffle", ContextPlayback},

	// Playlists pane
	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextPlaylists},
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextPlaylists},
	{ActionJumpStart, []string{"g", "home"}, "First playlist", ContextPlaylists},
	{ActionJumpEnd, []string{"G", "end"}, "Last playlist", ContextPlaylists},
	{ActionSelect, []string{"enter"}, "Activate playlist", ContextPlaylists},
	{ActionNewPlaylist, []string{"n"}, "New playlist", ContextPlaylists},
	{ActionRename, []string{"r"}, "Rename playlist", ContextPlaylists},
	{ActionDelete, []string{"d", "delete"}, "Delete playlist", ContextPlaylists},

	// Tracks pane
	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextTracks},
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextTracks},
	{ActionJumpStart, []string{"g", "home"}, "First track", ContextTracks},
	{ActionJumpEnd, []string{"G", "end"}, "Last track", ContextTracks},
	{ActionSelect, []string{"enter"}, "Play track", ContextTracks},
	{ActionAddTrack, []string{"a"}, "Add track", ContextTracks},
	{ActionRename, []string{"r"}, "Rename track", ContextTracks},
	{ActionDelete, []string{"d", "delete"}, "Remove track", ContextTracks},
	{ActionMoveItemUp, []string{"K", "shift+up"}, "Move track up", ContextTracks},
	{ActionMoveItemDown, []string{"J", "shift+down"}, "Move track down", ContextTracks},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
