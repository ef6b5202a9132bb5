package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Playlist  string
	Local     string
	Remote    string
	Playing   string
	Paused    string
	Stopped   string
	Shuffle   string
	RepeatAll string
	RepeatOne string
	Volume    string
}

var (
	nerdIcons = Icons{
		Playlist:  "󰲸 ",      // nf-md-playlist_music
		Local:     " ", // nf-fa-music
		Remote:    "󰖟 ",      // nf-md-web
		Playing:   "󰐊",       // nf-md-play
		Paused:    "󰏤",       // nf-md-pause
		Stopped:   "󰓛",       // nf-md-stop
		Shuffle:   "󰒟",       // nf-md-shuffle
		RepeatAll: "󰑖",       // nf-md-repeat
		RepeatOne: "󰑘",       // nf-md-repeat_once
		Volume:    "󰕾",       // nf-md-volume_high
	}

	unicodeIcons = Icons{
		Playlist:  "📋 ",
		Local:     "🎵 ",
		Remote:    "🌐 ",
		Playing:   "▶",
		Paused:    "⏸",
		Stopped:   "■",
		Shuffle:   "🔀",
		RepeatAll: "🔁",
		RepeatOne: "🔂",
		Volume:    "🔊",
	}

	noneIcons = Icons{
		Playing:   ">",
		Paused:    "||",
		Stopped:   "[]",
		Shuffle:   "[S]",
		RepeatAll: "[R]",
		RepeatOne: "[1]",
		Volume:    "vol",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// FormatPlaylist formats a playlist name with the appropriate icon.
func FormatPlaylist(name string) string {
	return current.Playlist + name
}

// FormatTrack formats a track title, marking whether its audio is
// local or fetched over the network.
func FormatTrack(title string, local bool) string {
	if local {
		return current.Local + title
	}
	return current.Remote + title
}

// State returns the indicator for a playback state.
func State(playing, hasTrack bool) string {
	switch {
	case !hasTrack:
		return current.Stopped
	case playing:
		return current.Playing
	default:
		return current.Paused
	}
}

// Shuffle returns the shuffle icon.
func Shuffle() string {
	return current.Shuffle
}

// RepeatAll returns the repeat all icon.
func RepeatAll() string {
	return current.RepeatAll
}

// RepeatOne returns the repeat one icon.
func RepeatOne() string {
	return current.RepeatOne
}

// Volume returns the volume icon.
func Volume() string {
	return current.Volume
}
