package playlist

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

var (
	ErrEmptyLocation = errors.New("no path or url given")
	ErrNotAudioFile  = errors.New("not a supported audio file")
)

// audioExtensions lists the file extensions the sink can decode.
var audioExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".flac": true,
	".ogg":  true,
}

// IsAudioFile reports whether the path has a supported audio extension.
func IsAudioFile(p string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(p))]
}

// FromPath creates a local track from a file path, reading its title from tags.
// Falls back to the file name when the file carries no usable title.
func FromPath(p string) (Track, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return Track{}, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return Track{}, err
	}
	if info.IsDir() || !IsAudioFile(abs) {
		return Track{}, fmt.Errorf("%s: %w", abs, ErrNotAudioFile)
	}

	return Track{
		ID:      NewID(),
		Title:   readTitle(abs),
		URL:     (&url.URL{Scheme: "file", Path: abs}).String(),
		AddedAt: Now(),
		IsLocal: true,
	}, nil
}

// FromURL creates a remote track. An empty title is derived from the URL path.
func FromURL(raw, title string) (Track, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Track{}, err
	}
	if title == "" {
		title = titleFromName(path.Base(u.Path))
		if title == "" || title == "." || title == "/" {
			title = u.Host
		}
	}
	return Track{
		ID:      NewID(),
		Title:   title,
		URL:     raw,
		AddedAt: Now(),
	}, nil
}

// FromInput creates a track from user input: http(s) URLs become remote
// tracks, data: URLs embedded ones, and anything else a local path.
func FromInput(input string) (Track, error) {
	input = strings.TrimSpace(input)
	switch {
	case input == "":
		return Track{}, ErrEmptyLocation
	case strings.HasPrefix(input, "http://"), strings.HasPrefix(input, "https://"):
		return FromURL(input, "")
	case strings.HasPrefix(input, "data:"):
		return Track{
			ID:      NewID(),
			Title:   "Embedded audio",
			URL:     input,
			AddedAt: Now(),
			IsLocal: true,
		}, nil
	case strings.HasPrefix(input, "file://"):
		u, err := url.Parse(input)
		if err != nil {
			return Track{}, err
		}
		return FromPath(u.Path)
	}
	return FromPath(expandHome(input))
}

func readTitle(p string) string {
	f, err := os.Open(p)
	if err != nil {
		return titleFromName(filepath.Base(p))
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil || strings.TrimSpace(m.Title()) == "" {
		return titleFromName(filepath.Base(p))
	}
	if artist := strings.TrimSpace(m.Artist()); artist != "" {
		return artist + " - " + strings.TrimSpace(m.Title())
	}
	return strings.TrimSpace(m.Title())
}

func titleFromName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func expandHome(p string) string {
	if p != "" && p[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[1:])
		}
	}
	return p
}
