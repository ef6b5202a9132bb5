package mpris

import (
	"os"
	"path/filepath"

	"github.com/llehouerou/frequency/internal/player"
)

// coverNames lists common album art filenames in priority order.
var coverNames = []string{
	"cover.jpg", "cover.png", "cover.jpeg",
	"folder.jpg", "folder.png", "folder.jpeg",
	"album.jpg", "album.png", "album.jpeg",
	"front.jpg", "front.png", "front.jpeg",
}

// FindAlbumArt looks for album art next to a local track. Remote and
// embedded tracks never have art.
func FindAlbumArt(trackURL string) string {
	p, ok, err := player.LocalPath(trackURL)
	if err != nil || !ok {
		return ""
	}
	dir := filepath.Dir(p)
	for _, name := range coverNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
