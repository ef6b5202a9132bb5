package player

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

const (
	formatMP3  = "mp3"
	formatWAV  = "wav"
	formatFLAC = "flac"
	formatOGG  = "ogg"

	maxRemoteSize = 256 << 20 // remote resources are buffered in memory
	userAgent     = "Frequency/0.1 (https://github.com/llehouerou/frequency)"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	ErrUnsupportedScheme = errors.New("unsupported url scheme")
	ErrResourceTooLarge  = errors.New("remote resource too large")
	ErrMalformedDataURL  = errors.New("malformed data url")
)

// Resource is an opened, seekable audio resource.
type Resource struct {
	Reader io.ReadSeekCloser
	Format string // mp3, wav, flac or ogg
}

// Opener resolves a track URL into a resource.
type Opener func(ctx context.Context, rawURL string) (*Resource, error)

type memReader struct {
	*bytes.Reader
}

func (memReader) Close() error { return nil }

// NewOpener returns the default opener. Remote resources are fetched with
// client and buffered in memory so they can be rewound.
func NewOpener(client *http.Client) Opener {
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	return func(ctx context.Context, rawURL string) (*Resource, error) {
		switch {
		case strings.HasPrefix(rawURL, "data:"):
			return openData(rawURL)
		case strings.HasPrefix(rawURL, "http://"), strings.HasPrefix(rawURL, "https://"):
			return openHTTP(ctx, client, rawURL)
		}
		p, ok, err := LocalPath(rawURL)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%q: %w", rawURL, ErrUnsupportedScheme)
		}
		return openFile(p)
	}
}

// LocalPath returns the filesystem path a track URL points to. ok is false
// for remote and embedded audio.
func LocalPath(rawURL string) (path string, ok bool, err error) {
	switch {
	case strings.HasPrefix(rawURL, "file://"):
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", false, fmt.Errorf("parse %q: %w", rawURL, err)
		}
		return u.Path, true, nil
	case strings.HasPrefix(rawURL, "data:"), strings.Contains(rawURL, "://"):
		return "", false, nil
	default:
		return rawURL, true, nil
	}
}

func openFile(p string) (*Resource, error) {
	format, err := formatFromExt(p)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	return &Resource{Reader: f, Format: format}, nil
}

func openHTTP(ctx context.Context, client *http.Client, rawURL string) (*Resource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", rawURL, resp.StatusCode)
	}

	format, err := formatFromMIME(resp.Header.Get("Content-Type"))
	if err != nil {
		u, perr := url.Parse(rawURL)
		if perr != nil {
			return nil, err
		}
		if format, err = formatFromExt(u.Path); err != nil {
			return nil, err
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteSize+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", rawURL, err)
	}
	if len(data) > maxRemoteSize {
		return nil, fmt.Errorf("%s: %w", rawURL, ErrResourceTooLarge)
	}
	return &Resource{Reader: memReader{bytes.NewReader(data)}, Format: format}, nil
}

// openData decodes a data: URL, as produced when audio is embedded locally.
func openData(rawURL string) (*Resource, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(rawURL, "data:"), ",")
	if !ok {
		return nil, ErrMalformedDataURL
	}

	isBase64 := strings.HasSuffix(meta, ";base64")
	format, err := formatFromMIME(strings.TrimSuffix(meta, ";base64"))
	if err != nil {
		return nil, err
	}

	var data []byte
	if isBase64 {
		data, err = base64.StdEncoding.DecodeString(payload)
	} else {
		var s string
		s, err = url.PathUnescape(payload)
		data = []byte(s)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDataURL, err)
	}
	return &Resource{Reader: memReader{bytes.NewReader(data)}, Format: format}, nil
}

func formatFromExt(p string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path.Base(p)))
	switch ext {
	case ".mp3":
		return formatMP3, nil
	case ".wav", ".wave":
		return formatWAV, nil
	case ".flac":
		return formatFLAC, nil
	case ".ogg", ".oga":
		return formatOGG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func formatFromMIME(contentType string) (string, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, contentType)
	}
	switch mediaType {
	case "audio/mpeg", "audio/mp3":
		return formatMP3, nil
	case "audio/wav", "audio/wave", "audio/x-wav", "audio/vnd.wave":
		return formatWAV, nil
	case "audio/flac", "audio/x-flac":
		return formatFLAC, nil
	case "audio/ogg", "audio/vorbis", "application/ogg":
		return formatOGG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, mediaType)
	}
}

func decode(res *Resource) (beep.StreamSeekCloser, beep.Format, error) {
	switch res.Format {
	case formatMP3:
		return mp3.Decode(res.Reader)
	case formatWAV:
		return wav.Decode(res.Reader)
	case formatFLAC:
		return flac.Decode(res.Reader)
	case formatOGG:
		return vorbis.Decode(res.Reader)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, res.Format)
	}
}
