package player

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestOpener_DataURL(t *testing.T) {
	payload := []byte("RIFF....WAVEfmt ")
	raw := "data:audio/wav;base64," + base64.StdEncoding.EncodeToString(payload)

	res, err := NewOpener(nil)(context.Background(), raw)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer res.Reader.Close()

	if res.Format != formatWAV {
		t.Errorf("Format = %q, want wav", res.Format)
	}
	got, _ := io.ReadAll(res.Reader)
	if string(got) != string(payload) {
		t.Errorf("payload = %q, want %q", got, payload)
	}
	if _, err := res.Reader.Seek(0, io.SeekStart); err != nil {
		t.Errorf("data resource should be seekable: %v", err)
	}
}

func TestOpener_DataURL_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"no comma", "data:audio/mpeg;base64", ErrMalformedDataURL},
		{"bad base64", "data:audio/mpeg;base64,!!!", ErrMalformedDataURL},
		{"unknown mime", "data:text/plain;base64,aGk=", ErrUnsupportedFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOpener(nil)(context.Background(), tt.raw)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestOpener_File(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "song.flac")
	if err := os.WriteFile(p, []byte("fLaC"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, raw := range []string{p, "file://" + p} {
		res, err := NewOpener(nil)(context.Background(), raw)
		if err != nil {
			t.Fatalf("open %q: %v", raw, err)
		}
		if res.Format != formatFLAC {
			t.Errorf("Format = %q, want flac", res.Format)
		}
		res.Reader.Close()
	}
}

func TestOpener_UnsupportedScheme(t *testing.T) {
	_, err := NewOpener(nil)(context.Background(), "ftp://example.com/a.mp3")
	if !errors.Is(err, ErrUnsupportedScheme) {
		t.Errorf("err = %v, want ErrUnsupportedScheme", err)
	}
}

func TestOpener_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/typed":
			w.Header().Set("Content-Type", "audio/ogg")
			_, _ = w.Write([]byte("OggS"))
		case "/untyped/track.mp3":
			w.Header().Set("Content-Type", "application/octet-stream")
			_, _ = w.Write([]byte("ID3"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	open := NewOpener(srv.Client())

	res, err := open(context.Background(), srv.URL+"/typed")
	if err != nil {
		t.Fatalf("open typed: %v", err)
	}
	if res.Format != formatOGG {
		t.Errorf("Format = %q, want ogg", res.Format)
	}

	res, err = open(context.Background(), srv.URL+"/untyped/track.mp3")
	if err != nil {
		t.Fatalf("open untyped: %v", err)
	}
	if res.Format != formatMP3 {
		t.Errorf("Format = %q, want mp3 from extension", res.Format)
	}

	if _, err := open(context.Background(), srv.URL+"/missing.mp3"); err == nil {
		t.Error("expected error for 404")
	}
}

func TestFormatFromExt(t *testing.T) {
	tests := map[string]string{
		"/a/b.MP3":  formatMP3,
		"x.wav":     formatWAV,
		"x.flac":    formatFLAC,
		"x.ogg":     formatOGG,
		"/a/b.m4a":  "",
		"/a/b/none": "",
	}
	for p, want := range tests {
		got, err := formatFromExt(p)
		if want == "" {
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("formatFromExt(%q) err = %v, want ErrUnsupportedFormat", p, err)
			}
			continue
		}
		if err != nil || got != want {
			t.Errorf("formatFromExt(%q) = %q, %v; want %q", p, got, err, want)
		}
	}
}

func TestLocalPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"file:///music/a%20b.mp3", "/music/a b.mp3", true},
		{"/music/a.mp3", "/music/a.mp3", true},
		{"https://example.com/a.mp3", "", false},
		{"data:audio/mpeg;base64,AAAA", "", false},
		{"ftp://host/a.mp3", "", false},
	}
	for _, tt := range tests {
		got, ok, err := LocalPath(tt.in)
		if err != nil {
			t.Fatalf("LocalPath(%q): %v", tt.in, err)
		}
		if got != tt.want || ok != tt.ok {
			t.Errorf("LocalPath(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
