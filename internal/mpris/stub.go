//go:build !linux

package mpris

import "github.com/llehouerou/frequency/internal/playback"

// Adapter does nothing outside Linux.
type Adapter struct{}

func New(playback.Service) (*Adapter, error) { return &Adapter{}, nil }

func (*Adapter) Close() error { return nil }
