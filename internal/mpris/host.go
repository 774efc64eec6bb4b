// Package mpris publishes the player session on the MPRIS D-Bus interface.
package mpris

import "github.com/llehouerou/affirm/internal/playback"

// Host is the part of playback.Host the adapter drives.
type Host interface {
	Current() (*playback.Session, bool)
	TogglePlayPause() error
}

var _ Host = (*playback.Host)(nil)
