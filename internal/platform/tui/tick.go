// Package tui runs the table-tennis game in a terminal with Bubble Tea.
// It maps keys and mouse to game actions, drives the frame clock, and hosts
// the level picker and session stats screens, locally or over SSH.
package tui

import (
	"context"
	"io/fs"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pingpong/internal/assets"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// AssetsMsg carries the result of the sprite preload.
type AssetsMsg struct {
	Sprites *assets.Sprites
	Err     error
}

// preloadTimeout bounds the sprite load.
const preloadTimeout = 5 * time.Second

// preloadCmd loads paddle sprites off the update loop.
func preloadCmd(fsys fs.FS) tea.Cmd {
	return func() tea.Msg {
		if fsys == nil {
			fsys = assets.Default()
		}
		ctx, cancel := context.WithTimeout(context.Background(), preloadTimeout)
		defer cancel()

		sp, err := assets.Preload(ctx, fsys)
		return AssetsMsg{Sprites: sp, Err: err}
	}
}
