// Package assets loads the paddle sprites drawn by the terminal renderer.
//
// Loading happens once, before the game loop starts. A failed load is not
// fatal: callers fall back to Placeholder, whose Ready reports false.
package assets

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// File names looked up by Preload.
const (
	PlayerFile = "player.txt"
	BotFile    = "bot.txt"
)

//go:embed sprites/*.txt
var embedded embed.FS

// Default returns the sprites compiled into the binary.
func Default() fs.FS {
	sub, err := fs.Sub(embedded, "sprites")
	if err != nil {
		// fs.Sub only fails on an invalid path.
		panic(err)
	}
	return sub
}

// Sprite is a small block of text. Spaces are transparent.
type Sprite []string

// Width returns the widest row in cells.
func (s Sprite) Width() int {
	w := 0
	for _, row := range s {
		if n := utf8.RuneCountInString(row); n > w {
			w = n
		}
	}
	return w
}

// Height returns the number of rows.
func (s Sprite) Height() int {
	return len(s)
}

// Sprites holds both paddle sprites.
type Sprites struct {
	Player Sprite
	Bot    Sprite
	ready  bool
}

// Ready reports whether the sprites were loaded. A nil *Sprites is not ready.
func (s *Sprites) Ready() bool {
	return s != nil && s.ready
}

// Placeholder returns an empty, not-ready sprite set. Renderers draw plain
// glyphs in its place.
func Placeholder() *Sprites {
	return &Sprites{}
}

// Preload reads both paddle sprites from fsys concurrently.
func Preload(ctx context.Context, fsys fs.FS) (*Sprites, error) {
	out := &Sprites{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sp, err := load(ctx, fsys, PlayerFile)
		out.Player = sp
		return err
	})
	g.Go(func() error {
		sp, err := load(ctx, fsys, BotFile)
		out.Bot = sp
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out.ready = true
	return out, nil
}

func load(ctx context.Context, fsys fs.FS, name string) (Sprite, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", name, err)
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", name, err)
	}
	sp, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", name, err)
	}
	return sp, nil
}

// Parse splits sprite text into rows. Trailing blank lines are dropped and
// an empty sprite is an error.
func Parse(text string) (Sprite, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	rows := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty sprite")
	}
	return Sprite(rows), nil
}
