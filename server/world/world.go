package world

import (
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Generator produces a fully populated chunk for a world position. The
// world package depends only on this interface, not on any concrete
// generator implementation, so server/generator can depend on world
// without creating an import cycle.
type Generator interface {
	Generate(wpos Pos) (*Chunk, error)
}

// World is the registry of loaded chunks, the top-level analogue of the
// teacher example's World/Column map: one entry per world position,
// created on first entry and freed when unused (spec.md §3 "Entity
// lifecycle"). Unlike the teacher, World has no transaction queue — the
// simulation is single-threaded and cooperative (spec.md §5) — but it
// keeps the teacher's "single map behind one registry" shape and its
// practice of de-duplicating concurrent loads of the same key.
type World struct {
	log *slog.Logger
	gen Generator

	mu     sync.Mutex
	chunks map[Pos]*Chunk
	pinned map[Pos]bool // towns and other never-freed locations

	loadGroup singleflight.Group
}

// New creates an empty World backed by the given Generator.
func New(gen Generator, log *slog.Logger) *World {
	if log == nil {
		log = slog.Default()
	}
	return &World{
		log:    log,
		gen:    gen,
		chunks: make(map[Pos]*Chunk),
		pinned: make(map[Pos]bool),
	}
}

// Pin marks a world position as never auto-freed (spec.md §3: "towns are
// pinned; dynamically generated towns are not").
func (w *World) Pin(wpos Pos) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pinned[wpos] = true
}

// Chunk returns the already-loaded chunk at wpos, or nil if not resident.
func (w *World) Chunk(wpos Pos) *Chunk {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.chunks[wpos]
}

// Enter loads (generating if necessary) the chunk at wpos. Concurrent
// Enter calls for the same wpos — e.g. two players arriving at an unloaded
// location in the same tick's perimeter drain — are coalesced via
// singleflight so exactly one generation pipeline runs (spec.md §3
// "created on first entry by any player").
func (w *World) Enter(wpos Pos) (*Chunk, error) {
	w.mu.Lock()
	if c, ok := w.chunks[wpos]; ok {
		w.mu.Unlock()
		return c, nil
	}
	w.mu.Unlock()

	key := fmt.Sprintf("%d:%d:%d", wpos.X, wpos.Y, wpos.Depth)
	v, err, _ := w.loadGroup.Do(key, func() (any, error) {
		w.mu.Lock()
		if c, ok := w.chunks[wpos]; ok {
			w.mu.Unlock()
			return c, nil
		}
		w.mu.Unlock()

		c, err := w.gen.Generate(wpos)
		if err != nil {
			return nil, fmt.Errorf("world: generate %v: %w", wpos, err)
		}
		w.mu.Lock()
		w.chunks[wpos] = c
		w.mu.Unlock()
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Chunk), nil
}

// Unload frees the chunk at wpos if it is not pinned and no players
// remain. The world package does not track players itself (players live
// in server/player); callers pass the live count observed from the
// scheduler/session layer.
func (w *World) Unload(wpos Pos, remainingPlayers int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if remainingPlayers > 0 || w.pinned[wpos] {
		return
	}
	if c, ok := w.chunks[wpos]; ok {
		c.Free()
		delete(w.chunks, wpos)
		w.log.Debug("unloaded chunk", "wpos", wpos)
	}
}

// Loaded returns the world positions currently resident.
func (w *World) Loaded() []Pos {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Pos, 0, len(w.chunks))
	for p := range w.chunks {
		out = append(out, p)
	}
	return out
}
