package admin

import "github.com/draconisPW/mangband-core/server/world"

// PlayerSummary is the subset of server/player.Player the console surface
// needs to print, small enough that admin does not need to import the
// player package's full equipment/timer machinery.
type PlayerSummary struct {
	Name  string
	Level int
	WPos  world.Pos
}

// Host is everything the console commands act on. A running server
// implements Host itself (or via a thin adapter); tests use a fake.
type Host interface {
	// Players lists everyone currently connected.
	Players() []PlayerSummary
	// Broadcast sends msg to every connected player, the `msg` command.
	Broadcast(msg string)
	// Tell sends msg to one named player, returning false if no player by
	// that name is connected.
	Tell(name, msg string) bool
	// Kick disconnects the named player with reason, returning false if no
	// player by that name is connected.
	Kick(name, reason string) bool
	// Shutdown begins an orderly server shutdown with the given reason.
	Shutdown(reason string)
	// Wrath grants the named player the operator "wrath" boon (full
	// restore plus a brief buff), returning false if no player by that
	// name is connected.
	Wrath(name string) bool
	// ReloadConfig re-reads the runtime configuration file from disk.
	ReloadConfig() error
	// ReloadNews re-reads the message-of-the-day/news file from disk.
	ReloadNews() error
	// Debug returns an implementation-defined diagnostic dump, args
	// letting the operator narrow what is reported (e.g. "scheduler",
	// "world").
	Debug(args []string) string
}
