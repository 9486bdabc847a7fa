// Package admin implements the operator console surface spec.md §4.10 and
// §6 name "out of scope, listed for completeness": help, listen, who,
// shutdown, msg, kick, wrath, reload {config|news}, whois, rngtest, debug.
// It follows the teacher's own command-framework shape (one type per
// command with a Run method, a shared Output sink, a name-keyed registry)
// and its interactive console (github.com/c-bata/go-prompt), but is
// purpose-built for this fixed eleven-command surface rather than the
// teacher's fully generic player-facing parameter system, which has no
// equivalent surface to serve here.
package admin
