// Package data loads the content tables spec.md §6 ("Data files consumed")
// names as immutable, process-wide tables: race/class baselines, room
// profile rarity/cutoff overrides, and pit themes. Tables are authored as
// JSON-with-comments and parsed via github.com/df-mc/jsonc, the same format
// the teacher's own hand-tuned world/biome tables favour for data files a
// person edits directly. Runtime tunables (spec.md §6's configuration
// table) are a separate concern handled by server/config.
package data
