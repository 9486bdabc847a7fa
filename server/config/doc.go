// Package config loads the runtime tunables spec.md §6 documents as a table
// of typed options (diving_mode, limit_stairs, preserve_artifacts, ...) from
// a TOML file, following the teacher's own split between a flat Config
// struct handed to the running server and a UserConfig loaded from disk and
// converted once at startup.
package config
