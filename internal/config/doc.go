// Package config loads regstore settings.
//
// Settings come from three layers, later layers winning:
//
//  1. Built-in defaults
//  2. A TOML file (optional; a missing file is not an error)
//  3. REGSTORE_* environment variables
//
// Keys are dot-separated paths into the TOML tables:
//
//	use_sys_clipboard = true
//
//	[logging]
//	level = "debug"
//
//	[session]
//	path = "/home/me/.local/state/regstore/session.yaml"
//	save_delay = "250ms"
//
//	[clipboard]
//	backend = "system"   # or "memory"
//	history_size = 15
//
// Watch reloads the file when it changes on disk.
package config
