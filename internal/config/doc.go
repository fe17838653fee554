// Package config provides the configuration of dvim.
//
// Configuration is organized in layers with higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Arguments  │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← DVIM_LOG_LEVEL, DVIM_MAX_COUNT, ...
//	├─────────────────────────────┤
//	│  2. User Settings           │  ← ~/.config/dvim/config.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// Command line arguments are applied by the caller through Set.
//
// # Configuration Files
//
// TOML is the primary format; YAML is accepted for .yaml and .yml files:
//
//	# ~/.config/dvim/config.toml
//	[editor]
//	max_count = 10000
//	tab_width = 4
//
//	[theme]
//	gutter = "38;5;243"
//	highlight = "7"
//
//	[layout]
//	line_numbers = "relative"
//
//	[log]
//	level = "debug"
//	file = "/tmp/dvim.log"
//
// # Sub-packages
//
//   - loader: file decoding and environment variables
//   - watcher: file watching for live reload
package config
