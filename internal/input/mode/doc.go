// Package mode defines the editing modes of dvim.
//
// Exactly one mode is active at a time:
//   - Normal: navigation, operators, counts
//   - Insert: text input
//   - Visual: character-wise selection from an anchor
//   - Command: ex command line entered with ":"
//   - RegisterInspector: popup listing the registers
//   - Error: transient, dismissed by any key
//   - Stopped: terminal, no further input is processed
//
// Each mode carries a display name for the status line and a fixed list of
// usage hints for the hint panel.
package mode
