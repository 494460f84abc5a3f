// Package paths resolves where termlog keeps its own files.
//
// The package wraps github.com/adrg/xdg for cross-platform XDG base directory
// handling. On Linux the configuration file lives at
// ~/.config/termlog/config.yaml; on macOS under ~/Library/Application Support.
package paths
