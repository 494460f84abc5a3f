// Package config provides configuration management for the termlog CLI.
//
// # Configuration File
//
// The default configuration file location is ~/.config/termlog/config.yaml.
// The configuration file uses YAML format with the following structure:
//
//	version: 1
//	verbosity: INFO   # DEBUG, INFO, SUCCESS, WARNING, ERROR, DISABLE or NONE
//	color: auto       # auto, always or never
//
// Every key can be overridden from the environment with the TERMLOG_
// prefix (TERMLOG_VERBOSITY=debug) and, for verbosity and color, from the
// command line.
//
// # Loading Configuration
//
// Call [Init] once at startup, then [Load]:
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    return err
//	}
//
// # Validation
//
// All loaded configurations are validated automatically. Single values can
// be checked before they are written with [ValidateValue]. Every validation
// error matches [ErrInvalidConfig].
package config
