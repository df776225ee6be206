// Package config provides configuration management for docscan.
//
// It contains the Config struct populated from CLI flags, default values
// for timeouts and limits, and the immutable reference tables used by the
// scanners: the privacy pattern catalogue and the domain reputation lists.
//
// Design decision: The pattern and domain tables live here rather than as
// package-level globals in the scanner package. They are loaded once,
// optionally extended from a YAML file, and injected into each scanner at
// construction time. Scanners stay stateless and shareable across scans.
package config
