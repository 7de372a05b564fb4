// Package config resolves flagwave's runtime settings.
//
// The flags themselves live in the declarative flags file (see pkg/flags).
// This package covers how the program runs: where that file is, how often
// frames are drawn, and where debug logs go.
//
// # Configuration Precedence
//
// Values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (-config, -theme)
//  2. Environment variables (FLAGWAVE_*, NO_COLOR)
//  3. Hardcoded defaults
//
// # Environment Variables
//
//   - FLAGWAVE_CONFIG: path of the flags file (default flags.yaml)
//   - FLAGWAVE_FRAME_INTERVAL: frame tick, a Go duration (default 16ms)
//   - FLAGWAVE_THEME: chrome theme: default, orca or mono
//   - FLAGWAVE_DEBUG: "true" or "1" writes a debug log while the viewer runs
//   - FLAGWAVE_LOG_FILE: debug log path (default flagwave.log)
//   - NO_COLOR: any non-empty value forces the mono theme for listings
package config
