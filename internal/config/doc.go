// Package config loads the keybridge configuration.
//
// Configuration is layered, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command Line Arguments  │  ← Highest priority (cmd/keybridge)
//	├─────────────────────────────┤
//	│  3. Environment Variables   │  ← KEYBRIDGE_LOG_LEVEL, KEYBRIDGE_KEYMAP, ...
//	├─────────────────────────────┤
//	│  2. Config File             │  ← keybridge.toml
//	├─────────────────────────────┤
//	│  1. Built-in Defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// A config file looks like:
//
//	[log]
//	level = "debug"
//	format = "json"
//	file = "/var/log/keybridge.log"
//
//	[keymap]
//	path = "keymap.toml"
//	watch = true
//
// Unknown keys in the file are rejected so typos are caught early.
package config
