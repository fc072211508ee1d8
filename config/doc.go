// Package config loads universe configuration from TOML.
//
//	universe = "default"
//
//	[log]
//	level = "info"
//	format = "json"
//
//	[[auto_builder]]
//	archetype = "player"
//	steps = ["Id", "inventory"]
//
// The auto_builder table lists, per archetype key, the parameters an external
// auto-builder fills in. Its presence is what the model log reports as
// autoBuilderUsed.
package config
