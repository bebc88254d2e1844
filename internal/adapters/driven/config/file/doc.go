// Package file provides the TOML-backed ConfigStore.
//
// Settings live in config.toml inside the embedmap config directory
// (~/.embedmap by default). Dotted keys map to TOML tables:
//
//	[paths]
//	output = "data.json"
package file
