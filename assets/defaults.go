// Package assets embeds the default configuration shipped with the binary.
package assets

import _ "embed"

//go:embed config.yaml
var DefaultConfigYAML []byte
