package preset

import (
	_ "embed"
	"fmt"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Defaults returns the built-in presets shipped with the package.
func Defaults() map[string]Preset {
	presets, err := Parse(defaultsYAML)
	if err != nil {
		panic(fmt.Sprintf("preset: built-in presets: %v", err))
	}
	return presets
}
