// Package all imports all built-in mdfiles extensions.
// Import this package to register all built-in commands.
package all

import (
	// Built-in extensions - each registers itself via init()
	_ "github.com/jpl-au/mdfiles/extension/core"
	_ "github.com/jpl-au/mdfiles/extension/files"
	_ "github.com/jpl-au/mdfiles/extension/search"
)
