// config.go implements the "mdfiles config" command for configuration management.
//
// Separated from extension.go to isolate config-specific logic including
// the local vs global config precedence rules.
//
// Design: reads show the merged view, local values over global ones, the
// same view every other command runs with. Writes touch a single file: the
// local one when it exists or --local is given, otherwise the global one.
// Only that file is loaded before a set, so global values are never copied
// into the local file.

package core

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/jpl-au/mdfiles/cmd"
	"github.com/jpl-au/mdfiles/extension"
	"github.com/jpl-au/mdfiles/internal/config"
	"github.com/jpl-au/mdfiles/internal/log"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "config [key] [value]",
		Short: "View or set config values",
		Long: `View or set config values.

  mdfiles config                          # show config
  mdfiles config server.addr              # show server.addr value
  mdfiles config server.addr :9000        # set server.addr

Keys: ` + strings.Join(config.ValidKeys(), ", ") + `

Configuration locations:
  Global: ~/.mdfiles/config.yaml
  Local:  .mdfiles/config.yaml

Reads show local values layered over global ones.
Writes go to the local file if it exists, otherwise the global one.
Use --local to write the local file even if it does not exist yet.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runConfig,
	}
	c.Flags().Bool(extension.FlagLocal, false, "Use local config (.mdfiles/config.yaml)")
	return c
}

func runConfig(c *cobra.Command, args []string) error {
	local, _ := c.Flags().GetBool(extension.FlagLocal)
	switch len(args) {
	case 0:
		return listConfig()
	case 1:
		return getConfig(args[0])
	default:
		scope := config.ScopeGlobal
		if local || config.HasLocal() {
			scope = config.ScopeLocal
		}
		return setConfig(scope, args[0], args[1])
	}
}

func listConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("config load: %w", err))
	}
	values := cfg.All()
	log.Event("core:config", "list").Author(cmd.Author()).Write(nil)
	if cmd.JSON() {
		return cmd.PrintJSON(values)
	}
	for _, k := range slices.Sorted(maps.Keys(values)) {
		fmt.Fprintf(cmd.Out(), "%s: %s\n", k, values[k])
	}
	return nil
}

func getConfig(key string) error {
	cfg, err := config.Load()
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("config load: %w", err))
	}
	v, err := cfg.Get(key)
	log.Event("core:config", "get").Author(cmd.Author()).Detail("key", key).Write(err)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("config get %q: %w", key, err))
	}
	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"key": key, "value": v})
	}
	fmt.Fprintln(cmd.Out(), v)
	return nil
}

// setConfig changes one key in a single file, leaving the other level alone.
func setConfig(scope config.Scope, key, value string) error {
	name := "global"
	if scope == config.ScopeLocal {
		name = "local"
	}
	event := log.Event("core:config", "set").Author(cmd.Author()).Detail("key", key).Detail("scope", name)

	cfg, err := config.LoadScope(scope)
	if err == nil {
		err = cfg.Set(key, value)
	}
	if err == nil {
		err = cfg.Save()
	}
	event.Write(err)
	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("config set %q: %w", key, err))
	}

	if cmd.JSON() {
		return cmd.PrintJSON(map[string]string{"key": key, "value": value, "scope": name})
	}
	fmt.Fprintf(cmd.Out(), "%s = %s (%s)\n", key, value, name)
	return nil
}
