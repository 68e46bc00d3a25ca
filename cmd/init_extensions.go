/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Separated from root.go to isolate the initialisation logic that resolves
// the root directory, loads config and wires up extensions.
//
// Design: Extensions register during init() but aren't initialised until
// first command execution. This two-phase pattern allows extensions to
// declare commands before the root is known. The file service is created
// once and shared across all extensions via the Context.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/mdfiles/extension"
	"github.com/jpl-au/mdfiles/internal/config"
	"github.com/jpl-au/mdfiles/internal/files"
	"github.com/jpl-au/mdfiles/internal/log"
	"github.com/jpl-au/mdfiles/internal/markdown"
)

// noRootCommands lists commands that bypass automatic root initialisation.
// Built from extension-declared rootless commands.
var noRootCommands map[string]bool

// authorRequiredCommands lists commands that change the tree and so must
// be attributable in the audit log.
var authorRequiredCommands = map[string]bool{
	"write":  true,
	"upload": true,
	"mkdir":  true,
	"rm":     true,
	"mv":     true,
}

// buildNoRootCommands creates the set of commands that skip root
// initialisation. Extensions declare them through extension.Rootless.
func buildNoRootCommands() map[string]bool {
	cmds := map[string]bool{}
	for _, ext := range extension.All() {
		if r, ok := ext.(extension.Rootless); ok {
			for _, name := range r.NoRootCommands() {
				cmds[name] = true
			}
		}
	}
	return cmds
}

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// initExtensions creates the file service and injects it into extensions.
//
// The root is resolved from --root, the environment and config (see
// config.ResolveRoot) and created if missing. Limits and rendering options
// come from config.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}

		svc, err := files.New(config.ResolveRoot(Root(), cfg), files.Options{
			MaxPath:    cfg.MaxPath(),
			MaxContent: cfg.MaxContent(),
			MaxUpload:  cfg.MaxUpload(),
			Render: markdown.RenderOptions{
				UnsafeHTML: cfg.UnsafeHTML(),
				HardWraps:  cfg.HardWraps(),
			},
		})
		if err != nil {
			initErr = fmt.Errorf("opening root: %w", err)
			return
		}

		// Set project identifier for audit logging
		log.SetProject(svc.Root())

		extContext = extension.NewContext(svc, cfg)
		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}
		noRootCommands = buildNoRootCommands()
	})
}
