// context.go defines what an extension can reach once the root is open.
//
// Extensions register in init(), long before flags are parsed and the root
// resolved, so they cannot be handed a file service at construction. Init
// receives a Context instead, and MCP handlers receive the same Context per
// call. Its surface is deliberately small: the confined file service and
// the loaded configuration. Nothing in it exposes the root's absolute
// location for direct filesystem access.

package extension

import (
	"github.com/jpl-au/mdfiles/internal/config"
	"github.com/jpl-au/mdfiles/internal/service"
)

// Context is the extension's view of the running tool.
type Context interface {
	// Service returns the file service confined to the root.
	Service() service.Service

	// Config returns the merged local and global configuration. It may be
	// nil in tests.
	Config() *config.Config
}

type extContext struct {
	svc service.Service
	cfg *config.Config
}

// NewContext returns a Context over svc and cfg.
func NewContext(svc service.Service, cfg *config.Config) Context {
	return &extContext{svc: svc, cfg: cfg}
}

func (c *extContext) Service() service.Service { return c.svc }

func (c *extContext) Config() *config.Config { return c.cfg }
