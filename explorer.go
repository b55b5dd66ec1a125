package explorer

import (
	"github.com/vizkit/explorer/host"
	"github.com/vizkit/explorer/modules/lineartransform"
)

// Builtins returns a registry holding every module that ships with the
// explorer, in menu order.
func Builtins() *host.Registry {
	reg := host.NewRegistry()
	reg.MustRegister(lineartransform.ID, func() host.Module { return lineartransform.New() })
	return reg
}
