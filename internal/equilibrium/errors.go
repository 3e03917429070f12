package equilibrium

import (
	"github.com/rickgao/cg-spread/internal/model"
	"github.com/rickgao/cg-spread/internal/rootfind"
)

// Error kinds returned by the solver. Match with errors.Is.
var (
	ErrInvalidParameter = model.ErrInvalidParameter
	ErrNonConvergence   = rootfind.ErrNonConvergence
)
