package plotting

import (
	"fmt"

	"github.com/sgostarter/i/commerr"
)

var ErrDegenerateDirection = fmt.Errorf("%w: degenerate arrow direction", commerr.ErrInvalidArgument)
