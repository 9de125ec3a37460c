package trace

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownOption    = errors.New("unknown option")
	ErrUnknownTraceType = errors.New("unknown trace type")
	ErrBadColorStop     = errors.New("bad color stop")
)

func unknownOption(group, key string) error {
	return fmt.Errorf("%w: %s.%s", ErrUnknownOption, group, key)
}

func unknownTraceType(typ string) error {
	return fmt.Errorf("%w: %q", ErrUnknownTraceType, typ)
}
