package figstore

import (
	"context"

	"github.com/sgostarter/libplotting/trace"
)

// Storage keeps built figures by key. Load of a missing key fails with
// commerr.ErrNotFound.
type Storage interface {
	Save(ctx context.Context, key string, fig *trace.Figure) error
	Load(ctx context.Context, key string) (*trace.Figure, error)
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
}

type Codec interface {
	Marshal(fig *trace.Figure) ([]byte, error)
	Unmarshal(d []byte) (*trace.Figure, error)
}
