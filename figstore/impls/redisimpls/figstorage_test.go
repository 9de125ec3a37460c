// nolint
package redisimpls

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libconfig/ut"
	"github.com/sgostarter/libplotting/figstore"
	"github.com/sgostarter/libplotting/plotting"
	"github.com/sgostarter/libplotting/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initRedis(dsn string) (cli *redis.Client, err error) {
	options, err := redis.ParseURL(dsn)
	if err != nil {
		return
	}

	cli = redis.NewClient(options)

	ctx, cf := context.WithTimeout(context.Background(), 3*time.Second)
	defer cf()

	err = cli.Ping(ctx).Err()
	if err != nil {
		return
	}

	return
}

func setupRedis(t *testing.T) *redis.Client {
	cfg := ut.SetupUTConfig4Redis(t)
	redisCli, err := initRedis(cfg.RedisDSN)
	require.Nil(t, err)

	return redisCli
}

func TestRedisFigStorage(t *testing.T) {
	redisCli := setupRedis(t)

	ctx := context.Background()

	for _, codec := range []figstore.Codec{nil, figstore.YAMLCodec{}} {
		redisCli.Del(ctx, "ut:figures")

		s := NewRedisFigStorage("ut", redisCli, codec, nil)

		fig := trace.NewFigure()
		for _, surface := range plotting.Sphere(1, plotting.WithSphereSegments(4), plotting.WithWireframe()) {
			fig.Add(surface)
		}

		require.Nil(t, s.Save(ctx, "sphere", fig))

		fig2, err := s.Load(ctx, "sphere")
		assert.Nil(t, err)
		assert.EqualValues(t, fig, fig2)

		keys, err := s.Keys(ctx)
		assert.Nil(t, err)
		assert.EqualValues(t, []string{"sphere"}, keys)

		_, err = s.Load(ctx, "none")
		assert.ErrorIs(t, err, commerr.ErrNotFound)

		assert.ErrorIs(t, s.Save(ctx, "", fig), commerr.ErrInvalidArgument)

		assert.Nil(t, s.Delete(ctx, "sphere"))
		assert.ErrorIs(t, s.Delete(ctx, "sphere"), commerr.ErrNotFound)
	}
}
