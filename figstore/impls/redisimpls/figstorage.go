package redisimpls

import (
	"context"
	"errors"
	"sort"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libplotting/figstore"
	"github.com/sgostarter/libplotting/trace"
)

func NewRedisFigStorage(preKey string, redisCli *redis.Client, codec figstore.Codec, logger l.Wrapper) figstore.Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "figStorage"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	if codec == nil {
		codec = figstore.JSONCodec{}
	}

	return &figStorage{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
		codec:    codec,
	}
}

type figStorage struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
	codec    figstore.Codec
}

func (impl *figStorage) figuresKey() string {
	return impl.preKey + ":figures"
}

func (impl *figStorage) Save(ctx context.Context, key string, fig *trace.Figure) error {
	if err := figstore.CheckKey(key); err != nil {
		return err
	}

	if fig == nil {
		return commerr.ErrInvalidArgument
	}

	d, err := impl.codec.Marshal(fig)
	if err != nil {
		impl.logger.WithFields(l.StringField("key", key), l.ErrorField(err)).Error("marshal figure failed")

		return err
	}

	return impl.redisCli.HSet(ctx, impl.figuresKey(), key, d).Err()
}

func (impl *figStorage) Load(ctx context.Context, key string) (*trace.Figure, error) {
	if err := figstore.CheckKey(key); err != nil {
		return nil, err
	}

	d, err := impl.redisCli.HGet(ctx, impl.figuresKey(), key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = commerr.ErrNotFound
		}

		return nil, err
	}

	fig, err := impl.codec.Unmarshal(d)
	if err != nil {
		impl.logger.WithFields(l.StringField("key", key), l.ErrorField(err)).Error("unmarshal figure failed")

		return nil, err
	}

	return fig, nil
}

func (impl *figStorage) Delete(ctx context.Context, key string) error {
	if err := figstore.CheckKey(key); err != nil {
		return err
	}

	n, err := impl.redisCli.HDel(ctx, impl.figuresKey(), key).Result()
	if err != nil {
		return err
	}

	if n == 0 {
		return commerr.ErrNotFound
	}

	return nil
}

func (impl *figStorage) Keys(ctx context.Context) ([]string, error) {
	keys, err := impl.redisCli.HKeys(ctx, impl.figuresKey()).Result()
	if err != nil {
		return nil, err
	}

	sort.Strings(keys)

	return keys, nil
}
