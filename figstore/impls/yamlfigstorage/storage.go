package yamlfigstorage

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libplotting/figstore"
	"github.com/sgostarter/libplotting/trace"
)

const fileExt = ".yaml"

// NewYAMLFigStorage keeps one yaml file per figure under root.
func NewYAMLFigStorage(root string) figstore.Storage {
	return &yamlFigStorage{
		root: root,
	}
}

type yamlFigStorage struct {
	lock sync.RWMutex
	root string
}

func (stg *yamlFigStorage) fileNameByKey(key string) (string, error) {
	if err := figstore.CheckKey(key); err != nil {
		return "", err
	}

	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", commerr.ErrInvalidArgument
	}

	return filepath.Join(stg.root, key+fileExt), nil
}

func (stg *yamlFigStorage) Save(_ context.Context, key string, fig *trace.Figure) (err error) {
	fileName, err := stg.fileNameByKey(key)
	if err != nil {
		return
	}

	if fig == nil {
		return commerr.ErrInvalidArgument
	}

	d, err := figstore.YAMLCodec{}.Marshal(fig)
	if err != nil {
		return
	}

	stg.lock.Lock()
	defer stg.lock.Unlock()

	_ = os.MkdirAll(stg.root, 0700)

	err = os.WriteFile(fileName, d, 0600)

	return
}

func (stg *yamlFigStorage) Load(_ context.Context, key string) (*trace.Figure, error) {
	fileName, err := stg.fileNameByKey(key)
	if err != nil {
		return nil, err
	}

	stg.lock.RLock()
	d, err := os.ReadFile(fileName)
	stg.lock.RUnlock()

	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = commerr.ErrNotFound
		}

		return nil, err
	}

	return figstore.YAMLCodec{}.Unmarshal(d)
}

func (stg *yamlFigStorage) Delete(_ context.Context, key string) error {
	fileName, err := stg.fileNameByKey(key)
	if err != nil {
		return err
	}

	stg.lock.Lock()
	defer stg.lock.Unlock()

	err = os.Remove(fileName)
	if errors.Is(err, fs.ErrNotExist) {
		err = commerr.ErrNotFound
	}

	return err
}

func (stg *yamlFigStorage) Keys(_ context.Context) ([]string, error) {
	stg.lock.RLock()
	entries, err := os.ReadDir(stg.root)
	stg.lock.RUnlock()

	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}

		return nil, err
	}

	keys := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExt) {
			continue
		}

		keys = append(keys, strings.TrimSuffix(entry.Name(), fileExt))
	}

	sort.Strings(keys)

	return keys, nil
}
