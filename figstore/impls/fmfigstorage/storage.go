package fmfigstorage

import (
	"context"
	"path/filepath"
	"sort"
	"sync"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
	"github.com/sgostarter/libplotting/figstore"
	"github.com/sgostarter/libplotting/trace"
)

const defaultFileName = "figures.json"

func NewFMFigStorage(root string, storage stg.FileStorage) figstore.Storage {
	return NewFMFigStorageEx(root, storage, defaultFileName)
}

func NewFMFigStorageEx(root string, storage stg.FileStorage, fileName string) figstore.Storage {
	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	if fileName == "" {
		fileName = defaultFileName
	}

	return &fmFigStorageImpl{
		figures: mwf.NewMemWithFile[map[string]*trace.Figure, mwf.Serial, mwf.Lock](
			make(map[string]*trace.Figure), &mwf.JSONSerial{}, &sync.RWMutex{},
			filepath.Join(root, fileName), storage),
	}
}

type fmFigStorageImpl struct {
	figures *mwf.MemWithFile[map[string]*trace.Figure, mwf.Serial, mwf.Lock]
}

func (impl *fmFigStorageImpl) Save(_ context.Context, key string, fig *trace.Figure) error {
	if err := figstore.CheckKey(key); err != nil {
		return err
	}

	fig, err := figstore.Clone(fig)
	if err != nil {
		return err
	}

	return impl.figures.Change(func(oldM map[string]*trace.Figure) (newM map[string]*trace.Figure, err error) {
		newM = oldM
		if len(newM) == 0 {
			newM = make(map[string]*trace.Figure)
		}

		newM[key] = fig

		return
	})
}

func (impl *fmFigStorageImpl) Load(_ context.Context, key string) (fig *trace.Figure, err error) {
	if err = figstore.CheckKey(key); err != nil {
		return
	}

	impl.figures.Read(func(m map[string]*trace.Figure) {
		stored, ok := m[key]
		if !ok {
			err = commerr.ErrNotFound

			return
		}

		fig, err = figstore.Clone(stored)
	})

	return
}

func (impl *fmFigStorageImpl) Delete(_ context.Context, key string) error {
	if err := figstore.CheckKey(key); err != nil {
		return err
	}

	return impl.figures.Change(func(oldM map[string]*trace.Figure) (newM map[string]*trace.Figure, err error) {
		newM = oldM
		if len(newM) == 0 {
			newM = make(map[string]*trace.Figure)
		}

		if _, ok := newM[key]; !ok {
			err = commerr.ErrNotFound

			return
		}

		delete(newM, key)

		return
	})
}

func (impl *fmFigStorageImpl) Keys(_ context.Context) (keys []string, err error) {
	impl.figures.Read(func(m map[string]*trace.Figure) {
		keys = make([]string, 0, len(m))

		for key := range m {
			keys = append(keys, key)
		}
	})

	sort.Strings(keys)

	return
}
