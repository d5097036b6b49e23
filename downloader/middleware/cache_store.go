package middleware

import (
	"encoding/gob"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/nvila/wikidex/downloader"
	"github.com/nvila/wikidex/telemetry"

	"github.com/zeebo/xxh3"
)

// CacheStore is an abstract interface various cache storing mechanisms can implement to be able to be
// used in a Cache.
type CacheStore interface {
	// Get should return a nil response if a stored response with the given key does not yet exist.
	Get(key string, req *downloader.Request) (res *downloader.Response, lastUpdated time.Time)
	Set(key string, res *downloader.Response)
	Evict(key string)
}

// MemoryCacheStore implements CacheStore with an in-memory map.
type MemoryCacheStore struct {
	store map[string]memoryCacheEntry
}

// NewMemoryCacheStore creates a MemoryCacheStore.
func NewMemoryCacheStore() *MemoryCacheStore {
	return &MemoryCacheStore{
		store: map[string]memoryCacheEntry{},
	}
}

type memoryCacheEntry struct {
	res         *downloader.Response
	lastUpdated time.Time
}

func (s *MemoryCacheStore) Get(key string, req *downloader.Request) (res *downloader.Response, lastUpdated time.Time) {
	entry, ok := s.store[key]
	if !ok {
		return nil, time.Time{}
	}
	return entry.res, entry.lastUpdated
}

func (s *MemoryCacheStore) Set(key string, res *downloader.Response) {
	s.store[key] = memoryCacheEntry{res: res, lastUpdated: time.Now()}
}

func (s *MemoryCacheStore) Evict(key string) {
	delete(s.store, key)
}

// rawResponse is the on-disk form of a cached response.
type rawResponse struct {
	Status  int
	Url     string
	Headers http.Header
	Body    []byte
}

// FSCacheStore implements CacheStore with the local filesystem, one
// gob-encoded file per cached response, named by the xxh3 hash of the key.
type FSCacheStore struct {
	dir string
}

func NewFSCacheStore(dir string) FSCacheStore {
	return FSCacheStore{dir: dir}
}

func (s FSCacheStore) path(key string) string {
	filename := fmt.Sprint(xxh3.Hash([]byte(key)))
	return filepath.Join(s.dir, filename)
}

func (s FSCacheStore) Get(key string, req *downloader.Request) (res *downloader.Response, lastUpdated time.Time) {
	path := s.path(key)

	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) {
			telemetry.Error("fs_cache_store", "open file", "path", path, "err", err)
		}
		return nil, time.Time{}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		telemetry.Error("fs_cache_store", "stat file", "path", path, "err", err)
		return nil, time.Time{}
	}

	var raw rawResponse
	err = gob.NewDecoder(f).Decode(&raw)
	if err != nil {
		telemetry.Error("fs_cache_store", "decode response", "path", path, "err", err)
		return nil, time.Time{}
	}

	endUrl, err := url.Parse(raw.Url)
	if err != nil {
		telemetry.Error("fs_cache_store", "parse stored url", "path", path, "err", err)
		return nil, time.Time{}
	}

	return downloader.NewResponse(req, raw.Status, endUrl, raw.Headers, raw.Body), info.ModTime()
}

func (s FSCacheStore) Set(key string, res *downloader.Response) {
	err := os.MkdirAll(s.dir, 0777)
	if err != nil {
		telemetry.Error("fs_cache_store", "make cache dir", "dir", s.dir, "err", err)
		return
	}

	path := s.path(key)
	f, err := os.Create(path)
	if err != nil {
		telemetry.Error("fs_cache_store", "create file", "path", path, "err", err)
		return
	}
	defer f.Close()

	raw := rawResponse{
		Status:  res.Status(),
		Url:     res.Url().String(),
		Headers: res.Headers(),
		Body:    res.RawBody(),
	}
	err = gob.NewEncoder(f).Encode(raw)
	if err != nil {
		telemetry.Error("fs_cache_store", "encode response", "path", path, "err", err)
	}
}

func (s FSCacheStore) Evict(key string) {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		telemetry.Error("fs_cache_store", "remove file", "key", key, "err", err)
	}
}
