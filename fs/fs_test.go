package fs_test

import (
	iofs "io/fs"
	"sync"
	"testing/fstest"
)

// countingFS wraps a MapFS and counts Open calls per path. It exposes only
// Open so io/fs helpers cannot bypass the counter.
type countingFS struct {
	fsys fstest.MapFS

	mu    sync.Mutex
	opens map[string]int
}

func newCountingFS(files map[string]string) *countingFS {
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return &countingFS{fsys: fsys, opens: make(map[string]int)}
}

func (f *countingFS) Open(name string) (iofs.File, error) {
	f.mu.Lock()
	f.opens[name]++
	f.mu.Unlock()
	return f.fsys.Open(name)
}

func (f *countingFS) Opens(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opens[name]
}

const fillIndex = `[{"name":"Fill","dirName":"fill.md","description":"Fill templates","module":"(填充 fill)","whenToUse":"","keywords":["populate"]}]`
