package wcwidth

import (
	"sync"

	"github.com/npillmayer/wcwidth/table"
)

// widthCache memoizes the width class of characters. It is never evicted.
type widthCache interface {
	get(r rune) (table.Class, bool)
	put(r rune, c table.Class)
	size() int
}

// plainCache is not safe for concurrent use.
type plainCache map[rune]table.Class

func newPlainCache() plainCache {
	return plainCache{0: table.Zero} // NUL is zero-width
}

func (pc plainCache) get(r rune) (table.Class, bool) {
	c, ok := pc[r]
	return c, ok
}

func (pc plainCache) put(r rune, c table.Class) {
	pc[r] = c
}

func (pc plainCache) size() int {
	return len(pc)
}

// lockedCache guards a plainCache with a read/write lock.
// Concurrent misses for the same rune store identical values.
type lockedCache struct {
	mx sync.RWMutex
	pc plainCache
}

func newLockedCache() *lockedCache {
	return &lockedCache{pc: newPlainCache()}
}

func (lc *lockedCache) get(r rune) (table.Class, bool) {
	lc.mx.RLock()
	defer lc.mx.RUnlock()
	return lc.pc.get(r)
}

func (lc *lockedCache) put(r rune, c table.Class) {
	lc.mx.Lock()
	defer lc.mx.Unlock()
	lc.pc.put(r, c)
}

func (lc *lockedCache) size() int {
	lc.mx.RLock()
	defer lc.mx.RUnlock()
	return lc.pc.size()
}
