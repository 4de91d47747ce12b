package frame

import "sync"

// Shared is the single frame slot shared between the producer and the paint
// path. The producer swaps whole buffers in under the lock, so a reader sees
// either the previous frame or the new one, never a mix. Latest wins: there
// is no queue, and frames that are never painted are simply dropped.
type Shared struct {
	mu  sync.Mutex
	buf *Buffer
}

// Publish replaces the current frame. The buffer must not be mutated after
// this call.
func (s *Shared) Publish(b *Buffer) {
	s.mu.Lock()
	s.buf = b
	s.mu.Unlock()
}

// View runs fn with the current frame while holding the lock, so the
// buffer's backing store stays valid and unmutated for the whole call (long
// enough to issue a blit over it). fn is not invoked when no frame has been
// published yet.
func (s *Shared) View(fn func(*Buffer)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buf == nil {
		return
	}
	fn(s.buf)
}
