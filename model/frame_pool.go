package model

import "sync"

// FrameToPool returns a frame to the pool for reuse
func FrameToPool(frame *Frame, pool *FramePool) {
	if pool == nil {
		return
	}

	pool.Put(frame)
}

// FramePool recycles frames between renders
type FramePool struct {
	pool sync.Pool
}

func NewFramePool() *FramePool {
	return &FramePool{
		pool: sync.Pool{
			New: func() any {
				return &Frame{}
			},
		},
	}
}

// Get retrieves a blank frame of the given size
func (p *FramePool) Get(width, height int) *Frame {
	f := p.pool.Get().(*Frame)
	f.Reset(width, height)
	return f
}

// Put returns a frame to the pool
func (p *FramePool) Put(f *Frame) {
	p.pool.Put(f)
}
