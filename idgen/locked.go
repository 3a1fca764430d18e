package idgen

import "sync"

// Locked 互斥锁保护的生成器包装
//
// Generator 本身按"一个 goroutine 一个实例"的模型设计；
// 多个 goroutine 确实需要共享同一个节点标识时，用 Locked
// 把全部入口串行化，而不是各自手写锁。
type Locked struct {
	mu  sync.Mutex
	gen *Generator
}

// NewLocked 创建并发安全的生成器
func NewLocked(cfg *Config, opts ...Option) (*Locked, error) {
	gen, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Locked{gen: gen}, nil
}

// Next 守护策略生成 ID（串行化）
func (l *Locked) Next() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen.Next()
}

// NextByTime 对时策略生成 ID（串行化）
func (l *Locked) NextByTime() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen.NextByTime()
}

// NextLazy 惰性策略生成 ID（串行化）
func (l *Locked) NextLazy() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen.NextLazy()
}
