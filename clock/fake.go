package clock

import "sync/atomic"

// Fake 手动推进的时钟，用于确定性测试
//
// 并发安全：Millis / Set / Advance 可以在多个 goroutine 中调用，
// 以便测试在自旋等待期间从另一个 goroutine 推进时钟。
type Fake struct {
	now atomic.Int64
}

// NewFake 创建一个起始于 start 毫秒的 Fake 时钟
func NewFake(start int64) *Fake {
	f := &Fake{}
	f.now.Store(start)
	return f
}

func (f *Fake) Millis() int64 {
	ms := f.now.Load()
	if ms < 0 {
		return 0
	}
	return ms
}

// Set 将时钟设置为指定毫秒值（允许回拨）
func (f *Fake) Set(ms int64) {
	f.now.Store(ms)
}

// Advance 将时钟前进 d 毫秒
func (f *Fake) Advance(d int64) {
	f.now.Add(d)
}
