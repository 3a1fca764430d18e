// Package clock 提供以固定纪元为基准的毫秒时钟源。
//
// 生成器通过 Clock 接口读取时间，而不是直接调用 time.Now()，
// 这样测试可以注入 Fake 时钟，避免真实的毫秒级自旋等待。
package clock

import "time"

// Clock 毫秒时钟源接口
//
// Millis 返回自纪元以来经过的毫秒数。约定为永不失败：
// 当系统时钟早于纪元（差值为负）时返回 0，而不是向调用方传播错误。
// 时钟追赶的阻塞语义由生成器负责，不属于时钟源。
type Clock interface {
	Millis() int64
}

// systemClock 基于系统墙钟的实现
type systemClock struct {
	epoch time.Time
}

// System 创建以 epoch 为基准的系统时钟
func System(epoch time.Time) Clock {
	return &systemClock{epoch: epoch}
}

// Unix 创建以 Unix 纪元（1970-01-01T00:00:00Z）为基准的系统时钟
//
// 这是生成器的默认时钟。42 位时间戳字段在 Unix 纪元下约可用到 2109 年。
func Unix() Clock {
	return &systemClock{epoch: time.UnixMilli(0)}
}

func (c *systemClock) Millis() int64 {
	elapsed := time.Since(c.epoch).Milliseconds()
	if elapsed < 0 {
		return 0
	}
	return elapsed
}
