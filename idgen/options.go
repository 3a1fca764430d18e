package idgen

import (
	"github.com/notJoon/UniqueID/clock"
	"github.com/notJoon/UniqueID/clog"
	"github.com/notJoon/UniqueID/metrics"
)

// Option 组件初始化选项函数
type Option func(*Options)

// Options 组件初始化选项配置
type Options struct {
	Logger clog.Logger
	Meter  metrics.Meter
	Clock  clock.Clock
}

func applyOptions(opts ...Option) *Options {
	opt := &Options{}
	for _, o := range opts {
		o(opt)
	}
	return opt
}

// WithLogger 设置 Logger
func WithLogger(logger clog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger.With(clog.String("component", "idgen"))
		}
	}
}

// WithMeter 设置 Meter（目前仅 Bucket 使用，生成热路径不打点）
func WithMeter(meter metrics.Meter) Option {
	return func(o *Options) {
		o.Meter = meter
	}
}

// WithClock 注入时钟源
//
// 默认使用 Unix 纪元系统时钟。测试中注入 clock.Fake
// 可以确定性地驱动序列号回绕与自旋等待路径。
func WithClock(c clock.Clock) Option {
	return func(o *Options) {
		o.Clock = c
	}
}
