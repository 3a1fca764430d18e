package metrics

import "context"

// Noop 返回一个什么都不做的 Meter
//
// 组件在调用方未注入 Meter 时可以使用它作为回退。
func Noop() Meter {
	return &noopMeter{}
}

type noopMeter struct{}

func (m *noopMeter) Counter(name, description string) (Counter, error) {
	return &noopCounter{}, nil
}

func (m *noopMeter) Gauge(name, description string) (Gauge, error) {
	return &noopGauge{}, nil
}

func (m *noopMeter) Histogram(name, description string) (Histogram, error) {
	return &noopHistogram{}, nil
}

func (m *noopMeter) Shutdown(ctx context.Context) error { return nil }

type noopCounter struct{}

func (c *noopCounter) Inc(ctx context.Context, labels ...Label)              {}
func (c *noopCounter) Add(ctx context.Context, val float64, labels ...Label) {}

type noopGauge struct{}

func (g *noopGauge) Set(ctx context.Context, val float64, labels ...Label) {}

type noopHistogram struct{}

func (h *noopHistogram) Record(ctx context.Context, val float64, labels ...Label) {}
