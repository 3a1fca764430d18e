// Package metrics 提供统一的指标收集能力。
// 基于 OpenTelemetry 标准构建，提供简洁的 Counter、Gauge、Histogram 指标接口，
// 内置 Prometheus HTTP 服务器，支持指标自动暴露。
//
// 快速开始：
//
//	meter, err := metrics.New(&metrics.Config{
//	    Enabled:     true,
//	    ServiceName: "uniqueid",
//	    Port:        9090,
//	})
//	defer meter.Shutdown(ctx)
//
//	counter, _ := meter.Counter("idgen_bucket_refill_total", "bucket 重填总数")
//	counter.Inc(ctx, metrics.L("strategy", "lazy"))
package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.20.0"
)

// Label 指标标签，键值对形式
type Label struct {
	Key   string
	Value string
}

// L 创建标签的便捷函数
func L(key, value string) Label {
	return Label{Key: key, Value: value}
}

// Counter 计数器接口，用于记录只能增加的累计值
type Counter interface {
	// Inc 将计数器增加 1
	Inc(ctx context.Context, labels ...Label)
	// Add 将计数器增加给定的值
	Add(ctx context.Context, val float64, labels ...Label)
}

// Gauge 仪表盘接口，用于记录可以任意增减的瞬时值
type Gauge interface {
	// Set 设置当前值
	Set(ctx context.Context, val float64, labels ...Label)
}

// Histogram 直方图接口，用于记录值的分布
type Histogram interface {
	// Record 记录一个观测值
	Record(ctx context.Context, val float64, labels ...Label)
}

// Meter 指标工厂接口
type Meter interface {
	Counter(name, description string) (Counter, error)
	Gauge(name, description string) (Gauge, error)
	Histogram(name, description string) (Histogram, error)

	// Shutdown 停止指标导出（含内置 HTTP 服务器）
	Shutdown(ctx context.Context) error
}

// New 创建 Meter 实例
//
// cfg.Enabled 为 false 时返回 noop Meter，所有操作都是空操作。
// cfg.Port 大于 0 时启动 Prometheus HTTP 暴露服务器。
func New(cfg *Config) (Meter, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	cfg.setDefaults()

	if !cfg.Enabled {
		return &noopMeter{}, nil
	}

	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.ServiceName),
			semconv.ServiceVersionKey.String(cfg.Version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	registry := promclient.NewRegistry()
	exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(exporter),
	)

	m := &otelMeter{
		provider: provider,
		meter:    provider.Meter(cfg.ServiceName),
	}

	if cfg.Port > 0 {
		mux := http.NewServeMux()
		mux.Handle(cfg.Path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		m.server = &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Port),
			Handler: mux,
		}
		go func() {
			if err := m.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				// 端口冲突等启动失败不影响指标记录本身
				fmt.Printf("metrics: http server error: %v\n", err)
			}
		}()
	}

	return m, nil
}

// otelMeter 基于 OpenTelemetry SDK 的 Meter 实现
type otelMeter struct {
	provider *sdkmetric.MeterProvider
	meter    metric.Meter
	server   *http.Server
}

func (m *otelMeter) Counter(name, description string) (Counter, error) {
	c, err := m.meter.Float64Counter(name, metric.WithDescription(description))
	if err != nil {
		return nil, fmt.Errorf("failed to create counter %s: %w", name, err)
	}
	return &otelCounter{counter: c}, nil
}

func (m *otelMeter) Gauge(name, description string) (Gauge, error) {
	g, err := m.meter.Float64Gauge(name, metric.WithDescription(description))
	if err != nil {
		return nil, fmt.Errorf("failed to create gauge %s: %w", name, err)
	}
	return &otelGauge{gauge: g}, nil
}

func (m *otelMeter) Histogram(name, description string) (Histogram, error) {
	h, err := m.meter.Float64Histogram(name, metric.WithDescription(description))
	if err != nil {
		return nil, fmt.Errorf("failed to create histogram %s: %w", name, err)
	}
	return &otelHistogram{histogram: h}, nil
}

func (m *otelMeter) Shutdown(ctx context.Context) error {
	if m.server != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		_ = m.server.Shutdown(shutdownCtx)
	}
	return m.provider.Shutdown(ctx)
}

// toAttributes 将标签转换为 OTel 属性
func toAttributes(labels []Label) metric.MeasurementOption {
	attrs := make([]attribute.KeyValue, 0, len(labels))
	for _, l := range labels {
		attrs = append(attrs, attribute.String(l.Key, l.Value))
	}
	return metric.WithAttributes(attrs...)
}

type otelCounter struct {
	counter metric.Float64Counter
}

func (c *otelCounter) Inc(ctx context.Context, labels ...Label) {
	c.counter.Add(ctx, 1, toAttributes(labels))
}

func (c *otelCounter) Add(ctx context.Context, val float64, labels ...Label) {
	c.counter.Add(ctx, val, toAttributes(labels))
}

type otelGauge struct {
	gauge metric.Float64Gauge
}

func (g *otelGauge) Set(ctx context.Context, val float64, labels ...Label) {
	g.gauge.Record(ctx, val, toAttributes(labels))
}

type otelHistogram struct {
	histogram metric.Float64Histogram
}

func (h *otelHistogram) Record(ctx context.Context, val float64, labels ...Label) {
	h.histogram.Record(ctx, val, toAttributes(labels))
}
