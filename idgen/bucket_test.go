package idgen

import (
	"context"
	"testing"

	"github.com/notJoon/UniqueID/clock"
	"github.com/notJoon/UniqueID/metrics"
)

// countingMeter 记录计数器增量的测试桩
type countingMeter struct {
	counts map[string]float64
}

func newCountingMeter() *countingMeter {
	return &countingMeter{counts: make(map[string]float64)}
}

func (m *countingMeter) Counter(name, description string) (metrics.Counter, error) {
	return &countingCounter{meter: m, name: name}, nil
}

func (m *countingMeter) Gauge(name, description string) (metrics.Gauge, error) {
	return metrics.Noop().Gauge(name, description)
}

func (m *countingMeter) Histogram(name, description string) (metrics.Histogram, error) {
	return metrics.Noop().Histogram(name, description)
}

func (m *countingMeter) Shutdown(ctx context.Context) error { return nil }

type countingCounter struct {
	meter *countingMeter
	name  string
}

func (c *countingCounter) Inc(ctx context.Context, labels ...metrics.Label) {
	c.meter.counts[c.name]++
}

func (c *countingCounter) Add(ctx context.Context, val float64, labels ...metrics.Label) {
	c.meter.counts[c.name] += val
}

func TestNewBucket_InvalidConfig(t *testing.T) {
	if _, err := NewBucket(nil); err == nil {
		t.Error("Expected error for nil config")
	}
	if _, err := NewBucket(&Config{MachineID: 32}); err == nil {
		t.Error("Expected error for out-of-range machine id")
	}
}

func TestBucket_GetRefillsWhenEmpty(t *testing.T) {
	bucket, err := NewBucket(&Config{MachineID: 1, ServerID: 2},
		WithClock(clock.NewFake(1000)))
	if err != nil {
		t.Fatalf("Failed to create bucket: %v", err)
	}

	if bucket.Len() != 0 {
		t.Fatalf("Len() = %d，新建的桶应为空", bucket.Len())
	}

	// 首次取出触发整批重填
	bucket.Get()
	if bucket.Len() != IDsPerMilli-1 {
		t.Errorf("Len() = %d，期望 %d", bucket.Len(), IDsPerMilli-1)
	}
}

func TestBucket_LIFOWithinBatch(t *testing.T) {
	bucket, err := NewBucket(&Config{MachineID: 1, ServerID: 2},
		WithClock(clock.NewFake(1000)))
	if err != nil {
		t.Fatalf("Failed to create bucket: %v", err)
	}

	// 批内后进先出：取出的 ID 严格降序
	prev := bucket.Get()
	for i := 1; i < IDsPerMilli; i++ {
		id := bucket.Get()
		if id >= prev {
			t.Fatalf("pop %d: %d >= %d，批内期望降序", i, id, prev)
		}
		prev = id
	}
}

func TestBucket_DrainAndRefill(t *testing.T) {
	meter := newCountingMeter()
	bucket, err := NewBucket(&Config{MachineID: 1, ServerID: 2},
		WithClock(clock.NewFake(1000)), WithMeter(meter))
	if err != nil {
		t.Fatalf("Failed to create bucket: %v", err)
	}

	// 取空 k 个整批：每批 4096 个全部唯一，恰好触发 k 次重填
	const k = 3
	seen := make(map[int64]bool, k*IDsPerMilli)
	for i := 0; i < k*IDsPerMilli; i++ {
		id := bucket.Get()
		if seen[id] {
			t.Fatalf("duplicate id at pop %d: %d", i, id)
		}
		seen[id] = true
	}

	if bucket.Len() != 0 {
		t.Errorf("Len() = %d，期望恰好取空", bucket.Len())
	}
	if got := meter.counts[MetricBucketRefill]; got != k {
		t.Errorf("refill count = %v，期望 %d", got, k)
	}
	if got := meter.counts[MetricLazyGenerated]; got != k*IDsPerMilli {
		t.Errorf("generated count = %v，期望 %d", got, k*IDsPerMilli)
	}
}

func TestBucket_BatchesAscendAcrossRefills(t *testing.T) {
	bucket, err := NewBucket(&Config{MachineID: 1, ServerID: 2},
		WithClock(clock.NewFake(1000)))
	if err != nil {
		t.Fatalf("Failed to create bucket: %v", err)
	}

	// 批内降序，但后一批的最小值仍大于前一批的最大值
	firstOfBatch1 := bucket.Get() // 批 1 最大
	for i := 1; i < IDsPerMilli; i++ {
		bucket.Get()
	}
	firstOfBatch2 := bucket.Get() // 批 2 最大

	if firstOfBatch2 <= firstOfBatch1 {
		t.Errorf("批间必须整体递增: %d <= %d", firstOfBatch2, firstOfBatch1)
	}
}
