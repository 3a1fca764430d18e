package idgen

import (
	"context"

	"github.com/notJoon/UniqueID/clog"
	"github.com/notJoon/UniqueID/metrics"
)

// Bucket 批量预生成的 ID 桶
//
// 内部持有一个独占的 Generator 和一块容量恰为 4096 的可复用缓冲。
// 缓冲取空后整批重填（惰性策略连续生成 4096 个），绝不部分重填，
// 因此取出操作永远不会下溢。
//
// 取出遵循后进先出：消费方在同一批内观察到的 ID 是降序的，
// 批与批之间仍然整体递增。与 Generator 一样不是并发安全的。
type Bucket struct {
	gen *Generator
	ids []int64

	logger        clog.Logger
	refillCounter metrics.Counter
	idCounter     metrics.Counter
}

// NewBucket 创建 ID 桶
//
// 使用示例:
//
//	bucket, err := idgen.NewBucket(&idgen.Config{MachineID: 1, ServerID: 2})
//	if err != nil { ... }
//	id := bucket.Get()
func NewBucket(cfg *Config, opts ...Option) (*Bucket, error) {
	gen, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}

	b := &Bucket{
		gen:    gen,
		ids:    make([]int64, 0, IDsPerMilli),
		logger: gen.logger,
	}

	opt := applyOptions(opts...)
	if opt.Meter != nil {
		b.refillCounter, _ = opt.Meter.Counter(MetricBucketRefill, "bucket 整批重填总数")
		b.idCounter, _ = opt.Meter.Counter(MetricLazyGenerated, "惰性策略生成的 ID 总数")
	}

	return b, nil
}

// Get 取出一个 ID，缓冲为空时先整批重填
//
// 永不阻塞等待时钟，也永不失败。
func (b *Bucket) Get() int64 {
	if len(b.ids) == 0 {
		b.refill()
	}

	id := b.ids[len(b.ids)-1]
	b.ids = b.ids[:len(b.ids)-1]
	return id
}

// Len 返回缓冲中剩余的 ID 数量
func (b *Bucket) Len() int {
	return len(b.ids)
}

// refill 按生成顺序整批压入一毫秒配额的 ID
func (b *Bucket) refill() {
	for i := 0; i < IDsPerMilli; i++ {
		b.ids = append(b.ids, b.gen.NextLazy())
	}

	b.logger.Debug("bucket refilled", clog.Int("count", IDsPerMilli))

	if b.refillCounter != nil {
		b.refillCounter.Inc(context.Background())
	}
	if b.idCounter != nil {
		b.idCounter.Add(context.Background(), float64(IDsPerMilli))
	}
}
