package idgen

// Metrics 指标常量定义
const (
	// MetricBucketRefill bucket 整批重填总数 (Counter)
	MetricBucketRefill = "idgen_bucket_refill_total"

	// MetricLazyGenerated 惰性策略生成的 ID 总数 (Counter)
	MetricLazyGenerated = "idgen_lazy_generated_total"
)
