// Package idgen 提供 Snowflake 风格的分布式 64 位 ID 生成能力。
//
// 每个 ID 由 42 位毫秒时间戳、5 位 machine ID、5 位 server ID 和
// 12 位序列号组成，时间基准为 Unix 纪元：
//
//	| 42 bit timestamp | 5 bit machine | 5 bit server | 12 bit sequence |
//	  bit 63 ....... 22   bit 21 .. 17    bit 16 .. 12    bit 11 ..... 0
//
// 单实例单毫秒最多生成 4096 个 ID。只要所有存活实例的
// (machine_id, server_id) 组合全局唯一，生成的 ID 即全局唯一，
// 无需任何协调服务。
//
// 提供三种生成策略，区别在于序列号耗尽时如何与时钟对齐：
//
//	Next       守护策略：序列号回绕时自旋等待下一毫秒，实时性与单调性最强
//	NextByTime 对时策略：每次生成都重读时钟，时间戳字段贴近真实时间
//	NextLazy   惰性策略：完全不读时钟，以每虚拟毫秒 4096 个的速度推进合成时间戳
//
// 基本使用：
//
//	gen, _ := idgen.New(&idgen.Config{MachineID: 1, ServerID: 2})
//	id := gen.Next()
//
// 批量场景使用 Bucket，单次整批预生成 4096 个：
//
//	bucket, _ := idgen.NewBucket(&idgen.Config{MachineID: 1, ServerID: 2})
//	id := bucket.Get()
//
// Generator 与 Bucket 都不是并发安全的，并发共享一个实例时使用
// Locked 包装，或者为每个 goroutine 分配独立的节点标识。
package idgen

// 位布局常量。时间戳不做溢出检查，42 位字段自 Unix 纪元起约可用到 2109 年。
const (
	sequenceBits  = 12
	serverIDBits  = 5
	machineIDBits = 5
	timestampBits = 42

	serverIDShift  = sequenceBits
	machineIDShift = sequenceBits + serverIDBits
	timestampShift = sequenceBits + serverIDBits + machineIDBits

	maxSequence  = (1 << sequenceBits) - 1
	maxTimestamp = (1 << timestampBits) - 1

	// MaxMachineID machine ID 的最大合法值
	MaxMachineID = (1 << machineIDBits) - 1
	// MaxServerID server ID 的最大合法值
	MaxServerID = (1 << serverIDBits) - 1

	// IDsPerMilli 单毫秒内的 ID 配额，同时也是 Bucket 的整批容量
	IDsPerMilli = 1 << sequenceBits
)

// Parts 一个 ID 解包后的各字段
type Parts struct {
	Timestamp int64 // 自 Unix 纪元以来的毫秒数
	MachineID int64
	ServerID  int64
	Sequence  int64
}

// Timestamp 提取 ID 中的毫秒时间戳字段
func Timestamp(id int64) int64 {
	return (id >> timestampShift) & maxTimestamp
}

// MachineID 提取 ID 中的 machine ID 字段
func MachineID(id int64) int64 {
	return (id >> machineIDShift) & MaxMachineID
}

// ServerID 提取 ID 中的 server ID 字段
func ServerID(id int64) int64 {
	return (id >> serverIDShift) & MaxServerID
}

// Sequence 提取 ID 中的序列号字段
func Sequence(id int64) int64 {
	return id & maxSequence
}

// Decompose 将 ID 解包为各字段
func Decompose(id int64) Parts {
	return Parts{
		Timestamp: Timestamp(id),
		MachineID: MachineID(id),
		ServerID:  ServerID(id),
		Sequence:  Sequence(id),
	}
}
