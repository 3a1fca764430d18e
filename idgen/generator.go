package idgen

import (
	"strconv"

	"github.com/notJoon/UniqueID/clock"
	"github.com/notJoon/UniqueID/clog"
)

// Generator Snowflake ID 生成器
//
// 每个实例独占自己的状态（最近时间戳、序列号、节点标识），
// 不做内部加锁，不能被多个 goroutine 并发调用。
// 需要共享实例时使用 Locked 包装。
type Generator struct {
	clock     clock.Clock
	machineID int64
	serverID  int64
	lastTime  int64
	sequence  int64
	logger    clog.Logger
}

// New 创建 ID 生成器
//
// 纪元固定为 Unix 纪元，lastTime 以生成器自己的首次时钟读取作为种子。
// machine ID 与 server ID 都必须落在 [0, 31]，越界直接拒绝创建，
// 避免高位无声地渗入相邻字段。
//
// 使用示例:
//
//	gen, err := idgen.New(&idgen.Config{MachineID: 1, ServerID: 2})
//	if err != nil { ... }
//	id := gen.Next()
func New(cfg *Config, opts ...Option) (*Generator, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	opt := applyOptions(opts...)

	g := &Generator{
		clock:     opt.Clock,
		machineID: cfg.MachineID,
		serverID:  cfg.ServerID,
		logger:    opt.Logger,
	}
	if g.clock == nil {
		g.clock = clock.Unix()
	}
	if g.logger == nil {
		g.logger = clog.Discard()
	}
	g.lastTime = g.clock.Millis()

	g.logger.Info("id generator created",
		clog.Int64("machine_id", cfg.MachineID),
		clog.Int64("server_id", cfg.ServerID),
		clog.Int64("last_time", g.lastTime),
	)

	return g, nil
}

// Next 守护策略生成 ID
//
// 序列号回绕到 0 时重读时钟；若时钟仍停留在 lastTime 所在毫秒，
// 自旋等待直到时钟严格前进后再采纳新值。序列号未回绕时不读时钟。
// 即使持续负载超过 4096 个/毫秒也能保证唯一且单调递增，
// 代价是过载期间阻塞调用方。
func (g *Generator) Next() int64 {
	g.sequence = (g.sequence + 1) & maxSequence

	if g.sequence == 0 {
		now := g.clock.Millis()
		if now == g.lastTime {
			now = g.waitNextMilli(g.lastTime)
		}
		g.lastTime = now
	}

	return g.pack()
}

// NextByTime 对时策略生成 ID
//
// 每次生成都重读时钟并与 lastTime 对齐，时间戳字段贴近真实时间：
//   - 时钟与 lastTime 相同：序列号回绕时自旋到下一毫秒，否则沿用 lastTime
//   - 时钟前进或回拨：直接采纳为新基线并重置序列号。
//     回拨被无差别接受，这一次调用的返回值可能小于前一次
func (g *Generator) NextByTime() int64 {
	g.sequence = (g.sequence + 1) & maxSequence

	now := g.clock.Millis()
	if now == g.lastTime {
		if g.sequence == 0 {
			g.lastTime = g.waitNextMilli(now)
		}
	} else {
		g.lastTime = now
		g.sequence = 0
	}

	return g.pack()
}

// NextLazy 惰性策略生成 ID
//
// 构造之后完全不读时钟：序列号回绕时直接把 lastTime 加 1，
// 形成每虚拟毫秒 4096 个的合成时钟。持续重负载下时间戳字段
// 会跑在真实时间前面，适合只要求唯一和有序的批量预生成。
func (g *Generator) NextLazy() int64 {
	g.sequence = (g.sequence + 1) & maxSequence

	if g.sequence == 0 {
		g.lastTime++
	}

	return g.pack()
}

// NextString 返回十进制字符串形式的 ID（守护策略）
func (g *Generator) NextString() string {
	return strconv.FormatInt(g.Next(), 10)
}

// pack 将当前状态打包为 64 位 ID
func (g *Generator) pack() int64 {
	return g.lastTime<<timestampShift |
		g.machineID<<machineIDShift |
		g.serverID<<serverIDShift |
		g.sequence
}

// waitNextMilli 紧循环重读时钟，直到返回严格大于 last 的值
//
// 不 sleep 不让出调度，以 CPU 换取最低延迟；真实时钟粒度下
// 单次自旋不超过 1ms。测试中注入 Fake 时钟避免真实等待。
func (g *Generator) waitNextMilli(last int64) int64 {
	g.logger.Debug("sequence exhausted, spinning for next millisecond",
		clog.Int64("last_time", last),
	)

	now := g.clock.Millis()
	for now <= last {
		now = g.clock.Millis()
	}
	return now
}
