package idgen

import "github.com/google/uuid"

// 雪花 ID 之外的补充能力：不需要节点标识分配时，
// UUID 是零配置的替代方案。

// NewUUIDV7 生成 UUID v7 (时间排序)
// 适合作为数据库主键
//
// 使用示例:
//
//	uid := idgen.NewUUIDV7()
func NewUUIDV7() string {
	v7, _ := uuid.NewV7()
	return v7.String()
}

// NewUUIDV4 生成 UUID v4 (随机)
// 适用于不需要时间排序的场景
func NewUUIDV4() string {
	return uuid.New().String()
}

// UUID UUID 生成器
// 支持多个版本，默认使用 v7
type UUID struct {
	version string
}

// UUIDOption UUID 初始化选项
type UUIDOption func(*UUID)

// WithUUIDVersion 设置 UUID 版本
// 支持: "v4" | "v7"
func WithUUIDVersion(version string) UUIDOption {
	return func(u *UUID) {
		u.version = version
	}
}

// NewUUID 创建 UUID 生成器
//
// 使用示例:
//
//	gen := idgen.NewUUID(idgen.WithUUIDVersion("v4"))
//	uid := gen.Next()
func NewUUID(opts ...UUIDOption) *UUID {
	u := &UUID{version: "v7"}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Next 生成 UUID 字符串
func (u *UUID) Next() string {
	switch u.version {
	case "v4":
		return NewUUIDV4()
	default:
		return NewUUIDV7()
	}
}
