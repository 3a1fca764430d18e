package idgen

import "github.com/notJoon/UniqueID/xerrors"

// Config ID 生成器配置
//
// (MachineID, ServerID) 组合标识一个生成器实例，由外部分配并保证
// 全局唯一，本包不做注册或租约管理。
type Config struct {
	// MachineID 机器标识 [0, 31]
	MachineID int64 `mapstructure:"machine_id" yaml:"machine_id" json:"machine_id"`

	// ServerID 服务标识 [0, 31]
	ServerID int64 `mapstructure:"server_id" yaml:"server_id" json:"server_id"`
}

// validate 校验节点标识是否落在 5 位字段宽度内
//
// 越界值不做静默截断，直接拒绝：截断会让解包出的字段与调用方
// 传入的值对不上，属于难以排查的配置错误。
func (c *Config) validate() error {
	if c.MachineID < 0 || c.MachineID > MaxMachineID {
		return xerrors.WithCode(ErrInvalidInput, "machine_id_out_of_range")
	}
	if c.ServerID < 0 || c.ServerID > MaxServerID {
		return xerrors.WithCode(ErrInvalidInput, "server_id_out_of_range")
	}
	return nil
}
