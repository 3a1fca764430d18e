package idgen

import "github.com/notJoon/UniqueID/xerrors"

// 错误只出现在构造阶段；三种生成策略均不返回失败，
// 过载通过自旋等待（守护/对时）或合成时间推进（惰性）吸收。
var (
	// ErrConfigNil 配置为空
	ErrConfigNil = xerrors.New("idgen: config is nil")

	// ErrInvalidInput 无效的输入
	ErrInvalidInput = xerrors.New("idgen: invalid input")
)
