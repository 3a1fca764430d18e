// Package clog 提供基于 slog 的结构化日志组件。
//
// 特性：
//   - 抽象接口，不暴露底层实现（slog）
//   - 零外部依赖（仅依赖 Go 标准库）
//   - 支持 json/console 两种输出格式
//
// 基本使用：
//
//	logger, _ := clog.New(&clog.Config{
//	    Level:  "info",
//	    Format: "console",
//	    Output: "stdout",
//	})
//	logger.Info("generator created", clog.Int64("machine_id", 1))
//
// 创建子 Logger：
//
//	childLogger := logger.With(clog.String("component", "idgen"))
package clog

// Logger 日志接口，提供结构化日志记录功能
//
// 支持五个日志级别：Debug、Info、Warn、Error、Fatal。
// Fatal 会在记录日志后退出进程。
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)

	// With 返回一个携带固定字段的子 Logger
	With(fields ...Field) Logger
}
