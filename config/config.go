// Package config 提供基于 Viper 的配置加载能力。
//
// 加载优先级（从高到低）：环境变量 > .env 文件 > 配置文件。
// 支持通过 fsnotify 监听配置文件变更。
//
// 基本使用：
//
//	loader := config.New(
//	    config.WithName("uniqueid"),
//	    config.WithPaths(".", "./configs"),
//	    config.WithEnvPrefix("UNIQUEID"),
//	)
//	if err := loader.Load(); err != nil { ... }
//
//	var cfg idgen.Config
//	_ = loader.UnmarshalKey("idgen", &cfg)
package config

import (
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/notJoon/UniqueID/xerrors"
)

// Loader 配置加载器
type Loader struct {
	v    *viper.Viper
	opts *Options
}

// New 创建一个新的配置加载器
func New(opts ...Option) *Loader {
	options := defaultOptions()
	for _, o := range opts {
		o(options)
	}

	return &Loader{
		v:    viper.New(),
		opts: options,
	}
}

// Load 初始化并从所有来源加载配置
//
// 配置文件不存在不视为错误，此时仅有环境变量生效。
func (l *Loader) Load() error {
	l.v.SetConfigName(l.opts.Name)
	l.v.SetConfigType(l.opts.FileType)

	for _, path := range l.opts.Paths {
		l.v.AddConfigPath(path)
	}

	// 环境变量设置（最高优先级）- 先设置，确保能捕获所有环境变量
	if l.opts.EnvPrefix != "" {
		l.v.SetEnvPrefix(l.opts.EnvPrefix)
	}
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()

	// 尝试加载 .env 文件（不存在则忽略）
	if l.opts.DotEnv {
		_ = godotenv.Load()
	}

	if err := l.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return xerrors.Wrapf(err, "failed to read config file %s", l.opts.Name)
		}
	}

	return nil
}

// SetConfigFile 直接指定配置文件路径（跳过搜索路径）
func (l *Loader) SetConfigFile(path string) {
	l.v.SetConfigFile(path)
}

// Unmarshal 将全部配置反序列化到结构体
func (l *Loader) Unmarshal(rawVal any) error {
	if err := l.v.Unmarshal(rawVal); err != nil {
		return xerrors.Wrap(err, "failed to unmarshal config")
	}
	return nil
}

// UnmarshalKey 将指定键下的配置反序列化到结构体
func (l *Loader) UnmarshalKey(key string, rawVal any) error {
	if err := l.v.UnmarshalKey(key, rawVal); err != nil {
		return xerrors.Wrapf(err, "failed to unmarshal key %s", key)
	}
	return nil
}

// Watch 监听配置文件变更
//
// 每次文件变更都会触发回调，回调中可以重新 Unmarshal。
func (l *Loader) Watch(fn func(e fsnotify.Event)) {
	l.v.OnConfigChange(fn)
	l.v.WatchConfig()
}

// GetString 读取字符串配置项
func (l *Loader) GetString(key string) string {
	return l.v.GetString(key)
}

// GetInt64 读取 int64 配置项
func (l *Loader) GetInt64(key string) int64 {
	return l.v.GetInt64(key)
}

// IsSet 判断配置项是否存在
func (l *Loader) IsSet(key string) bool {
	return l.v.IsSet(key)
}
