package config

// Options 加载器选项配置
type Options struct {
	// Name 配置文件名（不含扩展名），默认 "config"
	Name string
	// FileType 配置文件类型，默认 "yaml"
	FileType string
	// Paths 配置文件搜索路径，默认当前目录
	Paths []string
	// EnvPrefix 环境变量前缀，空表示不加前缀
	EnvPrefix string
	// DotEnv 是否加载 .env 文件，默认开启
	DotEnv bool
}

func defaultOptions() *Options {
	return &Options{
		Name:     "config",
		FileType: "yaml",
		Paths:    []string{"."},
		DotEnv:   true,
	}
}

// Option 函数式选项
type Option func(*Options)

// WithName 设置配置文件名（不含扩展名）
func WithName(name string) Option {
	return func(o *Options) {
		o.Name = name
	}
}

// WithFileType 设置配置文件类型（yaml|json|toml）
func WithFileType(fileType string) Option {
	return func(o *Options) {
		o.FileType = fileType
	}
}

// WithPaths 设置配置文件搜索路径
func WithPaths(paths ...string) Option {
	return func(o *Options) {
		o.Paths = paths
	}
}

// WithEnvPrefix 设置环境变量前缀
//
// 例如前缀 "UNIQUEID" 时，键 idgen.machine_id 对应环境变量
// UNIQUEID_IDGEN_MACHINE_ID。
func WithEnvPrefix(prefix string) Option {
	return func(o *Options) {
		o.EnvPrefix = prefix
	}
}

// WithDotEnv 控制是否加载 .env 文件
func WithDotEnv(enabled bool) Option {
	return func(o *Options) {
		o.DotEnv = enabled
	}
}
