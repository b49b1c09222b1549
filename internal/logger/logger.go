// Package logger 提供全局共享的 zap 日志实例
//
// 默认情况下日志被丢弃（与 --verbose 关闭时的行为一致），
// 调用 Configure 后才会输出到标准错误。
// 日志消息沿用 "[组件名] 内容" 的前缀约定。
package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	global       = zap.NewNop().Sugar()
	defaultLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
)

// New 创建控制台格式的 SugaredLogger
// level 为 nil 时使用全局可调级别
func New(level zapcore.LevelEnabler, options ...zap.Option) *zap.SugaredLogger {
	if level == nil {
		level = defaultLevel
	}

	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "message",
		LevelKey:         "level",
		TimeKey:          "time",
		CallerKey:        "caller",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.CapitalColorLevelEncoder,
		EncodeTime:       zapcore.ISO8601TimeEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		ConsoleSeparator: " ",
	})

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), level)

	return zap.New(core, options...).Sugar()
}

// ParseLogLevel 将字符串转换为 zap 日志级别
// 无法识别时返回 InfoLevel 和 false
func ParseLogLevel(s string) (zapcore.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel, true
	case "info", "":
		return zapcore.InfoLevel, true
	case "warn", "warning":
		return zapcore.WarnLevel, true
	case "error":
		return zapcore.ErrorLevel, true
	default:
		return zapcore.InfoLevel, false
	}
}

// Configure 根据命令行参数配置全局日志
// verbose 为 false 时丢弃所有日志
func Configure(verbose bool, levelName string) error {
	if !verbose {
		SetLogger(zap.NewNop().Sugar())
		return nil
	}

	level, ok := ParseLogLevel(levelName)
	if !ok {
		return fmt.Errorf("unknown log level %q", levelName)
	}

	defaultLevel.SetLevel(level)
	SetLogger(New(defaultLevel))

	return nil
}

// Level 返回全局日志级别
func Level() zapcore.Level {
	return defaultLevel.Level()
}

// SetLevel 修改全局日志级别
func SetLevel(level zapcore.Level) {
	defaultLevel.SetLevel(level)
}

// Logger 返回全局日志实例
func Logger() *zap.SugaredLogger {
	return global
}

// SetLogger 替换全局日志实例（非线程安全，仅在启动阶段或测试中调用）
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	global = l
}

// Sync 刷新缓冲的日志
func Sync() {
	//nolint:errcheck // stderr 的 Sync 在部分平台上总是返回错误
	_ = global.Sync()
}

// Named 返回带组件名的子日志实例
func Named(name string) *zap.SugaredLogger {
	return global.Named(name)
}

// Discard 丢弃所有日志输出
func Discard() {
	SetLogger(nil)
}
