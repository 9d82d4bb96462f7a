// Package logger открывает файл журнала событий магазина и строит поверх него zap-логгер.
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TimeLayout задаёт формат отметки времени в строках журнала.
const TimeLayout = "02-01-2006 - 15:04:05"

// TraceLog владеет открытым файлом журнала на всё время работы процесса.
type TraceLog struct {
	*zap.Logger
	file *os.File
}

// New открывает файл журнала. Без appendMode содержимое прошлого запуска удаляется.
func New(path string, appendMode bool) (*TraceLog, error) {
	flags := os.O_CREATE | os.O_WRONLY
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open trace log: %w", err)
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout(TimeLayout)
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encCfg.CallerKey = zapcore.OmitKey

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(f), zapcore.DebugLevel)

	return &TraceLog{
		Logger: zap.New(core),
		file:   f,
	}, nil
}

// Close сбрасывает буферы и закрывает файл. Повторный вызов безопасен.
func (l *TraceLog) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	_ = l.Logger.Sync()
	err := l.file.Close()
	l.file = nil
	return err
}
