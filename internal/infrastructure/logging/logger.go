// Package logging は構造化ログ出力を提供します
package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// ログレベル
const (
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// LogEntry は1行分のログを表す構造体です
type LogEntry struct {
	// Timestamp はRFC3339形式の記録時刻です
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	// Path は対象ファイルのパスです。ファイルに関係しないログでは空になります
	Path  string `json:"path,omitempty"`
	Error string `json:"error,omitempty"`
}

// Logger は構造化ログを出力するためのインターフェースです
type Logger interface {
	Log(level, message string, err error)
	LogFile(level, path, message string, err error)
}

// JSONLogger は1行1エントリのJSONでログを出力します
type JSONLogger struct {
	writer io.Writer
	now    func() time.Time
}

// NewJSONLogger は新しいJSONLoggerを作成します。writer が nil の場合は標準エラー出力を使います
func NewJSONLogger(writer io.Writer) *JSONLogger {
	if writer == nil {
		writer = os.Stderr
	}
	return &JSONLogger{writer: writer, now: time.Now}
}

// Log はファイルに紐付かないメッセージを出力します
func (l *JSONLogger) Log(level, message string, err error) {
	l.LogFile(level, "", message, err)
}

// LogFile は対象ファイルのパス付きでメッセージを出力します
func (l *JSONLogger) LogFile(level, path, message string, err error) {
	entry := LogEntry{
		Timestamp: l.now().Format(time.RFC3339),
		Level:     level,
		Message:   message,
		Path:      path,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	jsonData, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ログのJSONエンコードに失敗: %v\n", err)
		return
	}

	fmt.Fprintln(l.writer, string(jsonData))
}
