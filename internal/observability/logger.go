package observability

import (
	"encoding/json"
	"log"
	"os"
	"time"
)

// Logger emits one JSON object per line on stdout.
type Logger struct {
	out *log.Logger
}

func NewLogger() *Logger {
	return &Logger{out: log.New(os.Stdout, "", 0)}
}

func (l *Logger) Info(msg string) {
	l.emit("info", msg, nil)
}

func (l *Logger) Error(msg string) {
	l.emit("error", msg, nil)
}

func (l *Logger) InfoKV(msg string, fields map[string]any) {
	l.emit("info", msg, fields)
}

func (l *Logger) ErrorKV(msg string, fields map[string]any) {
	l.emit("error", msg, fields)
}

func (l *Logger) emit(level, msg string, fields map[string]any) {
	entry := map[string]any{
		"ts":    time.Now().UTC().Format(time.RFC3339Nano),
		"level": level,
		"msg":   msg,
	}
	for k, v := range fields {
		entry[k] = v
	}
	data, err := json.Marshal(entry)
	if err != nil {
		l.out.Println(`{"level":"error","msg":"log marshal failed"}`)
		return
	}
	l.out.Println(string(data))
}
