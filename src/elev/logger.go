package elev

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
)

// InitLogger sets up the default slog logger with compact time and file:line source.
// If logPath is not empty, output is written to both stdout and the file.
// The returned function closes the log file.
func InitLogger(level slog.Level, logPath string) (func() error, error) {
	var out io.Writer = os.Stdout
	closeFn := func() error { return nil }
	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return closeFn, fmt.Errorf("open log file: %w", err)
		}
		out = io.MultiWriter(os.Stdout, logFile)
		closeFn = logFile.Close
	}
	slog.SetDefault(NewLogger(out, level))
	return closeFn, nil
}

// NewLogger builds the text logger used throughout the controller.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		AddSource:   true,
		ReplaceAttr: compactAttr,
	}))
}

const logTimeLayout = "15:04:05"

// compactAttr prints wall-clock time only and the source as file:line.
func compactAttr(_ []string, a slog.Attr) slog.Attr {
	switch {
	case a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime:
		return slog.String(a.Key, a.Value.Time().Format(logTimeLayout))
	case a.Key == slog.SourceKey:
		if src, ok := a.Value.Any().(*slog.Source); ok {
			return slog.String(a.Key, filepath.Base(src.File)+":"+strconv.Itoa(src.Line))
		}
	}
	return a
}
