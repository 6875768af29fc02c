// Package ftlog sets up the process wide logrus logger. While the terminal UI
// owns the screen log records can only go to a file.
package ftlog

import (
	"fmt"
	"io"
	"os"

	"github.com/filetug/ftbrowse/pkg/fsutils"
	"github.com/sirupsen/logrus"
)

var osOpenFile = os.OpenFile

// Configure sends log records to filePath at the given level and returns a
// func that closes the file. With an empty filePath records are discarded.
func Configure(logger *logrus.Logger, filePath, level string) (closeLog func(), err error) {
	lvl := logrus.InfoLevel
	if level != "" {
		if lvl, err = logrus.ParseLevel(level); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	if filePath == "" {
		logger.SetOutput(io.Discard)
		return func() {}, nil
	}

	file, err := osOpenFile(fsutils.ExpandHome(filePath), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger.SetOutput(file)
	return func() {
		logger.SetOutput(io.Discard)
		_ = file.Close()
	}, nil
}
