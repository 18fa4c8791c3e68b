package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/IR2816/Party-Gallery-Logic/constants"
)

const LogSuffix = "\n\n"

// MainLogger writes to stdout until InitLogFile is called
var MainLogger = NewLogger(os.Stdout)

// InitLogFile redirects MainLogger to a dated log file in the given
// directory. The file stays open throughout the program's runtime,
// hence there is no need to close it here.
func InitLogFile(logDir string) error {
	os.MkdirAll(logDir, constants.DEFAULT_PERMS)
	logFilePath := filepath.Join(
		logDir,
		fmt.Sprintf(
			"party_gallery-logic_v%s_%s.log",
			constants.VERSION,
			time.Now().Format("2006-01-02"),
		),
	)

	f, err := os.OpenFile(
		logFilePath,
		os.O_WRONLY|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return fmt.Errorf(
			"error opening log file: %w\nlog file path: %s",
			err,
			logFilePath,
		)
	}
	MainLogger.SetOutput(f)
	return nil
}

// Thread-safe logging function that logs to the MainLogger output
func LogError(err error, exit bool, level int) {
	if err == nil {
		return
	}

	MainLogger.LogBasedOnLvl(level, err.Error()+LogSuffix)
	if exit {
		os.Exit(1)
	}
}
