package system

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"

	"hello/pkg/config"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

type Logger struct {
	debugLogger *log.Logger
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
	logFile     *os.File
	logLevel    LogLevel
	lastLogDate string
}

var GlobalLogger *Logger

// InitLogger creates and initializes the global logger
func InitLogger() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to locate home directory: %w", err)
	}

	logDir := filepath.Join(homeDir, "."+config.AppName, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logger := &Logger{
		logLevel: INFO,
	}

	if err := logger.rotateLogFile(logDir); err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	GlobalLogger = logger
	return nil
}

// rotateLogFile opens the current log file, archiving the previous day's
// file as a zstd-compressed backup when the date has changed
func (l *Logger) rotateLogFile(logDir string) error {
	currentDate := time.Now().Format("2006-01-02")

	if l.logFile != nil && l.lastLogDate != currentDate {
		l.logFile.Close()
		l.logFile = nil
	}

	if l.logFile == nil {
		logPath := filepath.Join(logDir, config.AppName+".log")

		// Archive the finished day before starting a new file
		if l.lastLogDate != "" && l.lastLogDate != currentDate {
			archivePath := filepath.Join(logDir,
				fmt.Sprintf("%s-%s.log.zst", config.AppName, l.lastLogDate))
			if err := archiveLog(logPath, archivePath); err != nil {
				// Fall back to a plain rename rather than lose the file
				os.Rename(logPath, archivePath[:len(archivePath)-len(".zst")])
			}
		}

		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}

		l.logFile = file
		l.lastLogDate = currentDate

		l.debugLogger = log.New(file, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)
		l.infoLogger = log.New(file, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
		l.warnLogger = log.New(file, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
		l.errorLogger = log.New(file, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	}

	return nil
}

// archiveLog compresses a finished log file and removes the original
func archiveLog(logPath, archivePath string) error {
	src, err := os.Open(logPath)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(archivePath)
	if err != nil {
		return err
	}
	defer dst.Close()

	enc, err := zstd.NewWriter(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(enc, src); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}

	return os.Remove(logPath)
}

// Debug logs debug messages
func Debug(v ...interface{}) {
	if GlobalLogger != nil && GlobalLogger.logLevel <= DEBUG {
		GlobalLogger.debugLogger.Println(v...)
	}
}

// Info logs info messages
func Info(v ...interface{}) {
	if GlobalLogger != nil && GlobalLogger.logLevel <= INFO {
		GlobalLogger.infoLogger.Println(v...)
	}
}

// Warn logs warning messages
func Warn(v ...interface{}) {
	if GlobalLogger != nil && GlobalLogger.logLevel <= WARN {
		GlobalLogger.warnLogger.Println(v...)
	}
}

// Error logs error messages
func Error(v ...interface{}) {
	if GlobalLogger != nil && GlobalLogger.logLevel <= ERROR {
		GlobalLogger.errorLogger.Println(v...)
	}
}

// Close closes the log file
func Close() {
	if GlobalLogger != nil && GlobalLogger.logFile != nil {
		GlobalLogger.logFile.Close()
	}
}
