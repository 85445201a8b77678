package logger

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger writes GORM statements to zap, tagged with the driver, the
// statement's operation and its target table.
type GormLogger struct {
	logger         *zap.Logger
	level          gormlogger.LogLevel
	driver         string
	slowThreshold  time.Duration
	reportNotFound bool
}

// GormLoggerOption configures a GormLogger
type GormLoggerOption func(*GormLogger)

// WithSlowThreshold sets the duration above which a statement is logged as slow.
// Zero disables slow statement warnings.
func WithSlowThreshold(threshold time.Duration) GormLoggerOption {
	return func(l *GormLogger) {
		l.slowThreshold = threshold
	}
}

// WithDriver records the database driver (postgres, sqlite) on every entry
func WithDriver(driver string) GormLoggerOption {
	return func(l *GormLogger) {
		l.driver = driver
	}
}

// WithRecordNotFound logs gorm.ErrRecordNotFound as an error. Off by default.
func WithRecordNotFound(report bool) GormLoggerOption {
	return func(l *GormLogger) {
		l.reportNotFound = report
	}
}

// NewGormLogger creates a GORM logger backed by zap
func NewGormLogger(zapLogger *zap.Logger, level gormlogger.LogLevel, opts ...GormLoggerOption) *GormLogger {
	gl := &GormLogger{
		logger:        zapLogger.Named("gorm"),
		level:         level,
		slowThreshold: 200 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(gl)
	}
	return gl
}

// LogMode implements gormlogger.Interface
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

// Info implements gormlogger.Interface
func (l *GormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Info {
		l.logger.Sugar().Infof(msg, data...)
	}
}

// Warn implements gormlogger.Interface
func (l *GormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Warn {
		l.logger.Sugar().Warnf(msg, data...)
	}
}

// Error implements gormlogger.Interface
func (l *GormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= gormlogger.Error {
		l.logger.Sugar().Errorf(msg, data...)
	}
}

// Trace implements gormlogger.Interface. Errors are logged at error, slow
// statements at warn, everything else at debug when the level is Info.
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}
	if err != nil && errors.Is(err, gormlogger.ErrRecordNotFound) && !l.reportNotFound {
		err = nil
	}

	elapsed := time.Since(begin)
	slow := l.slowThreshold > 0 && elapsed > l.slowThreshold

	var log func(string, ...zap.Field)
	msg := "SQL Query"
	switch {
	case err != nil && l.level >= gormlogger.Error:
		log, msg = l.logger.Error, "SQL Error"
	case err == nil && slow && l.level >= gormlogger.Warn:
		log, msg = l.logger.Warn, "Slow SQL"
	case err == nil && l.level >= gormlogger.Info:
		log = l.logger.Debug
	default:
		return
	}

	sql, rows := fc()
	op, table := describeStatement(sql)
	fields := []zap.Field{
		zap.String("db.operation", op),
		zap.String("db.table", table),
		zap.Duration("elapsed", elapsed),
		zap.Int64("rows", rows),
		zap.String("sql", sql),
	}
	if l.driver != "" {
		fields = append(fields, zap.String("db.driver", l.driver))
	}
	if slow {
		fields = append(fields, zap.Duration("slow_threshold", l.slowThreshold))
	}
	if requestID := GetRequestID(ctx); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}
	fields = append(fields, TraceFields(ctx)...)
	if err != nil {
		fields = append(fields, zap.Error(err))
	}

	log(msg, fields...)
}

// describeStatement returns the SQL verb and the table it targets, e.g.
// `UPDATE "cliente" SET "cidade_id"=NULL ...` gives ("UPDATE", "cliente").
func describeStatement(sql string) (op, table string) {
	words := strings.Fields(sql)
	if len(words) == 0 {
		return "", ""
	}
	op = strings.ToUpper(words[0])

	marker := ""
	switch op {
	case "SELECT", "DELETE":
		marker = "FROM"
	case "INSERT":
		marker = "INTO"
	case "UPDATE":
		if len(words) > 1 {
			return op, unquoteIdent(words[1])
		}
		return op, ""
	default:
		return op, ""
	}

	for i := 1; i < len(words)-1; i++ {
		if strings.EqualFold(words[i], marker) {
			return op, unquoteIdent(words[i+1])
		}
	}
	return op, ""
}

func unquoteIdent(s string) string {
	s = strings.TrimRight(s, ",;(")
	return strings.Trim(s, "\"`")
}

// MapGormLogLevel maps the application log level to a GORM log level.
// Queries are only traced at debug; info keeps slow queries and errors.
func MapGormLogLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "warn":
		return gormlogger.Warn
	case "debug":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
