// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package cronlog adapts the project logger to the cron.Logger interface.
package cronlog

import (
	"fmt"

	"go.uber.org/zap"
)

type logger struct {
	zapLogger *zap.SugaredLogger
}

// NewLogger create a logger which implement `github.com/robfig/cron/v3`.Logger
// interface.
func NewLogger(zapLogger *zap.SugaredLogger) logger { // nolint: golint
	return logger{zapLogger: zapLogger}
}

// Info logs routine messages about cron's operation.
func (l logger) Info(msg string, args ...interface{}) {
	l.zapLogger.Infow(msg, args...)
}

// Error logs an error condition.
func (l logger) Error(err error, msg string, args ...interface{}) {
	l.zapLogger.Errorw(fmt.Sprintf(msg, args...), "error", err.Error())
}

// Flush flushes any buffered log entries.
func (l logger) Flush() {
	_ = l.zapLogger.Sync()
}
