// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is an alias for the zap field type.
type Field = zapcore.Field

// Level is an alias for the zap level type.
type Level = zapcore.Level

// Alias for zap level.
var (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
	PanicLevel = zapcore.PanicLevel
	FatalLevel = zapcore.FatalLevel
)

// Alias for zap field constructors.
var (
	Any      = zap.Any
	Bool     = zap.Bool
	Duration = zap.Duration
	Err      = zap.Error
	Int      = zap.Int
	Int64    = zap.Int64
	String   = zap.String
	Uint64   = zap.Uint64
)
