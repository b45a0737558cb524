// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package log

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLCarriesContextKeys(t *testing.T) {
	logfile := filepath.Join(t.TempDir(), "test.log")
	opts := NewOptions()
	opts.Format = jsonFormat
	opts.OutputPaths = []string{logfile}
	opts.ErrorOutputPaths = []string{logfile}
	Init(opts)

	ctx := context.WithValue(context.Background(), KeyRequestID, "req-123")
	ctx = context.WithValue(ctx, KeyUsername, "colin")
	L(ctx).Info("view recorded", Uint64("articleID", 7))
	Flush()

	data, err := os.ReadFile(logfile)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"requestID":"req-123"`)
	assert.Contains(t, out, `"username":"colin"`)
	assert.Contains(t, out, `"articleID":7`)
	assert.Contains(t, out, "view recorded")
}

func TestLWithoutContextValues(t *testing.T) {
	logfile := filepath.Join(t.TempDir(), "test.log")
	opts := NewOptions()
	opts.Format = jsonFormat
	opts.OutputPaths = []string{logfile}
	opts.ErrorOutputPaths = []string{logfile}
	Init(opts)

	L(context.Background()).Info("plain entry")
	Flush()

	data, err := os.ReadFile(logfile)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "plain entry")
	assert.NotContains(t, out, "requestID")
}

func TestOptionsValidate(t *testing.T) {
	opts := NewOptions()
	assert.Empty(t, opts.Validate())

	opts.Level = "chatty"
	opts.Format = "xml"
	errs := opts.Validate()
	assert.Len(t, errs, 2)
}
