// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// Package all links every watcher job into the watcher binary.
package all

import (
	// add the watchers to the registry through their init functions.
	_ "github.com/marmotedu/newsline/internal/watcher/watcher/clean"
	_ "github.com/marmotedu/newsline/internal/watcher/watcher/counter"
)
