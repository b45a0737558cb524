// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// watcher is responsible for the periodic maintenance of the platform, like
// sweeping orphan comments and reconciling channel subscriber counters.
package main

import (
	"math/rand"
	"time"

	"github.com/marmotedu/newsline/internal/watcher"
)

func main() {
	rand.Seed(time.Now().UTC().UnixNano())

	watcher.NewApp("newsline-watcher").Run()
}
