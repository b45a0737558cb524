// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

// pump is a pluggable analytics purger to move article view data generated
// by the newsline-apiserver to any back-end.
package main

import (
	"math/rand"
	"time"

	"github.com/marmotedu/newsline/internal/pump"
)

func main() {
	rand.Seed(time.Now().UTC().UnixNano())

	pump.NewApp("newsline-pump").Run()
}
