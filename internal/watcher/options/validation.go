// Copyright 2020 Lingfei Kong <colin404@foxmail.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package options

import "fmt"

// Validate checks Options and return a slice of found errs.
func (o *Options) Validate() []error {
	var errs []error

	errs = append(errs, o.RedisOptions.Validate()...)
	errs = append(errs, o.MySQLOptions.Validate()...)
	errs = append(errs, o.Log.Validate()...)

	if o.WatcherOptions.Clean.MaxReserveDays < 0 {
		errs = append(errs, fmt.Errorf("--clean.max-reserve-days can not be negative"))
	}

	return errs
}
