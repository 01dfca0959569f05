// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package decasify

import (
	"sync/atomic"

	"github.com/apex/log"
)

type loggerHolder struct{ log.Interface }

var logger atomic.Value // loggerHolder

func init() {
	logger.Store(loggerHolder{log.Log})
}

// SetLogger sets the logger used to report diagnostics, such as the use of
// an unimplemented style guide. A nil Logger restores the default, which is
// the package level logger of github.com/apex/log.
func SetLogger(l log.Interface) {
	if l == nil {
		l = log.Log
	}
	logger.Store(loggerHolder{l})
}

func getLogger() log.Interface {
	return logger.Load().(loggerHolder).Interface
}
