// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"
)

const resetLine = "\r\x1b[2K"

// progressTicker prints a "<N> pending" line to l every tick while
// active, and clears the line when stopped. Adapted from go-weave's
// amb.startProgress/stopProgress, simplified: this driver's checker
// callbacks never write to stdout/stderr themselves, so there is no
// need for progress to pipe-intercept the process's standard streams —
// it only needs to overwrite its own line.
type progressTicker struct {
	logger *log.Logger
	count  int64
	stop   chan struct{}
	done   chan struct{}
}

func startProgress(l *log.Logger, tick time.Duration) *progressTicker {
	p := &progressTicker{
		logger: l,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	if l == nil {
		close(p.done)
		return p
	}

	go func() {
		defer close(p.done)
		ticker := time.NewTicker(tick)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				p.report(false)
			case <-p.stop:
				p.report(true)
				return
			}
		}
	}()
	return p
}

func (p *progressTicker) setCount(n int) {
	atomic.StoreInt64(&p.count, int64(n))
}

func (p *progressTicker) report(final bool) {
	n := atomic.LoadInt64(&p.count)
	if final {
		p.logger.Writer().Write([]byte(fmt.Sprintf("%s%d pending\n", resetLine, n)))
		return
	}
	p.logger.Writer().Write([]byte(fmt.Sprintf("%s%d pending", resetLine, n)))
}

func (p *progressTicker) stopAndWait() {
	close(p.stop)
	<-p.done
}
