// Package search - the background stop-criterion checker.
//
// One checker per search instance. It runs a dedicated goroutine while the
// search is RUNNING, polling the registered criteria every period and
// requesting termination through the search's stop flag when one fires.
//
// Lifecycle guarantee: stop() joins the goroutine, and the engine calls it
// during TERMINATING — before the run returns — so no checker task ever
// outlives the step loop's termination handling or touches a disposed
// search.
package search

import "time"

// defaultCheckPeriod is the interval between periodic criterion checks
// when none is configured.
const defaultCheckPeriod = time.Second

type stopCriterionChecker struct {
	period time.Duration

	// check evaluates the criteria; request asks the search to stop.
	check   func() bool
	request func()

	quit chan struct{}
	done chan struct{}
}

func newStopCriterionChecker(period time.Duration, check func() bool, request func()) *stopCriterionChecker {
	return &stopCriterionChecker{period: period, check: check, request: request}
}

// start launches the periodic background check. Must be balanced by stop.
func (c *stopCriterionChecker) start() {
	c.quit = make(chan struct{})
	c.done = make(chan struct{})

	go func() {
		defer close(c.done)
		ticker := time.NewTicker(c.period)
		defer ticker.Stop()
		for {
			select {
			case <-c.quit:
				return
			case <-ticker.C:
				if c.check() {
					c.request()

					return
				}
			}
		}
	}()
}

// stop terminates the background check and joins the goroutine. Idempotent
// against a checker that already fired.
func (c *stopCriterionChecker) stop() {
	if c.quit == nil {
		return
	}
	close(c.quit)
	<-c.done
	c.quit, c.done = nil, nil
}
