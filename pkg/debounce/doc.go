// Package debounce coalesces bursts of calls into a single delayed execution.
//
// A Debouncer wraps an action taking one argument. Every Call cancels the
// run scheduled by the previous Call and schedules a new one after the
// configured delay, so only the argument of the last call inside a quiet
// window reaches the action. A delay of Disabled (or zero) turns the wrapper
// into a passthrough that runs the action synchronously on every call.
//
// Timers come from a Scheduler. The default uses time.AfterFunc; tests and
// hosts that own their clock can supply a ManualScheduler and advance it
// explicitly:
//
//	sched := debounce.NewManualScheduler()
//	d := debounce.New(func(v string) { fmt.Println(v) }, time.Second, debounce.WithScheduler(sched))
//	d.Call("a")
//	d.Call("b")
//	sched.Advance(time.Second) // prints "b"
package debounce
