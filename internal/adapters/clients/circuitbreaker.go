package clients

import (
	"sync"
	"time"
)

// State is a circuit breaker state.
type State int

// Breaker states.
const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// CircuitBreakerConfig configures a CircuitBreaker.
type CircuitBreakerConfig struct {
	// MaxFailures consecutive failures open the circuit.
	MaxFailures int

	// Timeout is how long the circuit stays open before probing.
	Timeout time.Duration

	// HalfOpenLimit caps concurrent probes and is also the number of probe
	// successes that close the circuit again.
	HalfOpenLimit int
}

// CircuitBreaker stops calls to a downstream that keeps failing.
//
//	closed --MaxFailures--> open --Timeout--> half-open --HalfOpenLimit successes--> closed
//	                                          half-open --any failure--> open
type CircuitBreaker struct {
	mu          sync.Mutex
	cfg         CircuitBreakerConfig
	state       State
	failures    int
	successes   int
	probes      int
	lastFailure time.Time

	onChange func(from, to State)
	now      func() time.Time
}

// NewCircuitBreaker creates a closed breaker.
func NewCircuitBreaker(cfg CircuitBreakerConfig) *CircuitBreaker {
	if cfg.MaxFailures < 1 {
		cfg.MaxFailures = 1
	}

	if cfg.HalfOpenLimit < 1 {
		cfg.HalfOpenLimit = 1
	}

	return &CircuitBreaker{cfg: cfg, now: time.Now}
}

// OnStateChange registers fn to run after every transition, outside the lock.
func (cb *CircuitBreaker) OnStateChange(fn func(from, to State)) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.onChange = fn
}

// Allow reports whether a call may proceed. An open circuit whose timeout
// has elapsed moves to half-open and admits the caller as a probe.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()

	var (
		allowed bool
		notify  func()
	)

	switch cb.state {
	case StateClosed:
		allowed = true
	case StateOpen:
		if cb.now().Sub(cb.lastFailure) >= cb.cfg.Timeout {
			notify = cb.transition(StateHalfOpen)
			cb.probes = 1
			allowed = true
		}
	case StateHalfOpen:
		if cb.probes < cb.cfg.HalfOpenLimit {
			cb.probes++
			allowed = true
		}
	}

	cb.mu.Unlock()
	run(notify)

	return allowed
}

// RecordSuccess records a completed call.
func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()

	var notify func()

	switch cb.state {
	case StateClosed:
		cb.failures = 0
	case StateHalfOpen:
		cb.probes--
		cb.successes++

		if cb.successes >= cb.cfg.HalfOpenLimit {
			notify = cb.transition(StateClosed)
		}
	}

	cb.mu.Unlock()
	run(notify)
}

// RecordFailure records a failed call.
func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()

	var notify func()

	cb.lastFailure = cb.now()

	switch cb.state {
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.cfg.MaxFailures {
			notify = cb.transition(StateOpen)
		}
	case StateHalfOpen:
		cb.probes--
		notify = cb.transition(StateOpen)
	}

	cb.mu.Unlock()
	run(notify)
}

// State returns the current state.
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return cb.state
}

// transition must be called with mu held. The returned func, if any, fires
// the change callback and must run after unlocking.
func (cb *CircuitBreaker) transition(to State) func() {
	from := cb.state
	if from == to {
		return nil
	}

	cb.state = to
	cb.failures = 0
	cb.successes = 0

	if to != StateHalfOpen {
		cb.probes = 0
	}

	fn := cb.onChange
	if fn == nil {
		return nil
	}

	return func() { fn(from, to) }
}

func run(fn func()) {
	if fn != nil {
		fn()
	}
}
