package core

import "fmt"

const (
	MaxConcurrentAPICalls = 40
)

var (
	RequestLimiter = make(chan struct{}, MaxConcurrentAPICalls)
)

// RunWithRateLimitedConcurrency executes fn under the shared request
// semaphore. The slot is released even when fn panics; the panic is
// re-raised so the caller's recover still sees it.
func RunWithRateLimitedConcurrency(fn func()) {
	RequestLimiter <- struct{}{}

	var released bool
	defer func() {
		if !released {
			<-RequestLimiter
		}
		if r := recover(); r != nil {
			panic(r)
		}
	}()

	defer func() {
		<-RequestLimiter
		released = true
	}()

	fn()
}

func IsMissing(str string) bool {
	return len(str) == 0
}

func MissingParamErr(paramName string) error {
	return fmt.Errorf("required param [%v] is missing", paramName)
}
