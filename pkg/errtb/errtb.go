package errtb

// Must unwraps a (value, error) pair, panicking on error. Meant for
// startup code where an error means a broken environment.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// Must0 is Must for calls that only return an error.
func Must0(err error) {
	if err != nil {
		panic(err)
	}
}
