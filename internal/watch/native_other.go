//go:build !linux

package watch

func newNative(o options) (backend, error) {
	return newPoller(o.interval), nil
}
