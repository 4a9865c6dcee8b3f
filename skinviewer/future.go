package skinviewer

import (
	"context"
)

// Future holds the outcome of one composition. It is resolved exactly once,
// either with an encoded image or with an error.
type Future struct {
	done  chan struct{}
	image string
	err   error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

func (f *Future) resolve(image string, err error) {
	f.image, f.err = image, err
	close(f.done)
}

// Done is closed once the future has been resolved.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Result returns the outcome. It blocks until the future is resolved.
func (f *Future) Result() (string, error) {
	<-f.done
	return f.image, f.err
}

// Wait is Result bounded by ctx. Giving up does not stop the composition;
// its outcome is simply never observed.
func (f *Future) Wait(ctx context.Context) (string, error) {
	select {
	case <-f.done:
		return f.image, f.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
