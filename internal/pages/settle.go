package pages

import (
	"context"
	"errors"
	"sync"
)

type task func(ctx context.Context)

// settle runs tasks concurrently and waits for all of them. Reads that hit
// the request deadline fail like any other read and fall back, so only a
// cancelled context (the client went away) is reported. In that case settle
// returns without waiting and the caller discards whatever the tasks produce.
func settle(ctx context.Context, tasks ...task) error {
	if clientGone(ctx) {
		return ctx.Err()
	}
	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for _, run := range tasks {
		go func() {
			defer wg.Done()
			run(ctx)
		}()
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		if clientGone(ctx) {
			return ctx.Err()
		}
		<-done
	}
	if clientGone(ctx) {
		return ctx.Err()
	}
	return nil
}

func clientGone(ctx context.Context) bool {
	return errors.Is(ctx.Err(), context.Canceled)
}
