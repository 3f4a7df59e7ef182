// Package mediator routes typed command and query objects to the single
// handler registered for their concrete type.
package mediator

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"
)

var ErrHandlerExists = errors.New("mediator: handler already registered")

type entry struct {
	result reflect.Type
	call   func(ctx context.Context, req any) (any, error)
}

type Mediator struct {
	mu       sync.RWMutex
	handlers map[reflect.Type]entry
	log      *zap.Logger
}

func New(log *zap.Logger) *Mediator {
	return &Mediator{
		handlers: make(map[reflect.Type]entry),
		log:      log.With(zap.String("component", "mediator")),
	}
}

// Register binds fn as the handler for requests of type Req.
func Register[Req any, Res any](m *Mediator, fn func(ctx context.Context, req Req) (Res, error)) error {
	reqType := reflect.TypeFor[Req]()

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.handlers[reqType]; ok {
		return fmt.Errorf("%w: %s", ErrHandlerExists, reqType)
	}

	m.handlers[reqType] = entry{
		result: reflect.TypeFor[Res](),
		call: func(ctx context.Context, req any) (any, error) {
			return fn(ctx, req.(Req))
		},
	}

	m.log.Debug("Handler registered",
		zap.String("request", reqType.String()),
		zap.String("result", reflect.TypeFor[Res]().String()),
	)
	return nil
}

// Send dispatches req to its handler. A missing handler or a handler with a
// different result type is a wiring bug and panics.
func Send[Res any](ctx context.Context, m *Mediator, req any) (Res, error) {
	var zero Res

	reqType := reflect.TypeOf(req)

	m.mu.RLock()
	h, ok := m.handlers[reqType]
	m.mu.RUnlock()

	if !ok {
		panic(fmt.Sprintf("mediator: no handler registered for %v", reqType))
	}
	if want := reflect.TypeFor[Res](); h.result != want {
		panic(fmt.Sprintf("mediator: handler for %v returns %v, not %v", reqType, h.result, want))
	}

	out, err := h.call(ctx, req)
	if err != nil {
		return zero, err
	}
	res, _ := out.(Res)
	return res, nil
}

// Handles reports whether a handler is registered for req's type.
func (m *Mediator) Handles(req any) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.handlers[reflect.TypeOf(req)]
	return ok
}

// MustHandle fails fast at startup when any of reqs has no handler.
func (m *Mediator) MustHandle(reqs ...any) {
	for _, req := range reqs {
		if !m.Handles(req) {
			m.log.Fatal("Missing request handler", zap.String("request", fmt.Sprintf("%T", req)))
		}
	}
}
