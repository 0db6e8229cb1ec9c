// Package convexapi is the typed table of backend functions the frontend calls.
// Each reference carries its argument and result types, so a call site cannot pass
// the wrong arguments or invoke a mutation as a query.
package convexapi

import (
	"context"
	"fmt"
	"petgromee-web/internal/pkg/exceptions"
	"sort"
	"strings"
	"sync"
)

type Kind string

const (
	KindQuery    Kind = "query"
	KindMutation Kind = "mutation"
	KindAction   Kind = "action"
)

// Caller performs one remote function invocation and decodes its value into out.
type Caller interface {
	Call(ctx context.Context, kind Kind, path string, args interface{}, out interface{}) error
}

// Validator is implemented by result records that check their own required fields.
type Validator interface {
	Validate() error
}

// Ref describes one backend function independent of its Go types.
type Ref struct {
	Name string
	Path string
	Kind Kind
}

type QueryRef[A, R any] struct{ ref Ref }

type MutationRef[A, R any] struct{ ref Ref }

type ActionRef[A, R any] struct{ ref Ref }

func (r QueryRef[A, R]) Ref() Ref    { return r.ref }
func (r MutationRef[A, R]) Ref() Ref { return r.ref }
func (r ActionRef[A, R]) Ref() Ref   { return r.ref }

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Ref)
)

// register names a function "{module}.{function}" and addresses it as "{module}:{function}".
func register(module, function string, kind Kind) Ref {
	ref := Ref{
		Name: module + "." + function,
		Path: module + ":" + function,
		Kind: kind,
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[ref.Name]; exists {
		panic(fmt.Sprintf("convexapi: duplicate reference %s", ref.Name))
	}
	registry[ref.Name] = ref
	return ref
}

func newQuery[A, R any](module, function string) QueryRef[A, R] {
	return QueryRef[A, R]{ref: register(module, function, KindQuery)}
}

func newMutation[A, R any](module, function string) MutationRef[A, R] {
	return MutationRef[A, R]{ref: register(module, function, KindMutation)}
}

func newAction[A, R any](module, function string) ActionRef[A, R] {
	return ActionRef[A, R]{ref: register(module, function, KindAction)}
}

// Index returns every registered reference keyed by its "{domain}.{operation}" name.
func Index() map[string]Ref {
	registryMu.RLock()
	defer registryMu.RUnlock()

	index := make(map[string]Ref, len(registry))
	for name, ref := range registry {
		index[name] = ref
	}
	return index
}

// Names lists the registered reference names in lexical order.
func Names() []string {
	index := Index()
	names := make([]string, 0, len(index))
	for name := range index {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Lookup(name string) (Ref, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ref, ok := registry[strings.TrimSpace(name)]
	return ref, ok
}

func Query[A, R any](ctx context.Context, caller Caller, ref QueryRef[A, R], args A) (R, error) {
	return invoke[R](ctx, caller, ref.ref, args)
}

func Mutate[A, R any](ctx context.Context, caller Caller, ref MutationRef[A, R], args A) (R, error) {
	return invoke[R](ctx, caller, ref.ref, args)
}

func Act[A, R any](ctx context.Context, caller Caller, ref ActionRef[A, R], args A) (R, error) {
	return invoke[R](ctx, caller, ref.ref, args)
}

func invoke[R any](ctx context.Context, caller Caller, ref Ref, args interface{}) (R, error) {
	var result R
	if err := caller.Call(ctx, ref.Kind, ref.Path, args, &result); err != nil {
		return result, err
	}

	if validator, ok := any(result).(Validator); ok {
		if err := validator.Validate(); err != nil {
			var zero R
			return zero, exceptions.ErrConvexInvalidResult(err, ref.Path, exceptions.FormatAllValidationErrors(err))
		}
	}
	return result, nil
}
