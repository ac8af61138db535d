package state

import (
	"sync"

	"github.com/anandita/storefront/cart/pkg/response"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSubmitting
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSubmitting:
		return "submitting"
	case PhaseError:
		return "error"
	}
	return "unknown"
}

// View is the client-visible cart state. Cart always holds the last cart the
// server returned; a failure never patches it, only sets ErrMessage. There is
// no optimistic state: every transition away from idle ends in a fresh full
// reload or an error display.
type View struct {
	Cart       response.Cart
	ErrMessage string
	Phase      Phase
	Loaded     bool
}

type Event interface {
	isEvent()
}

type LoadStarted struct{}

type Loaded struct {
	Cart response.Cart
}

type LoadFailed struct {
	Message string
}

type MutationStarted struct{}

type MutationFailed struct {
	Message string
}

func (LoadStarted) isEvent()     {}
func (Loaded) isEvent()          {}
func (LoadFailed) isEvent()      {}
func (MutationStarted) isEvent() {}
func (MutationFailed) isEvent()  {}

// Reduce is the pure transition function. Rendering is a side effect applied
// by the Store after the new view settles, never in here.
func Reduce(v View, e Event) View {
	switch event := e.(type) {
	case LoadStarted:
		v.Phase = PhaseLoading
		v.ErrMessage = ""
	case Loaded:
		v.Phase = PhaseIdle
		v.Cart = event.Cart
		v.Loaded = true
		v.ErrMessage = ""
	case LoadFailed:
		// prior view stays on screen, only the loading indicator clears
		v.Phase = PhaseError
		v.ErrMessage = event.Message
	case MutationStarted:
		v.Phase = PhaseSubmitting
		v.ErrMessage = ""
	case MutationFailed:
		v.Phase = PhaseError
		v.ErrMessage = event.Message
	}
	return v
}

// Store serializes event application. Dispatches from overlapping fetch
// sequences are applied one at a time, so the rendered view always reflects a
// single settled reduction instead of whichever response happened to land
// last mid-render.
type Store struct {
	mu       sync.Mutex
	view     View
	onChange func(View)
}

// NewStore returns a store rendering through onChange after every dispatch.
// onChange may be nil when the caller only reads the final view.
func NewStore(onChange func(View)) *Store {
	return &Store{onChange: onChange}
}

func (s *Store) Dispatch(e Event) View {
	s.mu.Lock()
	s.view = Reduce(s.view, e)
	v := s.view
	s.mu.Unlock()
	if s.onChange != nil {
		s.onChange(v)
	}
	return v
}

func (s *Store) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}
