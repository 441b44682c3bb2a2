package tesseract4d

import (
	"fmt"
	"sync"
)

// Sink receives every recomputed projection. Implementations replace their whole geometry.
type Sink interface {
	Update(pr *Projection) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(pr *Projection) error

func (f SinkFunc) Update(pr *Projection) error { return f(pr) }

// Store owns the five parameters of one object. Every change recomputes the full projection
// from the current parameter set and pushes it to the sink before the call returns.
// Changes are serialized: one update reaches the sink completely before the next starts.
type Store struct {
	id     string
	mu     sync.Mutex
	params Params
	sink   Sink
}

// NewStore creates a store with default parameters. Nothing is projected until the first
// change or Refresh.
func NewStore(id string, sink Sink) *Store {
	return &Store{id: id, params: DefaultParams(), sink: sink}
}

// ID returns the object identifier the store was created for.
func (s *Store) ID() string { return s.id }

// Params returns a copy of the current parameters.
func (s *Store) Params() Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// Set changes one parameter by name.
func (s *Store) Set(name string, v Real) error {
	return s.apply(func(p *Params) error { return p.Set(name, v) })
}

// Nudge adds delta to one parameter by name.
func (s *Store) Nudge(name string, delta Real) error {
	return s.apply(func(p *Params) error {
		v, err := p.Get(name)
		if err != nil {
			return err
		}
		return p.Set(name, v+delta)
	})
}

func (s *Store) SetViewerDistance(v Real) error { return s.Set("viewer_distance", v) }
func (s *Store) SetWShift(v Real) error         { return s.Set("w_shift", v) }
func (s *Store) SetAngleXW(v Real) error        { return s.Set("angle_xw", v) }
func (s *Store) SetAngleYW(v Real) error        { return s.Set("angle_yw", v) }
func (s *Store) SetAngleZW(v Real) error        { return s.Set("angle_zw", v) }

// SetAll replaces all five parameters with a single update.
func (s *Store) SetAll(p Params) error {
	return s.apply(func(cur *Params) error {
		*cur = p
		return nil
	})
}

// Reset restores the defaults and pushes the result.
func (s *Store) Reset() error { return s.SetAll(DefaultParams()) }

// Refresh recomputes and pushes the current parameters.
func (s *Store) Refresh() error {
	return s.apply(func(*Params) error { return nil })
}

// apply runs mutate on a copy of the parameters, projects, and hands the result to the sink.
// The stored parameters change only when the sink accepted the new geometry.
func (s *Store) apply(mutate func(p *Params) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.params
	if err := mutate(&next); err != nil {
		return err
	}
	if err := next.sanitize(); err != nil {
		return err
	}
	pr := Project(next)
	logUpdate(s.id, &pr)
	if !pr.Finite() {
		return fmt.Errorf("%s: %w (params %+v)", s.id, ErrNonFinite, next)
	}
	if s.sink != nil {
		if err := s.sink.Update(&pr); err != nil {
			return fmt.Errorf("%s: mesh update: %w", s.id, err)
		}
	}
	s.params = next
	if pr.Singular() > 0 {
		DebugLog("%s: %d vertices near the eye, using scale %.1f", s.id, pr.Singular(), SingularScale)
	}
	return nil
}
