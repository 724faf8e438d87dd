/*
File    : libretto/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package scope implements Scope[T], the generic linked stack of name->value
// frames shared by the compile-time context (T = lson.Type) and the runtime
// context (T = lson.Value), per spec §4.6.
package scope

// Scope is a single frame in a linked stack of name -> T bindings. Lookup
// walks frames innermost-first via Parent; mutation targets the frame that
// owns the name; insertion always targets the top (innermost) frame.
type Scope[T any] struct {
	bindings map[string]T
	parent   *Scope[T]
}

// New creates a fresh top-level frame with no parent.
func New[T any]() *Scope[T] {
	return &Scope[T]{bindings: make(map[string]T)}
}

// Push returns a new frame whose parent is the receiver. The caller holds on
// to both: Pop restores the receiver as the current frame.
func (s *Scope[T]) Push() *Scope[T] {
	return &Scope[T]{bindings: make(map[string]T), parent: s}
}

// Pop returns the parent frame, discarding the receiver's bindings. Pop on
// the outermost frame returns itself (there is nothing to pop to); callers
// are expected to track depth and not over-pop, as spec §8 says
// `push; pop` is a no-op but does not define popping past the root.
func (s *Scope[T]) Pop() *Scope[T] {
	if s.parent == nil {
		return s
	}
	return s.parent
}

// Get looks up name, walking outward through parents. It returns the zero
// value of T and false if no frame owns the name.
func (s *Scope[T]) Get(name string) (T, bool) {
	for frame := s; frame != nil; frame = frame.parent {
		if v, ok := frame.bindings[name]; ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// GetOrDefault looks up name and returns T's zero value when absent,
// matching the original source's `get_data` semantics (§9: Scope design
// notes).
func (s *Scope[T]) GetOrDefault(name string) T {
	v, _ := s.Get(name)
	return v
}

// Contains reports whether any frame from the receiver outward owns name.
func (s *Scope[T]) Contains(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Replace finds the frame that owns name and overwrites its binding,
// walking outward through parents. It returns whether the name was found;
// a false return leaves every frame unchanged. This implements assignment
// semantics (§4.6: "a write targets the frame that owns the name, failing
// if none does").
func (s *Scope[T]) Replace(name string, value T) bool {
	for frame := s; frame != nil; frame = frame.parent {
		if _, ok := frame.bindings[name]; ok {
			frame.bindings[name] = value
			return true
		}
	}
	return false
}

// Insert binds name to value in the top (receiver's own) frame only,
// shadowing any outer binding of the same name.
func (s *Scope[T]) Insert(name string, value T) {
	s.bindings[name] = value
}

// Depth returns the number of frames from the receiver out to the root,
// inclusive.
func (s *Scope[T]) Depth() int {
	depth := 0
	for frame := s; frame != nil; frame = frame.parent {
		depth++
	}
	return depth
}

// DataDepth returns how many frames out from the receiver own name (0 = the
// receiver's own frame), or -1 if no frame owns it. Mirrors
// original_source/src/scope.rs's data_depth, useful for diagnostics.
func (s *Scope[T]) DataDepth(name string) int {
	depth := 0
	for frame := s; frame != nil; frame = frame.parent {
		if _, ok := frame.bindings[name]; ok {
			return depth
		}
		depth++
	}
	return -1
}
