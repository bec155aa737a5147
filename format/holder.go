package format

import "sync/atomic"

// Holder is the process-wide current template. Readers get a full snapshot,
// reloads swap it wholesale.
type Holder struct {
	current atomic.Pointer[Template]
}

func NewHolder(t Template) *Holder {
	h := &Holder{}
	h.current.Store(&t)
	return h
}

// Current returns the template in use. A zero Holder serves the default one.
func (h *Holder) Current() Template {
	if t := h.current.Load(); t != nil {
		return *t
	}
	return Default()
}

// Set replaces the template and returns the previous one.
func (h *Holder) Set(t Template) Template {
	if previous := h.current.Swap(&t); previous != nil {
		return *previous
	}
	return Default()
}
