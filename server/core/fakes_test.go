package core

import (
	"errors"

	"github.com/yohamta/donburi"
)

type fakePeer struct {
	id   string
	sent []any
}

func (p *fakePeer) Id() string { return p.id }

func (p *fakePeer) SendMessage(msg any) error {
	p.sent = append(p.sent, msg)
	return nil
}

// lastOf returns the most recent message of type T sent to p.
func lastOf[T any](p *fakePeer) (T, bool) {
	for i := len(p.sent) - 1; i >= 0; i-- {
		if m, ok := p.sent[i].(T); ok {
			return m, true
		}
	}
	var zero T
	return zero, false
}

func allOf[T any](p *fakePeer) []T {
	var out []T
	for _, msg := range p.sent {
		if m, ok := msg.(T); ok {
			out = append(out, m)
		}
	}
	return out
}

type fakeReplicator struct {
	next   uint
	ids    map[donburi.Entity]uint
	kinds  map[donburi.Entity]string
	refuse string
}

func newFakeReplicator() *fakeReplicator {
	return &fakeReplicator{
		ids:   make(map[donburi.Entity]uint),
		kinds: make(map[donburi.Entity]string),
	}
}

func (r *fakeReplicator) Track(e *donburi.Entity, kind string) error {
	if kind == r.refuse {
		return errors.New("refused")
	}
	r.next++
	r.ids[*e] = r.next
	r.kinds[*e] = kind
	return nil
}

func (r *fakeReplicator) NetworkID(e *donburi.Entry) uint {
	return r.ids[e.Entity()]
}
