package ecs

import "errors"

// CommandBuffer records structural changes made while a view is being
// iterated and applies them afterwards, in recording order.
type CommandBuffer struct {
	cmds []func(*Registry) error
}

// Destroy queues the destruction of e.
func (b *CommandBuffer) Destroy(e Entity) {
	b.cmds = append(b.cmds, func(r *Registry) error { return r.Destroy(e) })
}

// DeferEmplace queues Emplace[T](e, v).
func DeferEmplace[T any](b *CommandBuffer, e Entity, v T) {
	b.cmds = append(b.cmds, func(r *Registry) error { return Emplace(r, e, v) })
}

// DeferRemove queues Remove[T](e).
func DeferRemove[T any](b *CommandBuffer, e Entity) {
	b.cmds = append(b.cmds, func(r *Registry) error {
		Remove[T](r, e)
		return nil
	})
}

// Len returns the number of queued commands.
func (b *CommandBuffer) Len() int { return len(b.cmds) }

// Flush applies and forgets every queued command. Commands that fail (for
// example on an entity destroyed earlier in the buffer) do not stop the
// rest; their errors are joined.
func (b *CommandBuffer) Flush(r *Registry) error {
	var errs []error
	for _, cmd := range b.cmds {
		if err := cmd(r); err != nil {
			errs = append(errs, err)
		}
	}
	clear(b.cmds)
	b.cmds = b.cmds[:0]
	return errors.Join(errs...)
}
