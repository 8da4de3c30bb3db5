package game

import (
	"snek/game/entity"
	"snek/game/types"
)

// Key is a platform-independent directional key. The driver maps raylib key
// codes onto these before pushing.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
)

// Direction converts the key, rejecting anything that is not one of the
// four arrows.
func (k Key) Direction() (types.Direction, bool) {
	switch k {
	case KeyUp:
		return types.Up, true
	case KeyDown:
		return types.Down, true
	case KeyLeft:
		return types.Left, true
	case KeyRight:
		return types.Right, true
	}
	return types.None, false
}

// InputEvent is one directional key press stamped with the monotonic time
// it arrived, in seconds.
type InputEvent struct {
	When float64
	Key  Key
}

// InputBuffer holds recent presses newest-at-front and resolves them into
// the snake's direction on each poll.
type InputBuffer struct {
	events []InputEvent
}

func NewInputBuffer() *InputBuffer {
	return &InputBuffer{events: make([]InputEvent, 0, 8)}
}

func (b *InputBuffer) Len() int {
	return len(b.events)
}

// Push prepends a press, keeping the buffer newest-first.
func (b *InputBuffer) Push(now float64, key Key) {
	b.events = append([]InputEvent{{When: now, Key: key}}, b.events...)
}

// Clear empties the buffer. Restart path.
func (b *InputBuffer) Clear() {
	b.events = b.events[:0]
}

// Resolve drains buffered presses oldest-first and steers the snake.
// Presses older than three polling intervals are stale and dropped unread.
// A candidate is rejected when it repeats the snake's direction or, for a
// snake longer than one cell, reverses it (a length-1 snake may reverse
// freely). An accepted candidate is recorded immediately; the scan stops
// there only if moving that way from the current head is collision-free.
// Otherwise the remaining presses are checked against the just-recorded
// direction, so a queued reversal of it cannot displace it. Presses left
// after an early stop stay buffered for the next poll.
func (b *InputBuffer) Resolve(now float64, snake *entity.Snake) {
	for len(b.events) > 0 {
		ev := b.events[len(b.events)-1]
		b.events = b.events[:len(b.events)-1]

		if now-ev.When > PollingRate*3 {
			continue
		}

		dir, ok := ev.Key.Direction()
		if !ok {
			continue
		}
		cur := snake.Direction()
		if dir == cur {
			continue
		}
		if snake.Len() > 1 && dir == cur.Opposite() {
			continue
		}

		snake.SetDirection(dir)
		if !snake.WillCollide(snake.NextHead(dir)) {
			break
		}
	}
}
