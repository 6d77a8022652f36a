package game

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

// Scheduler defers a callback to the host's next frame.
type Scheduler interface {
	Schedule(fn func()) Handle
	Cancel(h Handle)
}

type scheduled struct {
	handle Handle
	fn     func()
}

// FrameScheduler queues callbacks until the host calls RunFrame.
// Callbacks scheduled while a frame is running wait for the following frame.
type FrameScheduler struct {
	next    Handle
	queue   []scheduled
	running []scheduled // batch being run by RunFrame
}

// NewFrameScheduler creates an empty scheduler.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// Schedule queues fn for the next frame.
func (s *FrameScheduler) Schedule(fn func()) Handle {
	s.next++
	s.queue = append(s.queue, scheduled{handle: s.next, fn: fn})
	return s.next
}

// Cancel removes a pending callback. Unknown or already-run handles are ignored.
func (s *FrameScheduler) Cancel(h Handle) {
	for i, sc := range s.queue {
		if sc.handle == h {
			s.queue = append(s.queue[:i], s.queue[i+1:]...)
			return
		}
	}
	for i := range s.running {
		if s.running[i].handle == h {
			s.running[i].fn = nil
			return
		}
	}
}

// RunFrame runs every callback queued before the call and returns how many ran.
func (s *FrameScheduler) RunFrame() int {
	if len(s.queue) == 0 {
		return 0
	}

	s.running = s.queue
	s.queue = nil

	n := 0
	for i := range s.running {
		fn := s.running[i].fn
		if fn == nil {
			continue
		}
		s.running[i].fn = nil
		fn()
		n++
	}

	s.running = nil
	return n
}

// Pending returns the number of queued callbacks.
func (s *FrameScheduler) Pending() int {
	return len(s.queue)
}
