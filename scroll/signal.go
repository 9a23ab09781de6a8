package scroll

// Kind distinguishes the page events that feed the tracker
type Kind int

const (
	KindScroll Kind = iota
	KindResize
)

func (k Kind) String() string {
	if k == KindResize {
		return "resize"
	}
	return "scroll"
}

// Signal is one scroll or resize notification from the page
type Signal struct {
	Kind     Kind
	Offset   float64 // document scroll offset in pixels
	Viewport Viewport
	Bounds   Bounds
}

// Listener receives page signals
type Listener func(Signal)

// Source is anything that delivers page signals
type Source interface {
	Subscribe(fn Listener) (cancel func())
}

// Dispatcher is the page-level listener registry. It is not safe for
// concurrent use; signals are dispatched on the host's frame goroutine.
type Dispatcher struct {
	listeners []*subscription
}

type subscription struct {
	fn     Listener
	active bool
}

// NewDispatcher creates an empty dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe adds a listener. The returned cancel func is idempotent.
func (d *Dispatcher) Subscribe(fn Listener) func() {
	sub := &subscription{fn: fn, active: true}
	d.listeners = append(d.listeners, sub)
	return func() {
		if !sub.active {
			return
		}
		sub.active = false
		for i, s := range d.listeners {
			if s == sub {
				d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
				break
			}
		}
	}
}

// Dispatch delivers sig to every listener in subscription order. A listener
// removed during dispatch is not called afterwards.
func (d *Dispatcher) Dispatch(sig Signal) {
	subs := append([]*subscription(nil), d.listeners...)
	for _, s := range subs {
		if s.active {
			s.fn(sig)
		}
	}
}

// Len returns the number of active listeners
func (d *Dispatcher) Len() int {
	return len(d.listeners)
}
