package forms

import (
	"context"
	"maps"
	"sync"
	"time"
)

// State is what the visitor currently sees for a form.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

const defaultSuccessWindow = 5 * time.Second

// Transition is reported to observers on every state change.
type Transition struct {
	From State
	To   State
	At   time.Time
}

// Observer receives transitions after the form lock is released.
type Observer func(Transition)

// SendFunc delivers the current field values.
type SendFunc func(ctx context.Context, values map[string]string) error

// Snapshot is a point in time copy of a form, suitable for rendering.
type Snapshot struct {
	State       State
	Values      map[string]string
	FieldErrors map[string]string
	Banner      string
	Code        string
}

// Submitting reports whether the submit control must be disabled.
func (s Snapshot) Submitting() bool { return s.State == StateSubmitting }

type scheduler func(d time.Duration, fn func()) (stop func() bool)

// FormOption configures a Form.
type FormOption func(*Form)

// Form tracks the idle → submitting → success | error cycle of one form.
// On success the values are cleared after the reset delay and the form
// returns to idle once the success window has passed. On error the values
// are kept so the visitor can try again. There is no automatic retry.
type Form struct {
	mu sync.Mutex

	state       State
	values      map[string]string
	fieldErrors map[string]string
	banner      string
	code        string
	generation  int
	pending     []func() bool

	successMessage string
	successWindow  time.Duration
	resetDelay     time.Duration
	observers      []Observer
	now            func() time.Time
	schedule       scheduler
}

// NewForm creates an idle form.
func NewForm(opts ...FormOption) *Form {
	f := &Form{
		state:          StateIdle,
		values:         map[string]string{},
		successMessage: "Thank you! We'll be in touch soon.",
		successWindow:  defaultSuccessWindow,
		now:            time.Now,
		schedule:       afterFunc,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// WithValues seeds the form fields.
func WithValues(values map[string]string) FormOption {
	return func(f *Form) {
		f.values = maps.Clone(values)
		if f.values == nil {
			f.values = map[string]string{}
		}
	}
}

// WithSuccessMessage sets the confirmation banner.
func WithSuccessMessage(message string) FormOption {
	return func(f *Form) {
		if message != "" {
			f.successMessage = message
		}
	}
}

// WithSuccessWindow sets how long the success banner stays visible.
func WithSuccessWindow(window time.Duration) FormOption {
	return func(f *Form) {
		if window >= 0 {
			f.successWindow = window
		}
	}
}

// WithResetDelay sets how long after success the fields are cleared.
func WithResetDelay(delay time.Duration) FormOption {
	return func(f *Form) {
		if delay >= 0 {
			f.resetDelay = delay
		}
	}
}

// WithObserver registers a transition observer.
func WithObserver(observer Observer) FormOption {
	return func(f *Form) {
		if observer != nil {
			f.observers = append(f.observers, observer)
		}
	}
}

// WithFormClock overrides the clock used for transition timestamps.
func WithFormClock(now func() time.Time) FormOption {
	return func(f *Form) {
		if now != nil {
			f.now = now
		}
	}
}

func withScheduler(schedule scheduler) FormOption {
	return func(f *Form) {
		f.schedule = schedule
	}
}

// Set updates a field. Edits are ignored while a submission is in flight.
func (f *Form) Set(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateSubmitting {
		return
	}
	f.values[field] = value
	delete(f.fieldErrors, field)
}

// State returns the current state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Values returns a copy of the field values.
func (f *Form) Values() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.values)
}

// Snapshot returns a copy of everything a view needs.
func (f *Form) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return Snapshot{
		State:       f.state,
		Values:      maps.Clone(f.values),
		FieldErrors: maps.Clone(f.fieldErrors),
		Banner:      f.banner,
		Code:        f.code,
	}
}

// Submit sends the current values once. It returns ErrSubmitInProgress when
// another submission is still in flight, otherwise the error from send.
func (f *Form) Submit(ctx context.Context, send SendFunc) error {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return ErrSubmitInProgress
	}
	f.cancelPending()
	f.generation++
	generation := f.generation
	values := maps.Clone(f.values)
	f.fieldErrors = nil
	f.banner = ""
	f.code = ""
	transition := f.transition(StateSubmitting)
	f.mu.Unlock()
	f.notify(transition)

	err := send(ctx, values)

	f.mu.Lock()
	if err != nil {
		f.fieldErrors = FieldErrors(err)
		f.banner = Banner(err)
		f.code = TextCode(err)
		transition = f.transition(StateError)
		f.mu.Unlock()
		f.notify(transition)
		return err
	}
	f.banner = f.successMessage
	transition = f.transition(StateSuccess)
	resetDelay, window := f.resetDelay, f.successWindow
	f.mu.Unlock()
	f.notify(transition)

	f.after(generation, resetDelay, f.clearValues)
	f.after(generation, window, f.expireSuccess)
	return nil
}

func (f *Form) after(generation int, delay time.Duration, fn func(generation int)) {
	if delay <= 0 {
		fn(generation)
		return
	}
	stop := f.schedule(delay, func() { fn(generation) })
	f.mu.Lock()
	f.pending = append(f.pending, stop)
	f.mu.Unlock()
}

func (f *Form) clearValues(generation int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.generation != generation || f.state != StateSuccess {
		return
	}
	f.values = map[string]string{}
}

func (f *Form) expireSuccess(generation int) {
	f.mu.Lock()
	if f.generation != generation || f.state != StateSuccess {
		f.mu.Unlock()
		return
	}
	f.values = map[string]string{}
	f.banner = ""
	transition := f.transition(StateIdle)
	f.mu.Unlock()
	f.notify(transition)
}

// Stop cancels pending success timers. The form keeps its current state, which
// suits a form that is rendered once and then discarded.
func (f *Form) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelPending()
}

// cancelPending stops timers from an earlier success. Caller holds f.mu.
func (f *Form) cancelPending() {
	for _, stop := range f.pending {
		stop()
	}
	f.pending = nil
}

// transition changes state. Caller holds f.mu.
func (f *Form) transition(to State) Transition {
	t := Transition{From: f.state, To: to, At: f.now()}
	f.state = to
	return t
}

func (f *Form) notify(t Transition) {
	f.mu.Lock()
	observers := append([]Observer(nil), f.observers...)
	f.mu.Unlock()
	for _, observer := range observers {
		observer(t)
	}
}

func afterFunc(d time.Duration, fn func()) func() bool {
	return time.AfterFunc(d, fn).Stop
}
