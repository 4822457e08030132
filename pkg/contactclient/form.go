package contactclient

import (
	"context"
	"fmt"
	"sync"

	"github.com/gavdev/portfolio/pkg/statemachine"
)

// Status is the visible state of the form.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusSending Status = "sending"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

type event string

const (
	eventSubmit  event = "submit"
	eventSucceed event = "succeed"
	eventFail    event = "fail"
	eventReset   event = "reset"
)

// Messages shown in the error state when the relay gives no usable text.
const (
	MsgUnknownError    = "An unknown error occurred."
	MsgConnectionError = "Failed to connect to the server. Please try again later."
)

// Sender is the part of Client a Form needs.
type Sender interface {
	Send(ctx context.Context, f Fields) (*Result, error)
}

// Form is the client side of the contact form: local field values plus the
// idle, sending, success and error states. It is safe for concurrent use.
//
//	idle    --submit-->  sending
//	error   --submit-->  sending
//	sending --succeed--> success (fields cleared)
//	sending --fail-->    error   (fields kept)
//	success --reset-->   idle
type Form struct {
	sender Sender
	state  *statemachine.Machine[Status, event]

	mu       sync.Mutex
	fields   Fields
	errorMsg string
}

// NewForm creates an idle form with empty fields.
func NewForm(sender Sender) *Form {
	f := &Form{sender: sender}
	f.state = statemachine.MustNew[Status, event](StatusIdle,
		statemachine.WithTransition[Status, event](StatusIdle, StatusSending, eventSubmit,
			statemachine.WithAction(f.clearError)),
		statemachine.WithTransition[Status, event](StatusError, StatusSending, eventSubmit,
			statemachine.WithAction(f.clearError)),
		statemachine.WithTransition[Status, event](StatusSending, StatusSuccess, eventSucceed,
			statemachine.WithAction(f.clearFields)),
		statemachine.WithTransition[Status, event](StatusSending, StatusError, eventFail,
			statemachine.WithAction(f.setError)),
		statemachine.WithTransition[Status, event](StatusSuccess, StatusIdle, eventReset),
	)
	return f
}

func (f *Form) SetName(v string) {
	f.mu.Lock()
	f.fields.Name = v
	f.mu.Unlock()
}

func (f *Form) SetEmail(v string) {
	f.mu.Lock()
	f.fields.Email = v
	f.mu.Unlock()
}

func (f *Form) SetMessage(v string) {
	f.mu.Lock()
	f.fields.Message = v
	f.mu.Unlock()
}

// Fields returns the current field values.
func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// Status returns the current state.
func (f *Form) Status() Status {
	return f.state.Current()
}

// Error returns the error text; empty outside StatusError.
func (f *Form) Error() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errorMsg
}

// Submit sends the current fields once and blocks until the relay answers.
// It returns the state the form ended in.
//
// While another Submit is in flight it returns ErrSubmitInProgress without
// sending. After a success the form must be Reset first (ErrNotReady).
func (f *Form) Submit(ctx context.Context) (Status, error) {
	if err := f.state.Fire(ctx, eventSubmit, nil); err != nil {
		current := f.state.Current()
		if current == StatusSending {
			return current, ErrSubmitInProgress
		}
		return current, fmt.Errorf("%w: %v", ErrNotReady, err)
	}

	res, err := f.sender.Send(ctx, f.Fields())

	switch {
	case err != nil:
		f.mustFire(ctx, eventFail, MsgConnectionError)
	case res.OK():
		f.mustFire(ctx, eventSucceed, nil)
	default:
		msg := res.Error
		if msg == "" {
			msg = MsgUnknownError
		}
		f.mustFire(ctx, eventFail, msg)
		err = fmt.Errorf("%w: %d %s", ErrRejected, res.StatusCode, msg)
	}
	return f.state.Current(), err
}

// Reset returns a successful form to idle so another message can be written.
// It has no effect in other states.
func (f *Form) Reset() {
	_ = f.state.Fire(context.Background(), eventReset, nil)
}

// mustFire fires a transition that the sending state always allows.
func (f *Form) mustFire(ctx context.Context, e event, data any) {
	if err := f.state.Fire(ctx, e, data); err != nil {
		panic(fmt.Sprintf("contactclient: %v", err))
	}
}

func (f *Form) clearError(context.Context, Status, Status, event, any) error {
	f.mu.Lock()
	f.errorMsg = ""
	f.mu.Unlock()
	return nil
}

func (f *Form) clearFields(context.Context, Status, Status, event, any) error {
	f.mu.Lock()
	f.fields = Fields{}
	f.mu.Unlock()
	return nil
}

func (f *Form) setError(_ context.Context, _, _ Status, _ event, data any) error {
	msg, _ := data.(string)
	f.mu.Lock()
	f.errorMsg = msg
	f.mu.Unlock()
	return nil
}
