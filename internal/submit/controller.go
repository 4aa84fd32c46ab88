package submit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cerberus/internal/backend"
	"cerberus/internal/models"
	"cerberus/internal/present"
	"cerberus/internal/session"
)

// State is the submission lifecycle state.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateError   State = "error"
)

// Severity tags the status line for presentation styling.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityLoading Severity = "loading"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// StatusFunc receives every status-line update. May be nil.
type StatusFunc func(severity Severity, message string)

// ErrInFlight is returned when Submit is called while a prior
// submission has not resolved. The contract assumes sequential use;
// overlapping submissions are refused rather than superseded.
var ErrInFlight = errors.New("a submission is already in flight")

// Result pairs the decoded backend response with its composed UI state.
type Result struct {
	Response     *models.ModerationResponse
	Presentation *present.Presentation
}

// Controller drives one submission form instance through the
// idle → loading → success/error state machine. It is not safe for
// concurrent use; create one controller per form.
type Controller struct {
	client  *backend.Client
	session *session.Session
	state   State
	notify  StatusFunc
}

func New(client *backend.Client, sess *session.Session, notify StatusFunc) *Controller {
	return &Controller{
		client:  client,
		session: sess,
		state:   StateIdle,
		notify:  notify,
	}
}

func (c *Controller) State() State { return c.state }

func (c *Controller) setStatus(state State, severity Severity, message string) {
	c.state = state
	if c.notify != nil {
		c.notify(severity, message)
	}
}

// Submit validates the request, performs the moderation call and
// composes the presentation. Validation failures keep the controller
// at Idle and never touch the network; every other failure lands in
// the Error state with a human-readable message, ready for re-entry.
func (c *Controller) Submit(ctx context.Context, req *models.ModerationRequest) (*Result, error) {
	if c.state == StateLoading {
		return nil, ErrInFlight
	}

	if err := req.Validate(); err != nil {
		c.setStatus(StateIdle, SeverityInfo, "Please provide text, an image, or both.")
		return nil, err
	}

	c.setStatus(StateLoading, SeverityLoading, "Analyzing content...")

	resp, err := c.client.Moderate(ctx, req, c.session.Token())
	if err != nil {
		c.setStatus(StateError, SeverityError, userMessage(err))
		return nil, err
	}

	c.setStatus(StateSuccess, SeveritySuccess, "Analysis complete.")
	return &Result{
		Response:     resp,
		Presentation: present.Compose(resp),
	}, nil
}

// userMessage flattens the error taxonomy into one status line. A 401
// gets its own wording but follows the same error path; nothing is
// retried automatically.
func userMessage(err error) string {
	if errors.Is(err, models.ErrAuthRequired) {
		return "Authentication required - please check your credentials."
	}
	var httpErr *models.HTTPError
	if errors.As(err, &httpErr) {
		return fmt.Sprintf("Moderation service error (status %d).", httpErr.StatusCode)
	}
	if errors.Is(err, models.ErrServerReported) {
		msg := strings.TrimPrefix(err.Error(), models.ErrServerReported.Error()+": ")
		return "Moderation failed: " + msg
	}
	if errors.Is(err, models.ErrParse) {
		return "The moderation service returned an unreadable response."
	}
	return "Could not reach the moderation service. Please try again."
}
