// Package contact handles contact form submissions. There is no mail or CRM
// backend: a submission is validated, sanitised and acknowledged after a
// fixed delay that stands in for the network round trip.
package contact

import (
	"context"
	"fmt"
	"html"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// DefaultDelay is the simulated round-trip time
const DefaultDelay = 1500 * time.Millisecond

// Field limits
const (
	MaxNameLen    = 120
	MaxEmailLen   = 254
	MaxMessageLen = 5000
)

// Submission is the form payload
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Receipt acknowledges an accepted submission
type Receipt struct {
	ID         string    `json:"id"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// FieldError reports an invalid field
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ValidationError collects every invalid field of a submission
type ValidationError struct {
	Fields []*FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Error()
	}
	return "invalid submission: " + strings.Join(parts, "; ")
}

// Reason returns the message for field, or ""
func (e *ValidationError) Reason(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Reason
		}
	}
	return ""
}

// BindForm fills s from a posted form
func (s *Submission) BindForm(values url.Values) error {
	s.Name = values.Get("name")
	s.Email = values.Get("email")
	s.Message = values.Get("message")
	return nil
}

// Reasons maps each invalid field to its message
func (e *ValidationError) Reasons() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		if _, seen := out[f.Field]; !seen {
			out[f.Field] = f.Reason
		}
	}
	return out
}

var strict = bluemonday.StrictPolicy()

// stripTags drops markup but keeps the text as typed. The policy escapes
// what it keeps; the renderer escapes again on output.
func stripTags(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}

// Clean strips markup and surrounding whitespace from every field
func (s Submission) Clean() Submission {
	return Submission{
		Name:    stripTags(s.Name),
		Email:   stripTags(s.Email),
		Message: stripTags(s.Message),
	}
}

// Validate checks the fields the form marks as required
func (s Submission) Validate() error {
	var errs []*FieldError
	check := func(field, value string, max int) bool {
		switch {
		case value == "":
			errs = append(errs, &FieldError{field, "required"})
		case len(value) > max:
			errs = append(errs, &FieldError{field, fmt.Sprintf("must be at most %d characters", max)})
		default:
			return true
		}
		return false
	}

	check("name", s.Name, MaxNameLen)
	if check("email", s.Email, MaxEmailLen) {
		if addr, err := mail.ParseAddress(s.Email); err != nil || addr.Address != s.Email {
			errs = append(errs, &FieldError{"email", "must be a valid email address"})
		}
	}
	check("message", s.Message, MaxMessageLen)

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// Service accepts submissions
type Service struct {
	delay time.Duration
	now   func() time.Time
	ids   func() string
}

// NewService creates a service that acknowledges after delay
func NewService(delay time.Duration) *Service {
	return &Service{
		delay: delay,
		now:   time.Now,
		ids: func() string {
			if id, err := uuid.NewV7(); err == nil {
				return id.String()
			}
			return uuid.NewString()
		},
	}
}

// Delay returns the simulated round-trip time
func (s *Service) Delay() time.Duration {
	return s.delay
}

// Submit cleans and validates sub, then waits out the simulated round trip.
// It returns ctx's error if ctx ends first; nothing is recorded in that case.
func (s *Service) Submit(ctx context.Context, sub Submission) (Receipt, Submission, error) {
	sub = sub.Clean()
	if err := sub.Validate(); err != nil {
		return Receipt{}, sub, err
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return Receipt{ID: s.ids(), ReceivedAt: s.now()}, sub, nil
	case <-ctx.Done():
		return Receipt{}, sub, fmt.Errorf("contact submission abandoned: %w", ctx.Err())
	}
}
