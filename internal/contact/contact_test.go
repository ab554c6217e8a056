package contact

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestSubmission_Clean(t *testing.T) {
	got := Submission{
		Name:    "  Asha <b>Rao</b> ",
		Email:   " asha@example.com ",
		Message: `Need 500 units<script>alert(1)</script>`,
	}.Clean()

	if got.Name != "Asha Rao" {
		t.Errorf("Name = %q", got.Name)
	}
	if got.Email != "asha@example.com" {
		t.Errorf("Email = %q", got.Email)
	}
	if strings.Contains(got.Message, "<script>") || !strings.HasPrefix(got.Message, "Need 500 units") {
		t.Errorf("Message = %q", got.Message)
	}
}

func TestSubmission_CleanKeepsPlainText(t *testing.T) {
	sub := Submission{
		Name:    "O'Brien",
		Email:   "tom&jerry@example.com",
		Message: "Need 5 < 10 units & fast",
	}
	got := sub.Clean()
	if got != sub {
		t.Errorf("Clean() = %+v, want %+v", got, sub)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	_, clean, err := NewService(0).Submit(context.Background(), sub)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if clean != sub {
		t.Errorf("Submit echoed %+v, want %+v", clean, sub)
	}
}

func TestSubmission_Validate(t *testing.T) {
	tests := []struct {
		name   string
		sub    Submission
		fields []string
	}{
		{"valid", Submission{"Asha", "asha@example.com", "Hello"}, nil},
		{"all empty", Submission{}, []string{"name", "email", "message"}},
		{"bad email", Submission{"Asha", "not-an-email", "Hello"}, []string{"email"}},
		{"display name email", Submission{"Asha", "Asha <asha@example.com>", "Hello"}, []string{"email"}},
		{"long message", Submission{"Asha", "asha@example.com", strings.Repeat("x", MaxMessageLen+1)}, []string{"message"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sub.Validate()
			if tt.fields == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if len(verr.Fields) != len(tt.fields) {
				t.Fatalf("fields = %v, want %v", verr.Fields, tt.fields)
			}
			for _, f := range tt.fields {
				if verr.Reason(f) == "" {
					t.Errorf("no reason for %s in %v", f, err)
				}
			}
		})
	}
}

func TestService_Submit(t *testing.T) {
	svc := NewService(20 * time.Millisecond)
	start := time.Now()
	receipt, clean, err := svc.Submit(context.Background(), Submission{" Asha ", "asha@example.com", "Quote for sensors"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("returned after %v, before the simulated delay", elapsed)
	}
	if receipt.ID == "" || receipt.ReceivedAt.IsZero() {
		t.Errorf("receipt = %+v", receipt)
	}
	if clean.Name != "Asha" {
		t.Errorf("cleaned name = %q", clean.Name)
	}
}

func TestService_SubmitInvalidIsImmediate(t *testing.T) {
	svc := NewService(time.Hour)
	_, _, err := svc.Submit(context.Background(), Submission{Name: "Asha"})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestService_SubmitCancelled(t *testing.T) {
	svc := NewService(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, _, err := svc.Submit(ctx, Submission{"Asha", "asha@example.com", "Hi"})
		done <- err
	}()
	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Submit did not observe cancellation")
	}
}

func TestSubmission_BindForm(t *testing.T) {
	var sub Submission
	err := sub.BindForm(url.Values{"name": {"Asha"}, "email": {"asha@example.com"}, "message": {"Hi"}, "extra": {"x"}})
	if err != nil {
		t.Fatal(err)
	}
	if sub != (Submission{"Asha", "asha@example.com", "Hi"}) {
		t.Errorf("bound %+v", sub)
	}
}

func TestValidationError_Reasons(t *testing.T) {
	err := Submission{Name: "Asha", Email: "nope"}.Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v", err)
	}
	reasons := verr.Reasons()
	if reasons["email"] == "" || reasons["message"] != "required" || reasons["name"] != "" {
		t.Errorf("reasons = %v", reasons)
	}
}
