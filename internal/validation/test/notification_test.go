package validation_test

import (
	"testing"

	"github.com/codeflix-tube/admin-catalog/internal/validation"
)

type staticValidator struct {
	messages []string
}

func (v staticValidator) Validate(n *validation.Notification) {
	for _, m := range v.messages {
		n.Append(validation.NewError(m))
	}
}

func TestNotificationPreservesOrder(t *testing.T) {
	n := validation.NewNotification()
	if n.HasError() {
		t.Fatalf("new notification must be empty")
	}

	n.Append(validation.NewError("first")).
		Append(validation.NewError("second")).
		Append(validation.NewError("third"))

	got := n.Messages()
	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("expected %d messages, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("message %d mismatch: got %q want %q", i, got[i], want[i])
		}
	}

	first, ok := n.FirstError()
	if !ok || first.Message != "first" {
		t.Fatalf("first error mismatch: %v %v", first, ok)
	}
}

func TestNotificationValidateNeverShortCircuits(t *testing.T) {
	n := validation.NewNotification()
	n.Validate(staticValidator{messages: []string{"a", "b"}})
	n.Validate(staticValidator{messages: nil})
	n.Validate(staticValidator{messages: []string{"c"}})

	if len(n.Errors()) != 3 {
		t.Fatalf("expected all validators to run, got %v", n.Messages())
	}
}

func TestNotificationAppendAll(t *testing.T) {
	left := validation.NewNotification()
	left.Append(validation.NewError("one"))

	right := validation.NewNotification()
	right.Append(validation.NewError("two")).Append(validation.NewError("three"))

	left.AppendAll(right)
	left.AppendAll(nil)

	got := left.Messages()
	want := []string{"one", "two", "three"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("message %d mismatch: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestNotificationErrorsReturnsCopy(t *testing.T) {
	n := validation.NewNotification()
	n.Append(validation.NewError("original"))

	errs := n.Errors()
	errs[0] = validation.NewError("mutated")

	if n.Messages()[0] != "original" {
		t.Fatalf("internal state must not be aliased by Errors()")
	}

	empty := validation.NewNotification()
	if empty.Errors() != nil || empty.Messages() != nil {
		t.Fatalf("empty notification must return nil slices")
	}
	if _, ok := empty.FirstError(); ok {
		t.Fatalf("empty notification has no first error")
	}
}
