package validation

import (
	"errors"
	"strings"
	"testing"

	"portfolio-api/internal/models"
)

func TestStruct_ValidMessage(t *testing.T) {
	msg := models.Message{
		Name:    "Jo",
		Email:   "jo@x.com",
		Subject: "Hi",
		Body:    "1234567890",
	}
	if err := Struct(&msg); err != nil {
		t.Errorf("expected valid message, got %v", err)
	}
}

func TestStruct_MessageBodyTooShort(t *testing.T) {
	msg := models.Message{
		Name:    "Jo",
		Email:   "jo@x.com",
		Subject: "Hi",
		Body:    "short",
	}
	err := Struct(&msg)
	if err == nil {
		t.Fatal("expected validation error for 5-char message body")
	}

	var verrs Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation.Errors, got %T", err)
	}
	found := false
	for _, fe := range verrs {
		if fe.Field == "message" {
			found = true
			if !strings.Contains(fe.Message, "at least 10") {
				t.Errorf("expected min-length message, got %q", fe.Message)
			}
		}
	}
	if !found {
		t.Errorf("expected an error for field \"message\", got %v", verrs)
	}
}

func TestStruct_OneMessagePerViolatedField(t *testing.T) {
	err := Struct(&models.Message{})
	var verrs Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation.Errors, got %T", err)
	}
	// name, email, subject and message are all required
	if len(verrs) != 4 {
		t.Errorf("expected 4 field errors, got %d: %v", len(verrs), verrs)
	}
	seen := map[string]bool{}
	for _, fe := range verrs {
		if seen[fe.Field] {
			t.Errorf("duplicate error for field %q", fe.Field)
		}
		seen[fe.Field] = true
	}
}

func TestStruct_FieldNamesUseWireNames(t *testing.T) {
	err := Struct(&models.Service{Category: "nope"})
	var verrs Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation.Errors, got %T", err)
	}
	for _, fe := range verrs {
		if fe.Field == "Title" || fe.Field == "Category" {
			t.Errorf("expected json tag names in errors, got Go name %q", fe.Field)
		}
	}
}

func TestStruct_InvalidEmail(t *testing.T) {
	msg := models.Message{
		Name:    "Jo",
		Email:   "not-an-email",
		Subject: "Hi",
		Body:    "1234567890",
	}
	err := Struct(&msg)
	var verrs Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation.Errors, got %T", err)
	}
	if len(verrs) != 1 || verrs[0].Field != "email" {
		t.Errorf("expected a single email error, got %v", verrs)
	}
}

func TestStruct_ServiceCategoryEnum(t *testing.T) {
	svc := models.Service{Title: "t", Description: "d", Category: "gardening"}
	err := Struct(&svc)
	var verrs Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected validation.Errors, got %T", err)
	}
	found := false
	for _, fe := range verrs {
		if fe.Field == "category" && strings.Contains(fe.Message, "one of") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected category enum violation, got %v", verrs)
	}

	svc.Category = "web-development"
	if err := Struct(&svc); err != nil {
		t.Errorf("expected web-development to be a valid category, got %v", err)
	}
}

func TestStruct_EmptyCategoryAllowed(t *testing.T) {
	// Prepare fills the default; an empty category must not fail the oneof check.
	svc := models.Service{Title: "t", Description: "d"}
	if err := Struct(&svc); err != nil {
		t.Errorf("expected empty category to pass, got %v", err)
	}
}
