package validation

import (
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

func validQuote() Input {
	return Input{
		FormType:    "quote",
		FullName:    "Jane Citizen",
		Email:       "jane@example.com",
		PhoneNumber: "0412 345 678",
		MovingFrom:  "12 Harbour St, Sydney",
		MovingTo:    "4 Beach Rd, Manly",
		MovingDate:  "2026-03-20",
		MovingTime:  "morning",
		MoveSize:    "2BR",
	}
}

func validContact() Input {
	return Input{
		FormType:    "contact",
		FullName:    "Jane Citizen",
		Email:       "jane@example.com",
		PhoneNumber: "0412345678",
		Subject:     "Storage options",
		Message:     "Do you offer short term storage between moves?",
	}
}

func TestValidQuotePasses(t *testing.T) {
	if errs := Validate(validQuote(), testNow); len(errs) != 0 {
		t.Fatalf("Expected no errors, got %v", errs)
	}
}

func TestValidContactPasses(t *testing.T) {
	if errs := Validate(validContact(), testNow); len(errs) != 0 {
		t.Fatalf("Expected no errors, got %v", errs)
	}
}

func TestFullNameBounds(t *testing.T) {
	in := validQuote()

	in.FullName = "J"
	if errs := Validate(in, testNow); errs["fullName"] == "" {
		t.Error("1-char name should be rejected")
	}

	in.FullName = "Jo"
	if errs := Validate(in, testNow); errs["fullName"] != "" {
		t.Error("2-char name should be accepted")
	}

	in.FullName = strings.Repeat("a", 100)
	if errs := Validate(in, testNow); errs["fullName"] != "" {
		t.Error("100-char name should be accepted")
	}

	in.FullName = strings.Repeat("a", 101)
	if errs := Validate(in, testNow); errs["fullName"] == "" {
		t.Error("101-char name should be rejected")
	}

	// Trimming happens before the length check
	in.FullName = "  J  "
	if errs := Validate(in, testNow); errs["fullName"] == "" {
		t.Error("whitespace-padded 1-char name should be rejected")
	}
}

func TestEmailRules(t *testing.T) {
	in := validQuote()

	for _, bad := range []string{"", "plainaddress", "no@tld", "two words@example.com"} {
		in.Email = bad
		if errs := Validate(in, testNow); errs["email"] == "" {
			t.Errorf("email %q should be rejected", bad)
		}
	}

	in.Email = strings.Repeat("a", 250) + "@example.com"
	if errs := Validate(in, testNow); errs["email"] == "" {
		t.Error("over-255-char email should be rejected")
	}
}

// The two forms intentionally use different phone rules; these cases
// document inputs that one form accepts and the other rejects.
func TestPhoneRulesDivergeBetweenForms(t *testing.T) {
	quote := validQuote()
	contact := validContact()

	// Letters pass the quote form's plain length check but fail the
	// contact form's character-class pattern.
	quote.PhoneNumber = "call me maybe"
	if errs := Validate(quote, testNow); errs["phoneNumber"] != "" {
		t.Error("quote form accepts any 8-20 char phone value")
	}
	contact.PhoneNumber = "call me maybe"
	if errs := Validate(contact, testNow); errs["phoneNumber"] == "" {
		t.Error("contact form should reject letters in phone")
	}

	// 16-char numeric value: fine for quote (<=20), too long for contact (<=15).
	long := "+61 2 9999 88877"
	quote.PhoneNumber = long
	if errs := Validate(quote, testNow); errs["phoneNumber"] != "" {
		t.Error("quote form should accept 16-char phone")
	}
	contact.PhoneNumber = long
	if errs := Validate(contact, testNow); errs["phoneNumber"] == "" {
		t.Error("contact form should reject 16-char phone")
	}

	for _, form := range []*Input{&quote, &contact} {
		form.PhoneNumber = "1234567"
		if errs := Validate(*form, testNow); errs["phoneNumber"] == "" {
			t.Errorf("%s form should reject 7-char phone", form.FormType)
		}
		form.PhoneNumber = "(02) 9999 888"
		if errs := Validate(*form, testNow); errs["phoneNumber"] != "" {
			t.Errorf("%s form should accept (02) 9999 888", form.FormType)
		}
	}
}

func TestContactSubjectAndMessageBounds(t *testing.T) {
	in := validContact()

	in.Subject = "Hi"
	if errs := Validate(in, testNow); errs["subject"] == "" {
		t.Error("2-char subject should be rejected")
	}
	in.Subject = strings.Repeat("s", 201)
	if errs := Validate(in, testNow); errs["subject"] == "" {
		t.Error("201-char subject should be rejected")
	}

	in = validContact()
	in.Message = "too short"
	if errs := Validate(in, testNow); errs["message"] == "" {
		t.Error("9-char message should be rejected")
	}
	in.Message = strings.Repeat("m", 2001)
	if errs := Validate(in, testNow); errs["message"] == "" {
		t.Error("2001-char message should be rejected")
	}
	in.Message = strings.Repeat("m", 2000)
	if errs := Validate(in, testNow); errs["message"] != "" {
		t.Error("2000-char message should be accepted")
	}
}

func TestQuoteRequiredFields(t *testing.T) {
	cases := []struct {
		field string
		mod   func(*Input)
	}{
		{"movingFrom", func(in *Input) { in.MovingFrom = "  " }},
		{"movingTo", func(in *Input) { in.MovingTo = "" }},
		{"movingTime", func(in *Input) { in.MovingTime = "" }},
		{"moveSize", func(in *Input) { in.MoveSize = "" }},
		{"movingDate", func(in *Input) { in.MovingDate = "" }},
	}
	for _, tc := range cases {
		in := validQuote()
		tc.mod(&in)
		if errs := Validate(in, testNow); errs[tc.field] == "" {
			t.Errorf("Missing %s should be rejected", tc.field)
		}
	}
}

func TestMovingDateRules(t *testing.T) {
	in := validQuote()

	in.MovingDate = "2026-03-13"
	if errs := Validate(in, testNow); errs["movingDate"] == "" {
		t.Error("yesterday should be rejected")
	}

	in.MovingDate = "2026-03-14"
	if errs := Validate(in, testNow); errs["movingDate"] != "" {
		t.Error("today should be accepted")
	}

	in.MovingDate = "14/03/2026"
	if errs := Validate(in, testNow); errs["movingDate"] == "" {
		t.Error("non-ISO date should be rejected")
	}
}

func TestEmptyFormTypeUsesQuoteRules(t *testing.T) {
	in := validQuote()
	in.FormType = ""
	if errs := Validate(in, testNow); len(errs) != 0 {
		t.Fatalf("Expected no errors for default form type, got %v", errs)
	}

	// Quote rules apply, so missing subject/message is not an error
	// but a missing moving date is.
	in.MovingDate = ""
	if errs := Validate(in, testNow); errs["movingDate"] == "" {
		t.Error("default form type should require moving date")
	}
}
