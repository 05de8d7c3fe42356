package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidIBAN(t *testing.T) {
	valid := []string{
		"AE070331234567890123456",
		"ae070331234567890123456",
		"AE07 0331 2345 6789 0123 456",
	}
	invalid := []string{
		"AE07033123456789012345",   // 20 digits
		"AE0703312345678901234567", // 22 digits
		"GB29NWBK60161331926819",   // wrong country
		"AE07033123456789012345X",  // non-digit
		"",
	}
	for _, iban := range valid {
		if !IsValidIBAN(iban) {
			t.Errorf("IsValidIBAN(%q) = false, want true", iban)
		}
	}
	for _, iban := range invalid {
		if IsValidIBAN(iban) {
			t.Errorf("IsValidIBAN(%q) = true, want false", iban)
		}
	}
}

func TestIsValidWPSID(t *testing.T) {
	if !IsValidWPSID("12345678901234") {
		t.Error("IsValidWPSID(14 digits) = false, want true")
	}
	for _, id := range []string{"1234567890123", "123456789012345", "1234567890123a", ""} {
		if IsValidWPSID(id) {
			t.Errorf("IsValidWPSID(%q) = true, want false", id)
		}
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	valid := []string{"EMP-0001", "HR-2041", "FIN-0007"}
	invalid := []string{"emp-0001", "E-0001", "EMPLO-0001", "EMP-001", "EMP0001", ""}
	for _, code := range valid {
		if !IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", code)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "2023-01-32", "01-01-2023", "not-a-date", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}
