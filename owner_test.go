package assetbook

import "testing"

func TestOwner_VerifyPassword(t *testing.T) {
	owner, err := NewOwner("TESTUSER", "admin123", Dev)
	if err != nil {
		t.Fatalf("NewOwner() error = %v", err)
	}
	if !owner.VerifyPassword("admin123") {
		t.Error("VerifyPassword() should accept the original password")
	}
	if owner.VerifyPassword("admin124") {
		t.Error("VerifyPassword() should reject a wrong password")
	}

	// an owner created without a password never verifies.
	anonymous := Owner{Name: "TESTUSER", Env: Dev}
	if anonymous.VerifyPassword("") || anonymous.VerifyPassword("admin123") {
		t.Error("VerifyPassword() should reject on an owner without a hash")
	}
}

func TestParseAppEnv(t *testing.T) {
	if env, err := ParseAppEnv("Dev"); err != nil || env != Dev {
		t.Errorf("ParseAppEnv(Dev) = %q, %v; want dev", env, err)
	}
	if env, err := ParseAppEnv("prod"); err != nil || env != Prod {
		t.Errorf("ParseAppEnv(prod) = %q, %v; want prod", env, err)
	}
	if _, err := ParseAppEnv("staging"); err == nil {
		t.Error("ParseAppEnv(staging) should fail")
	}
}
