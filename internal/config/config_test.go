package config

import "testing"

func TestLoadFallsBackToDefaultsWhenUnset(t *testing.T) {
	t.Setenv(envMaxBarLengthM, "")
	t.Setenv(envCoverCM, "")
	t.Setenv(envTemplateKey, "")

	d := Load()

	if d.MaxBarLengthM != 12.0 {
		t.Fatalf("MaxBarLengthM = %f, want 12.0", d.MaxBarLengthM)
	}
	if d.CoverCM != 5 {
		t.Fatalf("CoverCM = %d, want 5", d.CoverCM)
	}
	if d.TemplateKey != "beam/default" {
		t.Fatalf("TemplateKey = %q, want %q", d.TemplateKey, "beam/default")
	}
}

func TestLoadReadsEnvironmentOverrides(t *testing.T) {
	t.Setenv(envMaxBarLengthM, "9.5")
	t.Setenv(envCoverCM, "7")
	t.Setenv(envLocale, "en-US")

	d := Load()

	if d.MaxBarLengthM != 9.5 {
		t.Fatalf("MaxBarLengthM = %f, want 9.5", d.MaxBarLengthM)
	}
	if d.CoverCM != 7 {
		t.Fatalf("CoverCM = %d, want 7", d.CoverCM)
	}
	if d.Locale != "en-US" {
		t.Fatalf("Locale = %q, want %q", d.Locale, "en-US")
	}
}

func TestLoadIgnoresUnparsableOverride(t *testing.T) {
	t.Setenv(envCoverCM, "not-a-number")

	d := Load()

	if d.CoverCM != 5 {
		t.Fatalf("CoverCM = %d, want fallback 5 for an unparsable override", d.CoverCM)
	}
}
