package usecase

import (
	"errors"
	"testing"

	"voltgate/internal/domain"
)

func TestInternalServiceVerifier_ExactMatchOnly(t *testing.T) {
	verifier := NewInternalServiceVerifier("controller-secret")

	if err := verifier.Verify("controller-secret"); err != nil {
		t.Fatalf("exact secret rejected: %v", err)
	}

	for name, credential := range map[string]string{
		"empty":     "",
		"prefix":    "controller",
		"suffix":    "secret",
		"super":     "controller-secret-x",
		"case":      "Controller-Secret",
		"unrelated": "other",
	} {
		err := verifier.Verify(credential)
		if !errors.Is(err, domain.ErrInvalidCredential) {
			t.Fatalf("%s credential: expected ErrInvalidCredential, got %v", name, err)
		}
	}
}

func TestInternalServiceVerifier_EmptySecretFailsClosed(t *testing.T) {
	verifier := NewInternalServiceVerifier("")
	for _, credential := range []string{"", "anything"} {
		if err := verifier.Verify(credential); !errors.Is(err, domain.ErrInvalidCredential) {
			t.Fatalf("unconfigured secret must reject %q, got %v", credential, err)
		}
	}
}
