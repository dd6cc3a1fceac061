package main

import (
	"testing"

	"github.com/ndmitriev/pixelpole/internal/physics"
)

func TestPolicyAction(t *testing.T) {
	if a, err := policyAction("left"); err != nil || a != physics.ActionLeft {
		t.Errorf("policyAction(left) = %v, %v", a, err)
	}
	if a, err := policyAction("right"); err != nil || a != physics.ActionRight {
		t.Errorf("policyAction(right) = %v, %v", a, err)
	}
	for i := 0; i < 20; i++ {
		a, err := policyAction("random")
		if err != nil || !a.Valid() {
			t.Fatalf("policyAction(random) = %v, %v", a, err)
		}
	}
	if _, err := policyAction("greedy"); err == nil {
		t.Error("unknown policy should be rejected")
	}
}

func TestValidateEpisodes(t *testing.T) {
	for _, n := range []int{1, 10, 1000} {
		if err := validateEpisodes(n); err != nil {
			t.Errorf("validateEpisodes(%d) = %v, want nil", n, err)
		}
	}
	// Zero would make the mean-steps summary divide by zero.
	for _, n := range []int{0, -1} {
		if err := validateEpisodes(n); err == nil {
			t.Errorf("validateEpisodes(%d) = nil, want error", n)
		}
	}
}
