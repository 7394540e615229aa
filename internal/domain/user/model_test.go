package user

import (
	"errors"
	"testing"
)

func TestValidatePicks(t *testing.T) {
	t.Parallel()

	if err := ValidatePicks([]Pick{{GameID: "g1", Label: "home"}, {GameID: "g2", Label: "away"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := ValidatePicks([]Pick{{GameID: "g1", Label: "home"}, {GameID: "g1", Label: "away"}})
	if !errors.Is(err, ErrDuplicatePick) {
		t.Fatalf("expected ErrDuplicatePick, got %v", err)
	}

	if err := ValidatePicks([]Pick{{GameID: " ", Label: "home"}}); err == nil {
		t.Fatalf("expected error for blank game id")
	}
}

func TestUser_PickFor(t *testing.T) {
	t.Parallel()

	u := User{Picks: []Pick{{GameID: "g1", Label: "Bears"}}}
	p, ok := u.PickFor("g1")
	if !ok || p.Label != "Bears" {
		t.Fatalf("unexpected pick: %+v ok=%t", p, ok)
	}
	if _, ok := u.PickFor("g2"); ok {
		t.Fatalf("expected no pick for g2")
	}
}
