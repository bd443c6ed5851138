package main

import "testing"

func TestFindScenario_ReturnsKnownScenarioByName(t *testing.T) {
	sc, err := findScenario("pure-comb")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sc.Name != "pure-comb" {
		t.Errorf("got %q, want pure-comb", sc.Name)
	}
}

func TestFindScenario_ErrorsOnUnknownName(t *testing.T) {
	if _, err := findScenario("not-a-real-scenario"); err == nil {
		t.Error("expected an error for an unknown scenario name")
	}
}
