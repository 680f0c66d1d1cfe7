package clicker

import (
	"math"
	"testing"
)

func TestCompileDropFormula_ContentTableFormulas(t *testing.T) {
	if len(dropFormulaErrs) != 0 {
		t.Fatalf("content formulas failed to compile: %v", dropFormulaErrs)
	}
	formula := dropFormulas["timeAnchor"]
	rate, err := formula.Rate(5)
	if err != nil {
		t.Fatalf("rate: %v", err)
	}
	want := math.Log(6) / 20
	if math.Abs(rate-want) > 1e-12 {
		t.Fatalf("rate = %v, want %v", rate, want)
	}
}

func TestDropFormula_RateClampedToUnitInterval(t *testing.T) {
	f, err := CompileDropFormula("quantity * 100")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	rate, err := f.Rate(50)
	if err != nil {
		t.Fatalf("rate: %v", err)
	}
	if rate != 1 {
		t.Fatalf("rate = %v, want clamp to 1", rate)
	}

	f, err = CompileDropFormula("0 - quantity")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	rate, err = f.Rate(50)
	if err != nil {
		t.Fatalf("rate: %v", err)
	}
	if rate != 0 {
		t.Fatalf("rate = %v, want clamp to 0", rate)
	}
}

func TestDropFormula_UnknownFunctionFails(t *testing.T) {
	f, err := CompileDropFormula("exec(quantity)")
	if err != nil {
		return // rejected at compile time is fine too
	}
	if _, err := f.Rate(1); err == nil {
		t.Fatalf("unknown function must not evaluate")
	}
}

func TestDropFormula_NonFiniteResultFails(t *testing.T) {
	f, err := CompileDropFormula("log(quantity - 1) / 0")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, err := f.Rate(1); err == nil {
		t.Fatalf("non-finite result must error")
	}
}

func TestDropFormula_BooleanResultFails(t *testing.T) {
	f, err := CompileDropFormula("quantity > 3")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, err := f.Rate(5); err == nil {
		t.Fatalf("non-numeric result must error")
	}
}
