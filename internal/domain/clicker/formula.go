package clicker

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"
)

// Artifact drop formulas are small arithmetic expressions over the single
// variable "quantity". They are evaluated through a restricted expression
// engine with only the log function bound; any other identifier fails the
// evaluation, which the purchase path treats as "no drop". This is a security
// contract, not a convenience: content strings must never reach a general
// interpreter.

var formulaFunctions = map[string]govaluate.ExpressionFunction{
	"log": func(args ...any) (any, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("log takes exactly one argument, got %d", len(args))
		}
		v, ok := args[0].(float64)
		if !ok {
			return nil, fmt.Errorf("log argument must be numeric")
		}
		return math.Log(v), nil
	},
}

type DropFormula struct {
	expr *govaluate.EvaluableExpression
}

func CompileDropFormula(src string) (DropFormula, error) {
	expr, err := govaluate.NewEvaluableExpressionWithFunctions(src, formulaFunctions)
	if err != nil {
		return DropFormula{}, fmt.Errorf("compile drop formula %q: %w", src, err)
	}
	return DropFormula{expr: expr}, nil
}

// Rate evaluates the formula with quantity bound. The result is clamped to
// [0, 1] so a misbehaving formula can never force a guaranteed drop beyond
// certainty or a negative probability.
func (f DropFormula) Rate(quantity int64) (float64, error) {
	out, err := f.expr.Evaluate(map[string]any{"quantity": float64(quantity)})
	if err != nil {
		return 0, fmt.Errorf("evaluate drop formula: %w", err)
	}
	rate, ok := out.(float64)
	if !ok {
		return 0, fmt.Errorf("drop formula returned non-numeric %T", out)
	}
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0, fmt.Errorf("drop formula returned non-finite value")
	}
	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}
	return rate, nil
}

// Formulas compile once at startup; a generator whose formula fails to
// compile simply never drops artifacts, surfaced per purchase as a
// formula-error event.
var (
	dropFormulas    = map[string]DropFormula{}
	dropFormulaErrs = map[string]error{}
)

func init() {
	for id, def := range generatorDefs {
		if def.ArtifactDropFormula == "" {
			continue
		}
		formula, err := CompileDropFormula(def.ArtifactDropFormula)
		if err != nil {
			dropFormulaErrs[id] = err
			continue
		}
		dropFormulas[id] = formula
	}
}
