package propagation

import "github.com/rawblock/sudoku-kernel/pkg/models"

// pipelineScope controls which of the ten step_logic stages (spec.md §4.6)
// a single runOnce pass is allowed to reach.
type pipelineScope struct {
	singlesOnly bool
	includeLate bool // fishes, wings, chains, contradictions (steps 7-10)
}

// runOnce drives steps 1-6 directly and, when the scope allows, hands off
// to the registered late-stage techniques for steps 7-10. It returns at the
// first non-None outcome, per the "each technique returns at the first
// elimination it finds" rule.
func (e *Engine) runOnce(log *models.StepLog, isBruteForcing bool, scope pipelineScope) models.Outcome {
	if out := e.validityCheck(isBruteForcing); out != models.None {
		return out
	}
	if out := e.nakedSingle(log); out != models.None {
		return out
	}
	if out := e.hiddenSingle(log); out != models.None {
		return out
	}
	if scope.singlesOnly {
		return models.None
	}

	ctx := e.ctx()
	for _, c := range e.Constraints.All() {
		if out := c.StepLogic(ctx, log, isBruteForcing); out != models.None {
			return out
		}
	}
	for _, c := range e.Constraints.All() {
		out := c.InitLinks(ctx, log)
		if out == models.None {
			continue
		}
		e.RebuildSeen()
		return out
	}

	if out := e.tuplesAndPointing(log); out != models.None {
		return out
	}
	if out := e.directCellForcing(log); out != models.None {
		return out
	}
	if !scope.includeLate {
		return models.None
	}

	for _, t := range []Technique{e.FishesTechnique, e.WingsTechnique, e.ChainsTechnique, e.ContradictionTechnique} {
		if t == nil {
			continue
		}
		if out := t(e, log, isBruteForcing); out != models.None {
			return out
		}
	}
	return models.None
}

// loop repeats runOnce to a fixed point, stopping early on Invalid,
// PuzzleComplete, or a technique that returns None.
func (e *Engine) loop(log *models.StepLog, isBruteForcing bool, scope pipelineScope) models.Outcome {
	for {
		out := e.runOnce(log, isBruteForcing, scope)
		switch out {
		case models.None:
			if e.Board.IsComplete() {
				return models.PuzzleComplete
			}
			return models.None
		case models.Invalid, models.PuzzleComplete:
			return out
		}
		if e.Board.IsComplete() {
			return models.PuzzleComplete
		}
	}
}

// ApplySingles restricts the pipeline to steps 1-2 (naked and hidden
// singles), per spec.md §4.6.
func (e *Engine) ApplySingles(log *models.StepLog) models.Outcome {
	return e.loop(log, false, pipelineScope{singlesOnly: true})
}

// PrepForBruteForce runs consolidate with tuples/pointing/fishes enabled
// but wings/AIC/contradictions disabled (spec.md §4.6), by routing fishes
// through FishesTechnique while leaving includeLate false so wings, chains
// and the contradiction search never run.
func (e *Engine) PrepForBruteForce(log *models.StepLog) models.Outcome {
	saved := [3]Technique{e.WingsTechnique, e.ChainsTechnique, e.ContradictionTechnique}
	e.WingsTechnique, e.ChainsTechnique, e.ContradictionTechnique = nil, nil, nil
	fishes := e.FishesTechnique
	defer func() {
		e.WingsTechnique, e.ChainsTechnique, e.ContradictionTechnique = saved[0], saved[1], saved[2]
	}()
	return e.loop(log, true, pipelineScope{includeLate: fishes != nil})
}

// Consolidate runs the full ten-step pipeline to a fixed point (spec.md
// §4.6).
func (e *Engine) Consolidate(log *models.StepLog) models.Outcome {
	return e.loop(log, false, pipelineScope{includeLate: true})
}

// StepLogic runs a single pass of the full pipeline without looping to a
// fixed point, used by callers that want to inspect one elimination at a
// time.
func (e *Engine) StepLogic(log *models.StepLog, isBruteForcing bool) models.Outcome {
	return e.runOnce(log, isBruteForcing, pipelineScope{includeLate: true})
}
