package models

// SolveResult is returned by Solver.FindSolution.
type SolveResult struct {
	Found    bool    `json:"found"`
	Solution []Mask  `json:"solution,omitempty"` // final cell masks, length N*N
}

// Mask is the json-friendly alias for a cell's bitmask.Mask, re-declared
// here (rather than importing internal/bitmask from a public package) so
// pkg/models has no dependency on internal/.
type Mask uint32

// CountResult is returned by Solver.CountSolutions.
type CountResult struct {
	Count  int64 `json:"count"`
	Capped bool  `json:"capped"` // true if Count == the requested max and more may exist
}

// RealCandidatesResult is returned by Solver.FillRealCandidates.
type RealCandidatesResult struct {
	Masks      []Mask         `json:"masks"` // length N*N, each the union of per-solution values seen
	SolutionCounts map[int]int64 `json:"solutionCounts,omitempty"` // candidate index -> solutions containing it, capped
	Valid      bool           `json:"valid"`
}

// ContradictionRecord captures one trial of the simple-contradiction search
// (spec.md §4.6.7), used to prefer the "shortest" contradiction.
type ContradictionRecord struct {
	CandidateIndex int  `json:"candidateIndex"`
	CellsFilled    int  `json:"cellsFilled"`
	WentInvalid    bool `json:"wentInvalid"`
}
