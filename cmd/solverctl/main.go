// Command solverctl is the CLI boundary for the sudoku kernel: read a
// givens string, build a solver over the default region partition, and
// run whichever operation the flags select.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	sudoku "github.com/rawblock/sudoku-kernel"
	"github.com/rawblock/sudoku-kernel/internal/board"
	"github.com/rawblock/sudoku-kernel/internal/importio"
	"github.com/rawblock/sudoku-kernel/pkg/models"
)

func main() {
	log.Println("Starting solverctl...")

	givensFlag := flag.String("givens", "", "givens string (reads stdin if omitted)")
	op := flag.String("op", "consolidate", "operation: consolidate | find | count | fill")
	maxCount := flag.Int64("max", 0, "count: stop after this many solutions (0 = unbounded)")
	numSolutions := flag.Int("num-solutions", 8, "fill: number of solutions to union")
	multithread := flag.Bool("multithread", true, "find/count: run branches concurrently (fill always does)")
	jsonOut := flag.Bool("json", false, "print result as JSON instead of text")
	flag.Parse()

	givens := *givensFlag
	if givens == "" {
		data, err := io.ReadAll(bufio.NewReader(os.Stdin))
		if err != nil {
			log.Fatalf("FATAL: failed to read givens from stdin: %v", err)
		}
		givens = string(data)
	}

	maxValue, values, err := importio.ParseGivens(givens)
	if err != nil {
		log.Fatalf("FATAL: %v", err)
	}

	side := maxValue
	log.Printf("Parsed %dx%d board, max value %d", side, side, maxValue)

	s, err := sudoku.New(side, side, maxValue)
	if err != nil {
		log.Fatalf("FATAL: failed to create solver: %v", err)
	}
	if err := s.SetRegions(board.DefaultRegions(side, side, maxValue)); err != nil {
		log.Fatalf("FATAL: failed to set regions: %v", err)
	}

	masks := importio.MasksFromGivens(maxValue, values)
	for cell, m := range masks {
		if m.IsSet() {
			if s.SetValue(cell, m.Value()) == models.Invalid {
				log.Fatalf("FATAL: givens are self-contradictory at cell %d", cell)
			}
		}
	}

	if !s.FinalizeConstraints() {
		log.Fatalf("FATAL: board is infeasible after finalize")
	}
	log.Println("Solver finalized, ready")

	ctx := context.Background()

	switch *op {
	case "consolidate":
		stepLog := &models.StepLog{}
		out := s.Consolidate(stepLog)
		printResult(*jsonOut, map[string]any{
			"outcome": out.String(),
			"board":   s.Board().Format(),
			"steps":   stepLog.Entries,
		})
	case "find":
		result := s.FindSolution(ctx, *multithread, false)
		printResult(*jsonOut, result)
	case "count":
		result := s.CountSolutions(ctx, *maxCount, *multithread, nil, nil, nil)
		printResult(*jsonOut, result)
	case "fill":
		result := s.FillRealCandidates(ctx, nil, *numSolutions)
		printResult(*jsonOut, result)
	default:
		log.Fatalf("FATAL: unknown -op %q (want consolidate|find|count|fill)", *op)
	}
}

func printResult(asJSON bool, v any) {
	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			log.Fatalf("FATAL: failed to encode result: %v", err)
		}
		return
	}
	fmt.Printf("%+v\n", v)
}
