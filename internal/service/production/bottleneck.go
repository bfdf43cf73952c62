package production

import "godown-dashboard/internal/storage"

// A finished unit needs every production stage, so the number of fully
// finished units for a product is bounded by its lowest per-stage output.
// This is a min-flow model, not a sum.

// Policy controls how a stage with no activity in the window is treated.
type Policy int

const (
	// ObservedStagesOnly compares only stages that appear in the window.
	// A product seen at a single stage counts that stage's whole sum.
	// This matches the historical dashboard behavior and can overstate
	// output when a normally constraining stage was simply idle.
	ObservedStagesOnly Policy = iota

	// AbsentStageIsZero treats a known stage with no in-window entries as
	// producing zero, forcing the product's final output to zero. Needs
	// the product's expected stage set from the caller.
	AbsentStageIsZero
)

func actualQty(e storage.WorkEntry) int {
	if e.ActualQuantity == nil {
		return 0
	}
	return *e.ActualQuantity
}

// stageSums groups completed entries product → stage and sums the actual
// quantity per (product, stage) pair. Entries without a product reference
// are excluded entirely; they still count toward raw totals elsewhere.
func stageSums(entries []storage.WorkEntry) map[int64]map[int64]int {
	byProduct := make(map[int64]map[int64]int)
	for _, e := range entries {
		if e.Status != storage.EntryComplete || e.ProductID == nil {
			continue
		}
		stages, ok := byProduct[*e.ProductID]
		if !ok {
			stages = make(map[int64]int)
			byProduct[*e.ProductID] = stages
		}
		stages[e.WorkTypeID] += actualQty(e)
	}
	return byProduct
}

func minAcross(stages map[int64]int) int {
	first := true
	min := 0
	for _, qty := range stages {
		if first || qty < min {
			min = qty
			first = false
		}
	}
	return min
}

// FinalOutputs computes per-product final output under the given policy.
// knownStages maps product → expected stage IDs and is only consulted in
// AbsentStageIsZero mode; pass nil otherwise.
func FinalOutputs(entries []storage.WorkEntry, policy Policy, knownStages map[int64][]int64) map[int64]int {
	outputs := make(map[int64]int)
	for productID, stages := range stageSums(entries) {
		if policy == AbsentStageIsZero {
			missing := false
			for _, stageID := range knownStages[productID] {
				if _, ok := stages[stageID]; !ok {
					missing = true
					break
				}
			}
			if missing {
				outputs[productID] = 0
				continue
			}
		}
		outputs[productID] = minAcross(stages)
	}
	return outputs
}

// TotalFinalOutput sums per-product final outputs for the window.
func TotalFinalOutput(entries []storage.WorkEntry, policy Policy, knownStages map[int64][]int64) int {
	total := 0
	for _, qty := range FinalOutputs(entries, policy, knownStages) {
		total += qty
	}
	return total
}

// TotalWork is the raw quantity sum over all entries, no product grouping
// and no bottleneck constraint.
func TotalWork(entries []storage.WorkEntry) int {
	total := 0
	for _, e := range entries {
		total += actualQty(e)
	}
	return total
}
