package uniquelines

import "fmt"

// Result holds the line counters accumulated by one deduplication pass.
// Exactly one of the two counters is incremented per line read, so
// Unique + Duplicates always equals the number of lines consumed.
type Result struct {
	// Unique is the count of lines written to the output (first occurrences)
	Unique uint64

	// Duplicates is the count of lines dropped because their digest had
	// already been seen earlier in the pass
	Duplicates uint64
}

// Total returns the number of lines read from the input.
func (r Result) Total() uint64 {
	return r.Unique + r.Duplicates
}

func (r Result) String() string {
	return fmt.Sprintf("unique: %d\tduplicates: %d\ttotal: %d", r.Unique, r.Duplicates, r.Total())
}
