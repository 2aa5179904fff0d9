// Package analysis computes statistics over recorded step sequences.
//
//   - [Summarize]: role counts and operation totals for one sequence
//   - [Disorder]: inversion count of the array view at every step
//   - [Growth]: step counts of a generator across input sizes
//
// # Sorting Progress
//
// The disorder series of a correct sort ends at zero:
//
//	series := analysis.Disorder(algo.Quick(input))
//	if series[len(series)-1] != 0 {
//	    // array is not sorted
//	}
package analysis
