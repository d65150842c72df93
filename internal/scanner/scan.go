package scanner

import "context"

// Run probes every path in order, one at a time, and groups the outcomes.
// onResult, if non-nil, is called after each path has been classified and
// recorded. A failed probe never stops the scan; only cancellation of ctx
// does, in which case the partial grouping is returned with ctx.Err().
func Run(ctx context.Context, prober Prober, paths []string, onResult func(*Result)) (*Results, error) {
	results := NewResults()

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result := prober.Probe(ctx, path)
		if ctx.Err() != nil {
			// The in-flight probe was cut short by cancellation, not by
			// the target; don't record it.
			return results, ctx.Err()
		}

		results.Add(result.Outcome, result.Path)
		if onResult != nil {
			onResult(&result)
		}
	}

	return results, nil
}
