package mailroom

// Stats holds the provider's monotonic delivery counters. Providers publish
// their counters through a shared.Cell, so every holder of the cell observes
// the same live numbers; see WithStats.
type Stats struct {
	// Published counts notifications accepted by Notify.
	Published uint64 `json:"published"`
	// Delivered counts notifications fully fanned out by Deliver.
	Delivered uint64 `json:"delivered"`
	// Reactions counts individual reaction invocations.
	Reactions uint64 `json:"reactions"`
	// Failures counts reactions that returned an error.
	Failures uint64 `json:"failures"`
}
