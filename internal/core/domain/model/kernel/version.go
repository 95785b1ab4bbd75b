package kernel

// Versioned carries the optimistic-concurrency version of an aggregate. It is
// embedded into aggregates; repositories compare it against the stored row and
// bump it after a successful write.
type Versioned struct {
	version int
}

func RestoreVersioned(version int) Versioned {
	return Versioned{version: version}
}

func (v *Versioned) Version() int {
	return v.version
}

// IncrementVersion is called by repositories once an optimistic write has
// been accepted.
func (v *Versioned) IncrementVersion() {
	v.version++
}
