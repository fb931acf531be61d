package traits

// Unit is the no-value marker. It is what a pipeline collapses to when the
// caller only cares about side effects and wants to discard the carried
// value explicitly.
type Unit struct{}

// Empty returns the Unit value.
func Empty() Unit {
	return Unit{}
}
