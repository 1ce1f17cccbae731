package pulpgo

// SOSSet is a Special Ordered Set: an ordered mapping from Variable to a
// branching weight. The core never interprets these weights itself — it
// only serializes them into the LP/MPS SOS sections for the backend solver
// to use as a branching hint.
type SOSSet struct {
	name    string
	order   []*Variable
	weights map[*Variable]float64
}

// NewSOSSet creates an empty named SOS set.
func NewSOSSet(name string) *SOSSet {
	return &SOSSet{name: name, weights: map[*Variable]float64{}}
}

// Name returns the set's name.
func (s *SOSSet) Name() string { return s.name }

// Add appends v with the given weight, overwriting the weight in place
// (without reordering) if v is already a member.
func (s *SOSSet) Add(v *Variable, weight float64) {
	if _, ok := s.weights[v]; !ok {
		s.order = append(s.order, v)
	}
	s.weights[v] = weight
}

// Members returns the set's variables in insertion order.
func (s *SOSSet) Members() []*Variable {
	out := make([]*Variable, len(s.order))
	copy(out, s.order)
	return out
}

// Weight returns the branching weight assigned to v (0 if v is not a member).
func (s *SOSSet) Weight(v *Variable) float64 { return s.weights[v] }

// Len returns the number of members.
func (s *SOSSet) Len() int { return len(s.order) }

// Copy returns a shallow duplicate sharing the same Variable pointers.
func (s *SOSSet) Copy() *SOSSet {
	out := NewSOSSet(s.name)
	for _, v := range s.order {
		out.Add(v, s.weights[v])
	}
	return out
}
