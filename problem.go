package pulpgo

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ObjectiveSense is the optimization direction of a Problem.
type ObjectiveSense int

const (
	Minimize ObjectiveSense = 1
	Maximize ObjectiveSense = -1
)

func (s ObjectiveSense) String() string {
	if s == Maximize {
		return "Maximize"
	}
	return "Minimize"
}

// Problem is a named container of an objective, an ordered mapping of
// named constraints, optional SOS1/SOS2 sets, and solution status.
type Problem struct {
	Name      string
	Sense     ObjectiveSense
	Status    Status
	NoOverlap bool

	objective       *AffineExpression
	constraintOrder []string
	constraints     map[string]*Constraint
	sos1Order       []string
	sos1            map[string]*SOSSet
	sos2Order       []string
	sos2            map[string]*SOSSet

	lastUnused int
}

// NewProblem creates an empty problem with the given name and sense.
func NewProblem(name string, sense ObjectiveSense) *Problem {
	return &Problem{
		Name:        name,
		Sense:       sense,
		Status:      NotSolved,
		NoOverlap:   true,
		constraints: map[string]*Constraint{},
		sos1:        map[string]*SOSSet{},
		sos2:        map[string]*SOSSet{},
	}
}

// Objective returns the problem's objective expression, or nil if unset.
func (p *Problem) Objective() *AffineExpression { return p.objective }

// SetObjective assigns the objective expression directly, keyed under name
// (pass "" to leave the objective's own Name, if any).
func (p *Problem) SetObjective(e *AffineExpression, name string) {
	p.objective = e
	if name != "" {
		p.objective.SetName(name)
	}
}

// unusedConstraintName returns the next auto-generated constraint name of
// the form "_C<n>" not already present in the problem.
func (p *Problem) unusedConstraintName() string {
	for {
		p.lastUnused++
		name := "_C" + strconv.Itoa(p.lastUnused)
		if _, ok := p.constraints[name]; !ok {
			return name
		}
	}
}

// AddConstraint inserts c under name, auto-generating a name from c.Name()
// or an "_C<n>" counter if name is "". A zero-term constraint is only
// validated, never stored: it is either trivially satisfied (discarded) or
// an ErrDomain (e.g. adding "3 <= 2"). Returns ErrValue if NoOverlap is set
// and the name already exists.
func (p *Problem) AddConstraint(c *Constraint, name string) error {
	if c.Len() == 0 {
		if !c.Valid(0) {
			return wrapErr(ErrDomain, "cannot add an unsatisfiable constant constraint")
		}
		return nil
	}
	if name == "" {
		name = c.Name()
	}
	if name == "" {
		name = p.unusedConstraintName()
	}
	if _, exists := p.constraints[name]; exists {
		if p.NoOverlap {
			return wrapErrf(ErrValue, "overlapping constraint name: %s", name)
		}
	} else {
		p.constraintOrder = append(p.constraintOrder, name)
	}
	p.constraints[name] = c
	return nil
}

// Add dispatches x the way `prob += x` does in the source this is grounded
// on: a *Constraint is added under name (or auto-named); a *AffineExpression
// or *Variable or numeric constant becomes the objective (named name); any
// other type is a type error.
func (p *Problem) Add(x interface{}, name string) error {
	switch t := x.(type) {
	case *Constraint:
		return p.AddConstraint(t, name)
	case *AffineExpression:
		p.objective = t
		p.objective.SetName(name)
		return nil
	case *Variable:
		p.objective = NewExpressionFromVariable(t)
		p.objective.SetName(name)
		return nil
	default:
		c, ok := toFloat(x)
		if !ok {
			return wrapErrf(ErrType, "cannot add value of type %T to a problem", x)
		}
		p.objective = NewExpression(c)
		p.objective.SetName(name)
		return nil
	}
}

// Constraint returns the constraint registered under name, and whether it
// exists.
func (p *Problem) Constraint(name string) (*Constraint, bool) {
	c, ok := p.constraints[name]
	return c, ok
}

// ConstraintNames returns constraint names in insertion order.
func (p *Problem) ConstraintNames() []string {
	out := make([]string, len(p.constraintOrder))
	copy(out, p.constraintOrder)
	return out
}

// NumConstraints returns the number of constraints currently registered.
func (p *Problem) NumConstraints() int { return len(p.constraintOrder) }

// AddSOS1 registers (or overwrites) a SOS1 set under name.
func (p *Problem) AddSOS1(name string, set *SOSSet) {
	if _, exists := p.sos1[name]; !exists {
		p.sos1Order = append(p.sos1Order, name)
	}
	p.sos1[name] = set
}

// AddSOS2 registers (or overwrites) a SOS2 set under name.
func (p *Problem) AddSOS2(name string, set *SOSSet) {
	if _, exists := p.sos2[name]; !exists {
		p.sos2Order = append(p.sos2Order, name)
	}
	p.sos2[name] = set
}

// SOS1Sets returns the registered SOS1 sets in insertion order.
func (p *Problem) SOS1Sets() []*SOSSet {
	out := make([]*SOSSet, len(p.sos1Order))
	for i, n := range p.sos1Order {
		out[i] = p.sos1[n]
	}
	return out
}

// SOS2Sets returns the registered SOS2 sets in insertion order.
func (p *Problem) SOS2Sets() []*SOSSet {
	out := make([]*SOSSet, len(p.sos2Order))
	for i, n := range p.sos2Order {
		out[i] = p.sos2[n]
	}
	return out
}

// Variables returns every distinct Variable referenced by the objective or
// any constraint, in discovery order: the objective's variables first, then
// each constraint's variables in constraint-insertion order, skipping
// variables already seen.
func (p *Problem) Variables() []*Variable {
	seen := map[*Variable]bool{}
	var out []*Variable
	add := func(v *Variable) {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	if p.objective != nil {
		for _, v := range p.objective.order {
			add(v)
		}
	}
	for _, name := range p.constraintOrder {
		for _, v := range p.constraints[name].order {
			add(v)
		}
	}
	return out
}

// VariablesByName returns every distinct variable keyed by name (last
// discovered wins if two distinct Variable pointers share a name).
func (p *Problem) VariablesByName() map[string]*Variable {
	out := map[string]*Variable{}
	for _, v := range p.Variables() {
		out[v.Name()] = v
	}
	return out
}

// AssignValues sets each named variable's solution value from values,
// matching LpProblem.assign. Names with no matching variable are ignored.
func (p *Problem) AssignValues(values map[string]float64) {
	byName := p.VariablesByName()
	for name, val := range values {
		if v, ok := byName[name]; ok {
			v.SetValue(val)
		}
	}
}

// ObjectiveValue evaluates the objective expression, or returns (0, false)
// if it is unset or any referenced variable has no assigned value.
func (p *Problem) ObjectiveValue() (float64, bool) {
	if p.objective == nil {
		return 0, false
	}
	return p.objective.Value()
}

// IsMIP reports whether any variable in the problem is Integer-category.
func (p *Problem) IsMIP() bool {
	for _, v := range p.Variables() {
		if v.Category() == Integer {
			return true
		}
	}
	return false
}

// RoundSolution rounds every variable's assigned value toward its nearest
// bound/integer, per Variable.Round.
func (p *Problem) RoundSolution(epsInt, eps float64) {
	for _, v := range p.Variables() {
		v.Round(epsInt, eps)
	}
}

// Valid reports whether every variable and every constraint currently
// satisfies its bounds/sense within eps.
func (p *Problem) Valid(eps float64) bool {
	for _, v := range p.Variables() {
		if !v.Valid(0, eps) {
			return false
		}
	}
	for _, name := range p.constraintOrder {
		if !p.constraints[name].Valid(eps) {
			return false
		}
	}
	return true
}

// InfeasibilityGap returns the worst variable or constraint violation
// across the problem.
func (p *Problem) InfeasibilityGap(mip bool) float64 {
	gap := 0.0
	for _, v := range p.Variables() {
		g, err := v.InfeasibilityGap(mip)
		if err == nil {
			if a := absf(g); a > gap {
				gap = a
			}
		}
	}
	for _, name := range p.constraintOrder {
		c := p.constraints[name]
		if !c.Valid(0) {
			if val, ok := c.Value(); ok {
				if a := absf(val); a > gap {
					gap = a
				}
			}
		}
	}
	return gap
}

// Copy returns a shallow duplicate: the objective and constraints are
// shared by reference with the receiver.
func (p *Problem) Copy() *Problem {
	out := NewProblem(p.Name, p.Sense)
	out.NoOverlap = p.NoOverlap
	out.objective = p.objective
	out.constraintOrder = append([]string(nil), p.constraintOrder...)
	for k, v := range p.constraints {
		out.constraints[k] = v
	}
	out.sos1Order = append([]string(nil), p.sos1Order...)
	for k, v := range p.sos1 {
		out.sos1[k] = v
	}
	out.sos2Order = append([]string(nil), p.sos2Order...)
	for k, v := range p.sos2 {
		out.sos2[k] = v
	}
	return out
}

// DeepCopy returns a duplicate whose objective and constraints are cloned
// expressions, safe to mutate independently of the receiver. SOS sets are
// copied shallowly, matching the source's own deepcopy (which copies the
// sos1/sos2 dict but not its Constraint/AffineExpression values).
func (p *Problem) DeepCopy() *Problem {
	out := NewProblem(p.Name, p.Sense)
	out.NoOverlap = p.NoOverlap
	if p.objective != nil {
		out.objective = p.objective.Copy()
	}
	out.constraintOrder = append([]string(nil), p.constraintOrder...)
	for k, v := range p.constraints {
		out.constraints[k] = v.Copy()
	}
	out.sos1Order = append([]string(nil), p.sos1Order...)
	for k, v := range p.sos1 {
		out.sos1[k] = v
	}
	out.sos2Order = append([]string(nil), p.sos2Order...)
	for k, v := range p.sos2 {
		out.sos2[k] = v
	}
	return out
}

// NormalizedNames computes the rename maps the MPS writer's rename option
// uses: constraints become "C0000000".. in insertion order, variables
// become "X0000000".. in discovery order, and the objective row becomes
// "OBJ".
func (p *Problem) NormalizedNames() (constraints map[string]string, variables map[string]string, objName string) {
	constraints = map[string]string{}
	for i, name := range p.constraintOrder {
		constraints[name] = fmt.Sprintf("C%07d", i)
	}
	variables = map[string]string{}
	for i, v := range p.Variables() {
		variables[v.Name()] = fmt.Sprintf("X%07d", i)
	}
	return constraints, variables, "OBJ"
}

// Coefficients returns every (variableName, constraintName, coefficient)
// triple across all constraints. If translation is non-nil, variable and
// constraint names are passed through it first.
func (p *Problem) Coefficients(translation map[string]string) []Coefficient {
	var out []Coefficient
	for _, cname := range p.constraintOrder {
		rowName := cname
		if translation != nil {
			rowName = translation[cname]
		}
		c := p.constraints[cname]
		for _, v := range c.order {
			colName := v.Name()
			if translation != nil {
				colName = translation[colName]
			}
			out = append(out, Coefficient{Variable: colName, Constraint: rowName, Value: c.terms[v]})
		}
	}
	return out
}

// Coefficient is one nonzero entry of the constraint matrix.
type Coefficient struct {
	Variable   string
	Constraint string
	Value      float64
}

// String renders a human-readable dump of the problem: sense, objective,
// constraints, and variable declarations, grounded on the source's
// __repr__.
func (p *Problem) String() string {
	var b strings.Builder
	b.WriteString(p.Name)
	b.WriteString(":\n")
	b.WriteString(strings.ToUpper(p.Sense.String()))
	b.WriteString("\n")
	if p.objective != nil {
		b.WriteString(p.objective.termsString(true))
	}
	b.WriteString("\n")
	if len(p.constraintOrder) > 0 {
		b.WriteString("SUBJECT TO\n")
		for _, name := range p.constraintOrder {
			b.WriteString(name)
			b.WriteString(": ")
			b.WriteString(p.constraints[name].String())
			b.WriteString("\n")
		}
	}
	b.WriteString("VARIABLES\n")
	for _, v := range p.Variables() {
		b.WriteString(v.String())
		b.WriteString(" ")
		b.WriteString(v.Category().String())
		b.WriteString("\n")
	}
	return b.String()
}

// fixObjective ensures the problem has a non-constant AffineExpression
// objective before emission, adding a throwaway __dummy variable when the
// objective is absent or a pure constant so every output format sees at
// least one variable in the objective row. Call restoreObjective with its
// return values afterward to undo the fix-up.
func (p *Problem) fixObjective() (wasNil bool, dummy *Variable) {
	if p.objective == nil {
		p.objective = NewExpression(0)
		wasNil = true
	}
	if p.objective.IsNumericalConstant() {
		dummy = NewBoundedVariable("__dummy", 0, 0, Continuous)
		p.objective.addTerm(dummy, 1)
	}
	return wasNil, dummy
}

func (p *Problem) restoreObjective(wasNil bool, dummy *Variable) {
	if wasNil {
		p.objective = nil
		return
	}
	if dummy != nil {
		p.objective.addTerm(dummy, -1)
	}
}

// Solver drives an external or in-process solve of a Problem.
type Solver interface {
	Solve(ctx context.Context, p *Problem) error
}

// Solve brackets a Solver's Solve call with fixObjective/restoreObjective,
// matching LpProblem.solve.
func (p *Problem) Solve(ctx context.Context, solver Solver) error {
	wasNil, dummy := p.fixObjective()
	err := solver.Solve(ctx, p)
	p.restoreObjective(wasNil, dummy)
	return err
}

// sortedConstraintNames returns constraint names in ascending lexicographic
// order, the order the LP writer emits them in.
func (p *Problem) sortedConstraintNames() []string {
	out := append([]string(nil), p.constraintOrder...)
	sort.Strings(out)
	return out
}
