package pulpgo

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
)

const lpLineSize = 78

// lineAccumulator wraps a growing output line, flushing to a strings.Builder
// whenever appending the next token would overflow lpLineSize, mirroring the
// sl/s accumulator pattern of asCplexLpAffineExpression/asCplexLpConstraint.
type lineAccumulator struct {
	out strings.Builder
	sl  string
}

func newLineAccumulator(prefix string) *lineAccumulator {
	return &lineAccumulator{sl: prefix}
}

func (a *lineAccumulator) append(tok string) {
	if len(a.sl)+len(tok) > lpLineSize {
		a.out.WriteString(a.sl)
		a.out.WriteString("\n")
		a.sl = tok
	} else {
		a.sl += tok
	}
}

func (a *lineAccumulator) finish() string {
	a.out.WriteString(a.sl)
	a.out.WriteString("\n")
	return a.out.String()
}

// writeCplexExpression renders an objective/constraint's terms in the
// sl/ns accumulator style; when includeConstant is true a trailing signed
// constant term is appended (suppressed for a pure-zero empty expression,
// which instead writes its bare constant).
func writeCplexExpression(rowName string, e *AffineExpression, includeConstant bool) string {
	acc := newLineAccumulator(rowName + ":")
	notFirst := false
	for _, v := range e.order {
		val := e.terms[v]
		var ns string
		if val < 0 {
			ns = " - "
			val = -val
		} else if notFirst {
			ns = " + "
		} else {
			ns = " "
		}
		notFirst = true
		if val == 1 {
			ns += v.Name()
		} else {
			ns += fmt.Sprintf("%s %s", formatG12(val), v.Name())
		}
		acc.append(ns)
	}
	var tail string
	if e.Len() == 0 {
		tail = " " + formatG12(e.constant)
	} else if includeConstant {
		switch {
		case e.constant < 0:
			tail = " - " + formatG12(-e.constant)
		case e.constant > 0:
			tail = " + " + formatG12(e.constant)
		}
	}
	acc.append(tail)
	return acc.finish()
}

// writeCplexConstraint renders a constraint row, always including its
// right-hand side (the negated constant) with the sense operator.
func writeCplexConstraint(rowName string, c *Constraint) string {
	acc := newLineAccumulator(rowName + ":")
	notFirst := false
	for _, v := range c.order {
		val := c.terms[v]
		var ns string
		if val < 0 {
			ns = " - "
			val = -val
		} else if notFirst {
			ns = " + "
		} else {
			ns = " "
		}
		notFirst = true
		if val == 1 {
			ns += v.Name()
		} else {
			ns += fmt.Sprintf("%s %s", formatG12(val), v.Name())
		}
		acc.append(ns)
	}
	if c.Len() == 0 {
		acc.append("0")
	}
	rhs := -c.constant
	if rhs == 0 {
		rhs = 0 // suppress -0
	}
	acc.append(fmt.Sprintf(" %s %s", c.sense, formatG12(rhs)))
	return acc.finish()
}

// WriteLP renders the problem in CPLEX LP format and returns the discovery
// order of its variables, matching LpProblem.writeLP's return value.
func (p *Problem) WriteLP(w io.Writer, writeSOS bool, mip bool) ([]*Variable, error) {
	wasNil, dummy := p.fixObjective()
	defer p.restoreObjective(wasNil, dummy)

	if _, err := fmt.Fprintf(w, "\\* %s *\\\n", p.Name); err != nil {
		return nil, wrapErr(ErrIO, "writing LP header")
	}
	if p.Sense == Minimize {
		fmt.Fprint(w, "Minimize\n")
	} else {
		fmt.Fprint(w, "Maximize\n")
	}

	objName := p.objective.Name()
	if objName == "" {
		objName = "OBJ"
	}
	fmt.Fprint(w, writeCplexExpression(objName, p.objective, true))

	fmt.Fprint(w, "Subject To\n")
	for _, name := range p.sortedConstraintNames() {
		fmt.Fprint(w, writeCplexConstraint(name, p.constraints[name]))
	}

	vs := p.Variables()
	sortedVs := append([]*Variable(nil), vs...)
	sort.Slice(sortedVs, func(i, j int) bool { return sortedVs[i].Name() < sortedVs[j].Name() })

	var bounded []*Variable
	for _, v := range sortedVs {
		if mip {
			if !(v.IsPositive() && v.Category() == Continuous) && !v.IsBinary() {
				bounded = append(bounded, v)
			}
		} else if !v.IsPositive() {
			bounded = append(bounded, v)
		}
	}
	if len(bounded) > 0 {
		fmt.Fprint(w, "Bounds\n")
		for _, v := range bounded {
			fmt.Fprintln(w, lpVariableBoundLine(v))
		}
	}

	if mip {
		var generals []*Variable
		for _, v := range sortedVs {
			if v.Category() == Integer && !v.IsBinary() {
				generals = append(generals, v)
			}
		}
		if len(generals) > 0 {
			fmt.Fprint(w, "Generals\n")
			for _, v := range generals {
				fmt.Fprintln(w, v.Name())
			}
		}
		var binaries []*Variable
		for _, v := range sortedVs {
			if v.IsBinary() {
				binaries = append(binaries, v)
			}
		}
		if len(binaries) > 0 {
			fmt.Fprint(w, "Binaries\n")
			for _, v := range binaries {
				fmt.Fprintln(w, v.Name())
			}
		}
	}

	if writeSOS && (len(p.sos1Order) > 0 || len(p.sos2Order) > 0) {
		fmt.Fprint(w, "SOS\n")
		for _, name := range p.sos1Order {
			writeSOSBlock(w, "S1", p.sos1[name])
		}
		for _, name := range p.sos2Order {
			writeSOSBlock(w, "S2", p.sos2[name])
		}
	}

	fmt.Fprint(w, "End\n")
	return vs, nil
}

func writeSOSBlock(w io.Writer, tag string, set *SOSSet) {
	fmt.Fprintf(w, "%s:: \n", tag)
	for _, v := range set.Members() {
		fmt.Fprintf(w, " %s: %s\n", v.Name(), formatG12(set.Weight(v)))
	}
}

// lpVariableBoundLine renders a variable's Bounds-section declaration,
// matching asCplexLpVariable: only a genuinely unset lower bound renders as
// "-inf <=".
func lpVariableBoundLine(v *Variable) string {
	lo, up := v.GetBounds()
	if v.IsFree() {
		return v.Name() + " free"
	}
	if v.IsConstant() {
		return fmt.Sprintf("%s = %s", v.Name(), formatG12(lo))
	}
	var s string
	switch {
	case math.IsInf(lo, -1):
		s = "-inf <= "
	case lo == 0 && v.Category() == Continuous:
		s = ""
	default:
		s = formatG12(lo) + " <= "
	}
	s += v.Name()
	if !math.IsInf(up, 1) {
		s += " <= " + formatG12(up)
	}
	return s
}
