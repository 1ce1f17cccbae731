package pulpgo

import (
	"fmt"
	"io"
	"math"
)

var mpsConstraintType = map[Sense]string{
	SenseLE: "L",
	SenseEQ: "E",
	SenseGE: "G",
}

// WriteMPS renders the problem in fixed-column MPS format. mpsSense
// overrides the emission sense (0 means "use the problem's own sense"); if
// it differs from the problem's native sense, the objective row is negated
// before writing. When rename is true, rows and columns are renamed via
// NormalizedNames and the rename maps are returned alongside the variable
// order.
func (p *Problem) WriteMPS(w io.Writer, mpsSense ObjectiveSense, rename bool, mip bool) (vars []*Variable, varNames map[string]string, rowNames map[string]string, objName string, err error) {
	wasNil, dummy := p.fixObjective()
	defer p.restoreObjective(wasNil, dummy)

	if mpsSense == 0 {
		mpsSense = p.Sense
	}
	cobj := p.objective
	objRowName := cobj.Name()
	if mpsSense != p.Sense {
		negated := cobj.Neg()
		negated.SetName(objRowName)
		cobj = negated
	}

	if rename {
		rowNames, varNames, objRowName = p.NormalizedNames()
	}
	if objRowName == "" {
		objRowName = "OBJ"
	}

	fmt.Fprintf(w, "*SENSE:%s\n", senseWord(mpsSense))
	name := p.Name
	if rename {
		name = "MODEL"
	}
	fmt.Fprintf(w, "NAME          %s\n", name)

	vs := p.Variables()

	fmt.Fprint(w, "ROWS\n")
	fmt.Fprintf(w, " N  %s\n", objRowName)
	for _, cname := range p.constraintOrder {
		row := cname
		if rename {
			row = rowNames[cname]
		}
		fmt.Fprintf(w, " %s  %s\n", mpsConstraintType[p.constraints[cname].sense], row)
	}

	fmt.Fprint(w, "COLUMNS\n")
	type rowCoef struct {
		row string
		val float64
	}
	coefs := map[string][]rowCoef{}
	for _, cname := range p.constraintOrder {
		row := cname
		if rename {
			row = rowNames[cname]
		}
		c := p.constraints[cname]
		for _, v := range c.order {
			col := v.Name()
			if rename {
				col = varNames[col]
			}
			coefs[col] = append(coefs[col], rowCoef{row: row, val: c.terms[v]})
		}
	}
	for _, v := range vs {
		col := v.Name()
		if rename {
			col = varNames[col]
		}
		if mip && v.Category() == Integer {
			fmt.Fprint(w, "    MARK      'MARKER'                 'INTORG'\n")
		}
		for _, rc := range coefs[col] {
			fmt.Fprintf(w, "    %-8s  %-8s  %s\n", col, rc.row, formatE5(rc.val))
		}
		if coef, has := cobj.terms[v]; has {
			fmt.Fprintf(w, "    %-8s  %-8s  %s\n", col, objRowName, formatE5(coef))
		}
		if mip && v.Category() == Integer {
			fmt.Fprint(w, "    MARK      'MARKER'                 'INTEND'\n")
		}
	}

	fmt.Fprint(w, "RHS\n")
	for _, cname := range p.constraintOrder {
		row := cname
		if rename {
			row = rowNames[cname]
		}
		rhs := -p.constraints[cname].constant
		if rhs == 0 {
			rhs = 0 // suppress -0
		}
		fmt.Fprintf(w, "    RHS       %-8s  %s\n", row, formatE5(rhs))
	}

	fmt.Fprint(w, "BOUNDS\n")
	for _, v := range vs {
		col := v.Name()
		if rename {
			col = varNames[col]
		}
		lo, up := v.GetBounds()
		hasLo := !math.IsInf(lo, -1)
		hasUp := !math.IsInf(up, 1)
		switch {
		case hasLo && hasUp && lo == up:
			fmt.Fprintf(w, " FX BND       %-8s  %s\n", col, formatE5(lo))
		case lo == 0 && up == 1 && mip && v.Category() == Integer:
			fmt.Fprintf(w, " BV BND       %-8s\n", col)
		default:
			if hasLo {
				if lo != 0 || (mip && v.Category() == Integer && !hasUp) {
					fmt.Fprintf(w, " LO BND       %-8s  %s\n", col, formatE5(lo))
				}
			} else {
				if hasUp {
					fmt.Fprintf(w, " MI BND       %-8s\n", col)
				} else {
					fmt.Fprintf(w, " FR BND       %-8s\n", col)
				}
			}
			if hasUp {
				fmt.Fprintf(w, " UP BND       %-8s  %s\n", col, formatE5(up))
			}
		}
	}
	fmt.Fprint(w, "ENDATA\n")

	return vs, varNames, rowNames, objRowName, nil
}

func senseWord(s ObjectiveSense) string {
	if s == Maximize {
		return "Maximize"
	}
	return "Minimize"
}
