/*
Copyright © 2015-2022 Leo Antunes <leo@costela.net>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

/*

Package pulpgo is a library for modeling linear and mixed-integer
programming problems and solving them with an external command-line
solver.

As an example of the API, the model of the following problem:

    Minimize:
      x + 4y + 9z
    With:
      0 <= x <= 4
      -1 <= y <= 1
      z >= 0
    Subject to:
      x + y <= 5
      x + z >= 10
      -y + z = 7

can be expressed with pulpgo like this:

	package main

	import (
		"context"
		"fmt"

		"github.com/bbrannon/pulpgo"
	)

	func main() {
		prob := pulpgo.NewProblem("example", pulpgo.Minimize)

		x := pulpgo.NewVariable("x").Bounds(0, 4)
		y := pulpgo.NewVariable("y").Bounds(-1, 1)
		z := pulpgo.NewVariable("z").Positive()

		obj, _ := pulpgo.LPSum(x, pulpgo.Coef(4, y), pulpgo.Coef(9, z))
		prob.SetObjective(obj, "")

		c1, _ := x.Add(y)
		lhs1, _ := c1.LE(5.0)
		prob.AddConstraint(lhs1, "")

		c2, _ := x.Add(z)
		lhs2, _ := c2.GE(10.0)
		prob.AddConstraint(lhs2, "")

		c3, _ := y.Neg().Add(z)
		lhs3, _ := c3.EQ(7.0)
		prob.AddConstraint(lhs3, "")

		solver := pulpgo.NewSolverGLPK()
		if err := prob.Solve(context.Background(), solver); err != nil {
			panic(err)
		}

		fmt.Println("status:", prob.Status)
		xv, _ := x.Value()
		fmt.Println("x =", xv)
	}

*/
package pulpgo
