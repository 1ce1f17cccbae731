package pulpgo

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// parseCBCSolution reads a CBC "solution <file>" dump: one line per
// variable, "<index> <name> <value> ...". No status is encoded in the
// file, so CBC solves are always reported Undefined. Grounded on
// COIN_CMD.readsol_CBC.
func parseCBCSolution(r io.Reader, vars []*Variable) (Status, map[string]float64, error) {
	values := map[string]float64{}
	for _, v := range vars {
		values[v.Name()] = 0
	}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 3 {
			continue
		}
		value, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			continue
		}
		values[fields[1]] = value
	}
	return Undefined, values, nil
}

// parseCLPSolution reads a CLP "solution <file>" dump: one line per
// variable, "<index> <name> <value> ...", with lines beginning "**"
// marking an infeasible row. reverseNames maps the renamed MPS column back
// to the original variable name. Grounded on COIN_CMD.readsol_CLP.
func parseCLPSolution(r io.Reader, vars []*Variable, reverseNames map[string]string) (Status, map[string]float64, error) {
	values := map[string]float64{}
	for _, v := range vars {
		values[v.Name()] = 0
	}
	status := Optimal
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if len(line) <= 2 {
			break
		}
		if strings.HasPrefix(line, "**") {
			status = Infeasible
			line = line[2:]
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		colName := fields[1]
		name := colName
		if reverseNames != nil {
			if orig, ok := reverseNames[colName]; ok {
				name = orig
			}
		}
		value, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			continue
		}
		values[name] = value
	}
	return status, values, nil
}
