package pulpgo

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

var xpressStatusTable = map[string]Status{
	"Optimal": Optimal,
}

// parseXPRESSSolution reads a WRITEPRTSOL report: a fixed preamble, a
// status word, then a table of "C" (column) rows. Grounded on
// XPRESS.readsol.
func parseXPRESSSolution(r io.Reader) (Status, map[string]float64, error) {
	sc := bufio.NewScanner(r)
	for i := 0; i < 6; i++ {
		sc.Scan()
	}
	sc.Scan() // row/column count summary line, unused here
	for i := 0; i < 3; i++ {
		sc.Scan()
	}
	if !sc.Scan() {
		return 0, nil, wrapErr(ErrIO, "missing XPRESS status line")
	}
	fields := strings.Fields(sc.Text())
	if len(fields) == 0 {
		return 0, nil, wrapErr(ErrValue, "malformed XPRESS status line")
	}
	status, ok := xpressStatusTable[fields[0]]
	if !ok {
		return 0, nil, wrapErrf(ErrValue, "unknown status returned by XPRESS: %s", fields[0])
	}

	values := map[string]float64{}
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			break
		}
		fields := strings.Fields(line)
		if len(fields) > 0 && fields[0] == "C" {
			if len(fields) < 5 {
				continue
			}
			value, err := strconv.ParseFloat(fields[4], 64)
			if err != nil {
				continue
			}
			values[fields[2]] = value
		}
	}
	return status, values, nil
}
