// Package replay runs textual page-table traces.
//
// A trace is a line-oriented text format. Each line is one operation:
//
//	map <vpn> <ppn>
//	unmap <vpn>
//	query <vpn> [expected]
//
// Numbers accept the usual Go prefixes (0x..., 0o..., plain decimal).
// A query's optional expected field is a PPN, or "-" for "expect no
// mapping"; mismatches are counted, not fatal. Blank lines and lines
// starting with # are skipped.
package replay

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sarchlab/pagewalk/vm"
)

// Result summarizes one replay run.
type Result struct {
	NumLines      int
	NumOps        int
	NumMismatches int
}

// Run feeds every operation in the trace to the page table rooted at
// root. It stops at the first malformed line.
func Run(trace io.Reader, table *vm.PageTable, root vm.PPN) (Result, error) {
	res := Result{}

	scanner := bufio.NewScanner(trace)
	for scanner.Scan() {
		res.NumLines++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		mismatch, err := runLine(line, table, root)
		if err != nil {
			return res, fmt.Errorf("line %d: %w", res.NumLines, err)
		}

		res.NumOps++
		if mismatch {
			res.NumMismatches++
		}
	}

	return res, scanner.Err()
}

func runLine(line string, table *vm.PageTable, root vm.PPN) (bool, error) {
	fields := strings.Fields(line)

	switch fields[0] {
	case "map":
		return false, runMap(fields, table, root)
	case "unmap":
		return false, runUnmap(fields, table, root)
	case "query":
		return runQuery(fields, table, root)
	default:
		return false, fmt.Errorf("unknown operation %q", fields[0])
	}
}

func runMap(fields []string, table *vm.PageTable, root vm.PPN) error {
	if len(fields) != 3 {
		return fmt.Errorf("map takes a VPN and a PPN")
	}

	vpn, err := parseNum(fields[1])
	if err != nil {
		return err
	}

	ppn, err := parseNum(fields[2])
	if err != nil {
		return err
	}

	if vm.PPN(ppn) == vm.NoMapping {
		return fmt.Errorf("PPN %s collides with the no-mapping value, "+
			"use unmap instead", fields[2])
	}

	table.Update(root, vm.VPN(vpn), vm.PPN(ppn))

	return nil
}

func runUnmap(fields []string, table *vm.PageTable, root vm.PPN) error {
	if len(fields) != 2 {
		return fmt.Errorf("unmap takes a VPN")
	}

	vpn, err := parseNum(fields[1])
	if err != nil {
		return err
	}

	table.Update(root, vm.VPN(vpn), vm.NoMapping)

	return nil
}

func runQuery(
	fields []string,
	table *vm.PageTable,
	root vm.PPN,
) (bool, error) {
	if len(fields) != 2 && len(fields) != 3 {
		return false, fmt.Errorf("query takes a VPN and an optional expectation")
	}

	vpn, err := parseNum(fields[1])
	if err != nil {
		return false, err
	}

	ppn := table.Query(root, vm.VPN(vpn))

	if len(fields) == 2 {
		return false, nil
	}

	expected := vm.NoMapping
	if fields[2] != "-" {
		num, err := parseNum(fields[2])
		if err != nil {
			return false, err
		}
		expected = vm.PPN(num)
	}

	return ppn != expected, nil
}

func parseNum(field string) (uint64, error) {
	num, err := strconv.ParseUint(field, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", field)
	}

	return num, nil
}
