package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/wnzid/SQLparser/pkg/ast"
	"github.com/wnzid/SQLparser/pkg/config"
	"github.com/wnzid/SQLparser/pkg/parser"
)

// runShell reads statements from 'in' until the input ends or an empty
// line is entered with no statement pending. Lines are accumulated until
// one ends with ";", then the statement is parsed and its tree or the
// error is printed. An error never ends the shell; the next statement
// starts fresh.
func runShell(in io.Reader, out, errOut io.Writer) error {
	sc := config.Shell()

	fmt.Fprintln(out, "Simple SQL parser shell.")
	fmt.Fprintln(out, `Enter SQL statements ending with ";". An empty line exits.`)
	fmt.Fprintln(out)

	lines := bufio.NewScanner(in)
	prompt := sc.Prompt
	var buf strings.Builder

	for {
		fmt.Fprint(out, prompt)
		if !lines.Scan() {
			break
		}
		line := lines.Text()

		if strings.TrimSpace(line) == "" && buf.Len() == 0 {
			break
		}

		buf.WriteString(line)
		buf.WriteByte('\n')

		if !strings.HasSuffix(strings.TrimRight(buf.String(), " \t\r\n"), ";") {
			prompt = sc.ContinuationPrompt
			continue
		}

		if stmt, err := parser.Parse(buf.String()); err != nil {
			fmt.Fprintln(errOut, "Error:", err)
		} else {
			fmt.Fprintln(out, ast.Dump(stmt))
		}
		buf.Reset()
		prompt = sc.Prompt
	}

	fmt.Fprintln(out, "Goodbye!")
	return lines.Err()
}
