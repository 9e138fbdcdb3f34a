package memhost

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/toejough/modblock"
)

// Module is a successfully loaded module record.
type Module struct {
	Name    string
	Exports map[string]string
}

// loadUnit evaluates a module body. The format is line-oriented:
//
//	-- comment
//	module <canonical name>
//	init
//	export <key> = <value>
//	return <expr>
//
// The terminal return decides the outcome: false, nil, or a missing return
// are falsy and fail the load; anything else (conventionally "self")
// succeeds. The init directive is a no-op, present so bodies that declare
// one evaluate cleanly even when nothing reads their exports.
func loadUnit(u modblock.Unit) (*Module, error) {
	body, err := u.Open()
	if err != nil {
		return nil, fmt.Errorf("opening unit for %q: %w", u.Name(), err)
	}
	defer body.Close()

	mod := &Module{Name: u.Name(), Exports: make(map[string]string)}
	terminal := ""

	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "" || strings.HasPrefix(line, "--"):
			// blank or comment
		case strings.HasPrefix(line, "module "):
			mod.Name = strings.TrimSpace(strings.TrimPrefix(line, "module "))
		case line == "init":
			// no-op initializer
		case strings.HasPrefix(line, "export "):
			key, value, ok := strings.Cut(strings.TrimPrefix(line, "export "), "=")
			if !ok {
				return nil, fmt.Errorf("%w: malformed export %q in %s", ErrLoadFailed, line, u.Name())
			}

			mod.Exports[strings.TrimSpace(key)] = strings.TrimSpace(value)
		case line == "return" || strings.HasPrefix(line, "return "):
			terminal = strings.TrimSpace(strings.TrimPrefix(line, "return"))
		default:
			return nil, fmt.Errorf("%w: unrecognized statement %q in %s", ErrLoadFailed, line, u.Name())
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading unit for %q: %w", u.Name(), err)
	}

	if falsy(terminal) {
		return nil, fmt.Errorf("%w: %s evaluated falsy", ErrLoadFailed, mod.Name)
	}

	return mod, nil
}

// falsy reports whether a terminal expression fails the load.
func falsy(expr string) bool {
	return expr == "" || expr == "false" || expr == "nil"
}
