package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/stlvec/stlvec-go/internal/styles"
	"github.com/stlvec/stlvec-go/pkg/stlvec/list"
	"github.com/stlvec/stlvec-go/pkg/stlvec/vector"
)

// runner executes script lines against one list.
type runner[T vector.Integer] struct {
	list *list.List[T]
	bits int
}

// runScript creates a list through ops, executes every line of in against
// it, and reports the number of failed lines. Blank lines and lines starting
// with '#' are skipped.
func runScript[T vector.Integer](ops list.Ops[T], bits int, in io.Reader, out io.Writer) (int, error) {
	l, err := list.New(ops)
	if err != nil {
		return 0, fmt.Errorf("create list: %w", err)
	}
	defer l.Close()

	r := &runner[T]{list: l, bits: bits}
	failures := 0
	sc := bufio.NewScanner(in)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		result, err := r.exec(fields[0], fields[1:])
		if err != nil {
			failures++
			fmt.Fprintln(out, styles.Error(fmt.Sprintf("line %d: %s: %v", n, line, err)))
			continue
		}
		fmt.Fprintln(out, styles.Step(line, result))
	}
	if err := sc.Err(); err != nil {
		return failures, fmt.Errorf("read script: %w", err)
	}
	return failures, nil
}

func (r *runner[T]) value(s string) (T, error) {
	n, err := strconv.ParseInt(s, 10, r.bits)
	if err != nil {
		return 0, fmt.Errorf("bad value %q", s)
	}
	return T(n), nil
}

func index(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad index %q", s)
	}
	return i, nil
}

func arity(args []string, counts ...int) error {
	for _, c := range counts {
		if len(args) == c {
			return nil
		}
	}
	return fmt.Errorf("wrong number of arguments")
}

func formatValues[T vector.Integer](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (r *runner[T]) exec(cmd string, args []string) (string, error) {
	l := r.list

	switch cmd {
	case "append", "extend":
		if len(args) == 0 {
			return "", arity(args, 1)
		}
		values := make([]T, len(args))
		for i, a := range args {
			v, err := r.value(a)
			if err != nil {
				return "", err
			}
			values[i] = v
		}
		return "", l.Extend(values...)

	case "get", "delete":
		if err := arity(args, 1); err != nil {
			return "", err
		}
		i, err := index(args[0])
		if err != nil {
			return "", err
		}
		if cmd == "delete" {
			return "", l.Delete(i)
		}
		v, err := l.Get(i)
		return fmt.Sprint(v), err

	case "set", "insert":
		if err := arity(args, 2); err != nil {
			return "", err
		}
		i, err := index(args[0])
		if err != nil {
			return "", err
		}
		v, err := r.value(args[1])
		if err != nil {
			return "", err
		}
		if cmd == "set" {
			return "", l.Set(i, v)
		}
		return "", l.Insert(i, v)

	case "index", "contains", "remove", "count":
		if err := arity(args, 1); err != nil {
			return "", err
		}
		v, err := r.value(args[0])
		if err != nil {
			return "", err
		}
		switch cmd {
		case "index":
			i, err := l.Index(v)
			return strconv.Itoa(i), err
		case "contains":
			return strconv.FormatBool(l.Contains(v)), nil
		case "remove":
			return "", l.Remove(v)
		default:
			n, err := l.Count(v)
			return strconv.Itoa(n), err
		}

	case "pop":
		if err := arity(args, 0, 1); err != nil {
			return "", err
		}
		var (
			v   T
			err error
		)
		if len(args) == 0 {
			v, err = l.Pop()
		} else {
			i, ierr := index(args[0])
			if ierr != nil {
				return "", ierr
			}
			v, err = l.PopAt(i)
		}
		return fmt.Sprint(v), err

	case "slice":
		if err := arity(args, 2, 3); err != nil {
			return "", err
		}
		bounds := []int{0, 0, 1}
		for i, a := range args {
			n, err := index(a)
			if err != nil {
				return "", err
			}
			bounds[i] = n
		}
		values, err := l.Slice(bounds[0], bounds[1], bounds[2])
		return formatValues(values), err

	case "delslice":
		if err := arity(args, 2); err != nil {
			return "", err
		}
		start, err := index(args[0])
		if err != nil {
			return "", err
		}
		stop, err := index(args[1])
		if err != nil {
			return "", err
		}
		return "", l.DeleteSlice(start, stop)

	case "sort", "reverse", "len", "print":
		if err := arity(args, 0); err != nil {
			return "", err
		}
		switch cmd {
		case "sort":
			return "", l.Sort()
		case "reverse":
			return "", l.Reverse()
		case "len":
			return strconv.Itoa(l.Len()), nil
		default:
			return l.String(), nil
		}
	}
	return "", fmt.Errorf("unknown command %q", cmd)
}
