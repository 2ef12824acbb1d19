package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lookbusy1344/rv32i-emu/parser"
	"github.com/lookbusy1344/rv32i-emu/vm"
)

// ExpressionEvaluator resolves the small expression language accepted by the
// print/set/breakpoint-condition commands: register names, symbol names,
// numeric literals, a leading '*' for a memory dereference, and a single
// comparison operator for breakpoint conditions.
type ExpressionEvaluator struct {
	valueCounter int
}

// NewExpressionEvaluator creates a new evaluator.
func NewExpressionEvaluator() *ExpressionEvaluator {
	return &ExpressionEvaluator{}
}

// GetValueNumber returns an incrementing ID, used to label print results ($1, $2, ...).
func (ev *ExpressionEvaluator) GetValueNumber() int {
	ev.valueCounter++
	return ev.valueCounter
}

// EvaluateExpression resolves expr to a 32-bit value.
func (ev *ExpressionEvaluator) EvaluateExpression(expr string, machine *vm.VM, symbols map[string]uint32) (uint32, error) {
	expr = strings.TrimSpace(expr)
	if strings.HasPrefix(expr, "*") {
		addr, err := ev.resolveOperand(expr[1:], machine, symbols)
		if err != nil {
			return 0, err
		}
		return machine.Memory.ReadWord(addr)
	}
	return ev.resolveOperand(expr, machine, symbols)
}

// Evaluate resolves a breakpoint condition to a boolean. Conditions are
// either a bare operand (true if nonzero) or "lhs OP rhs" with OP one of
// == != < > <= >=.
func (ev *ExpressionEvaluator) Evaluate(expr string, machine *vm.VM, symbols map[string]uint32) (bool, error) {
	expr = strings.TrimSpace(expr)
	for _, op := range []string{"==", "!=", "<=", ">=", "<", ">"} {
		if idx := strings.Index(expr, op); idx >= 0 {
			lhs, err := ev.EvaluateExpression(expr[:idx], machine, symbols)
			if err != nil {
				return false, err
			}
			rhs, err := ev.EvaluateExpression(expr[idx+len(op):], machine, symbols)
			if err != nil {
				return false, err
			}
			return compare(lhs, rhs, op), nil
		}
	}

	value, err := ev.EvaluateExpression(expr, machine, symbols)
	if err != nil {
		return false, err
	}
	return value != 0, nil
}

func compare(lhs, rhs uint32, op string) bool {
	switch op {
	case "==":
		return lhs == rhs
	case "!=":
		return lhs != rhs
	case "<":
		return lhs < rhs
	case ">":
		return lhs > rhs
	case "<=":
		return lhs <= rhs
	case ">=":
		return lhs >= rhs
	}
	return false
}

func (ev *ExpressionEvaluator) resolveOperand(text string, machine *vm.VM, symbols map[string]uint32) (uint32, error) {
	text = strings.TrimSpace(text)

	if text == "pc" {
		return machine.CPU.PC, nil
	}
	if idx, ok := parser.RegisterIndex(text); ok {
		return machine.CPU.GetRegister(idx), nil
	}
	if addr, ok := symbols[text]; ok {
		return addr, nil
	}
	if value, ok := parseNumericOperand(text); ok {
		return value, nil
	}
	return 0, fmt.Errorf("cannot evaluate %q", text)
}

func parseNumericOperand(text string) (uint32, bool) {
	if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X") {
		v, err := strconv.ParseUint(text[2:], 16, 32)
		if err != nil {
			return 0, false
		}
		return uint32(v), true
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}
