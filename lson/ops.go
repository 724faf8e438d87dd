/*
File    : libretto/lson/ops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package lson

import "fmt"

// ErrDivideByZero is returned by Div when the denominator is zero, per
// spec §7's DivideByZero runtime error.
var ErrDivideByZero = fmt.Errorf("divide by zero")

// ErrTypeMismatch is returned by any operator applied to a runtime value
// combination the type checker should have already rejected. The evaluator
// is defensive (§4.5): it should never observe this in a well-typed AST.
type ErrTypeMismatch struct {
	Op       string
	Lhs, Rhs Type
}

func (e *ErrTypeMismatch) Error() string {
	return fmt.Sprintf("type mismatch: %s %s %s", e.Lhs, e.Op, e.Rhs)
}

func asFloat(v Value) (float64, bool) {
	switch v := v.(type) {
	case Int:
		return float64(v), true
	case Float:
		return float64(v), true
	default:
		return 0, false
	}
}

// Add implements the runtime `+` operator: Int+Int stays Int, any operand
// pair containing Float promotes to Float, any pair containing String
// concatenates via each operand's String() (the open question on stringify
// commutativity noted in §9 is resolved as: always stringify via
// fmt-equivalent String(), regardless of which side is the String operand).
func Add(a, b Value) (Value, error) {
	if ai, ok := a.(Int); ok {
		if bi, ok := b.(Int); ok {
			return ai + bi, nil
		}
	}
	if _, ok := a.(String); ok {
		return String(a.String() + b.String()), nil
	}
	if _, ok := b.(String); ok {
		return String(a.String() + b.String()), nil
	}
	if af, ok := asFloat(a); ok {
		if bf, ok := asFloat(b); ok {
			return Float(af + bf), nil
		}
	}
	return nil, &ErrTypeMismatch{"+", a.Type(), b.Type()}
}

// Sub implements the runtime `-` operator.
func Sub(a, b Value) (Value, error) {
	if ai, ok := a.(Int); ok {
		if bi, ok := b.(Int); ok {
			return ai - bi, nil
		}
	}
	if af, ok := asFloat(a); ok {
		if bf, ok := asFloat(b); ok {
			return Float(af - bf), nil
		}
	}
	return nil, &ErrTypeMismatch{"-", a.Type(), b.Type()}
}

// Mul implements the runtime `*` operator.
func Mul(a, b Value) (Value, error) {
	if ai, ok := a.(Int); ok {
		if bi, ok := b.(Int); ok {
			return ai * bi, nil
		}
	}
	if af, ok := asFloat(a); ok {
		if bf, ok := asFloat(b); ok {
			return Float(af * bf), nil
		}
	}
	return nil, &ErrTypeMismatch{"*", a.Type(), b.Type()}
}

// Div implements the runtime `/` operator. Int/Int truncates toward zero;
// any pair involving Float is floating division. Division by zero is a
// runtime error, never a compile error (§7).
func Div(a, b Value) (Value, error) {
	if ai, ok := a.(Int); ok {
		if bi, ok := b.(Int); ok {
			if bi == 0 {
				return nil, ErrDivideByZero
			}
			return ai / bi, nil
		}
	}
	if af, ok := asFloat(a); ok {
		if bf, ok := asFloat(b); ok {
			if bf == 0 {
				return nil, ErrDivideByZero
			}
			return Float(af / bf), nil
		}
	}
	return nil, &ErrTypeMismatch{"/", a.Type(), b.Type()}
}

// Compare implements <, >, <=, >= via a three-way ordering of numeric
// operands; the evaluator maps the result to the requested operator.
func Compare(a, b Value) (int, error) {
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if !aok || !bok {
		return 0, &ErrTypeMismatch{"compare", a.Type(), b.Type()}
	}
	switch {
	case af < bf:
		return -1, nil
	case af > bf:
		return 1, nil
	default:
		return 0, nil
	}
}

// Equal implements == between matching tags plus the Int/Float cross pair.
// Function values are never equal to anything, including themselves (§9's
// Open Question (c)): neither structural nor reference equality is applied.
func Equal(a, b Value) (bool, error) {
	if _, ok := a.(Function); ok {
		return false, nil
	}
	if _, ok := b.(Function); ok {
		return false, nil
	}
	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			return af == bf, nil
		}
	}
	if a.Type() != b.Type() {
		return false, &ErrTypeMismatch{"==", a.Type(), b.Type()}
	}
	switch av := a.(type) {
	case None:
		return true, nil
	case Bool:
		return av == b.(Bool), nil
	case String:
		return av == b.(String), nil
	case Array:
		bv := b.(Array)
		if len(av) != len(bv) {
			return false, nil
		}
		for i := range av {
			eq, err := Equal(av[i], bv[i])
			if err != nil || !eq {
				return eq, err
			}
		}
		return true, nil
	case Struct:
		bv := b.(Struct)
		if len(av) != len(bv) {
			return false, nil
		}
		for k, v1 := range av {
			v2, ok := bv[k]
			if !ok {
				return false, nil
			}
			eq, err := Equal(v1, v2)
			if err != nil || !eq {
				return eq, err
			}
		}
		return true, nil
	default:
		return false, &ErrTypeMismatch{"==", a.Type(), b.Type()}
	}
}

// Negate implements unary `-`, defined only on Int/Float.
func Negate(v Value) (Value, error) {
	switch v := v.(type) {
	case Int:
		return -v, nil
	case Float:
		return -v, nil
	default:
		return nil, &ErrTypeMismatch{"unary -", v.Type(), NoneType}
	}
}

// Not implements unary `!`, defined only on Bool.
func Not(v Value) (Value, error) {
	if b, ok := v.(Bool); ok {
		return !b, nil
	}
	return nil, &ErrTypeMismatch{"unary !", v.Type(), NoneType}
}

// Index implements Array[Int] and Struct[String] indexing. Per §3, any other
// combination (wrong key type, or out-of-range/missing key) yields None
// rather than an error, at both static and dynamic level.
func Index(container, key Value) Value {
	switch c := container.(type) {
	case Array:
		idx, ok := key.(Int)
		if !ok || idx < 0 || int(idx) >= len(c) {
			return None{}
		}
		return c[idx]
	case Struct:
		k, ok := key.(String)
		if !ok {
			return None{}
		}
		v, ok := c[string(k)]
		if !ok {
			return None{}
		}
		return v
	default:
		return None{}
	}
}
