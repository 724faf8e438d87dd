/*
File    : libretto/lson/algebra.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package lson

// The four total type-level operations from spec §4.4. Each returns
// NoneType for any pair outside its defined set; the validator treats that
// as "no static type", and records a compile error naming the operator and
// the two offending types.

// Sum is defined for Int⊕Int, any pair containing Float (with Int promoted),
// and any pair containing String (producing String concatenation).
func Sum(a, b Type) Type {
	switch {
	case a == IntType && b == IntType:
		return IntType
	case a == StringType || b == StringType:
		return StringType
	case isNumeric(a) && isNumeric(b):
		return FloatType
	default:
		return NoneType
	}
}

// Difference is defined for Int⊕Int and any pair containing Float.
func Difference(a, b Type) Type { return numericOnly(a, b) }

// Product is defined for Int⊕Int and any pair containing Float.
func Product(a, b Type) Type { return numericOnly(a, b) }

// Quotient is defined for Int⊕Int and any pair containing Float.
func Quotient(a, b Type) Type { return numericOnly(a, b) }

func numericOnly(a, b Type) Type {
	switch {
	case a == IntType && b == IntType:
		return IntType
	case isNumeric(a) && isNumeric(b):
		return FloatType
	default:
		return NoneType
	}
}

// Comparison (<, >, <=, >=) is defined for Int⊕Int, Int⊕Float, Float⊕Float —
// spec §4.4's explicit table, which this implementation follows over the
// narrower original_source snippet (see DESIGN.md, lson entry).
func Comparison(a, b Type) Type {
	if isNumeric(a) && isNumeric(b) {
		return BoolType
	}
	return NoneType
}

// Equality (==, !=) is defined between matching tags plus the Int/Float
// cross pair.
func Equality(a, b Type) Type {
	if a == b {
		return BoolType
	}
	if isNumeric(a) && isNumeric(b) {
		return BoolType
	}
	return NoneType
}

func isNumeric(t Type) bool { return t == IntType || t == FloatType }
