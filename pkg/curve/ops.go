package curve

import (
	"fmt"
	"math/big"
)

// Op names one operation of the core. The set is closed: Call rejects
// any other name with ErrUnknownOp.
type Op string

const (
	OpIsOnCurve          Op = "isOnCurve"
	OpIsOnCurveSecp256k1 Op = "isOnCurveSecp256k1"
	OpZeroPoint          Op = "ZERO_POINT"
	OpBasePoint          Op = "G_POINT"
	OpOrder              Op = "OrderOfSecp256k1Curve"
	OpYParity            Op = "yParity"
	OpIsZeroPoint        Op = "isZeroPoint"
	OpToAddress          Op = "toAddress"
	OpToJacobian         Op = "toJacobian"
	OpToAffine           Op = "toAffine"
	OpAddAffinePoint     Op = "addAffinePoint"
)

// Ops lists every defined operation, in the order of the interface
// table.
var Ops = []Op{
	OpIsOnCurve,
	OpIsOnCurveSecp256k1,
	OpZeroPoint,
	OpBasePoint,
	OpOrder,
	OpYParity,
	OpIsZeroPoint,
	OpToAddress,
	OpToJacobian,
	OpToAffine,
	OpAddAffinePoint,
}

// arity maps each operation to the number of big.Int arguments it
// takes. Point arguments are passed flattened: a Jacobian operand
// contributes three integers, an affine operand two.
var arity = map[Op]int{
	OpIsOnCurve:          5,
	OpIsOnCurveSecp256k1: 2,
	OpZeroPoint:          0,
	OpBasePoint:          0,
	OpOrder:              0,
	OpYParity:            2,
	OpIsZeroPoint:        2,
	OpToAddress:          2,
	OpToJacobian:         2,
	OpToAffine:           3,
	OpAddAffinePoint:     5,
}

// Call dispatches op over the closed operation set and returns its
// result: bool for the predicates, uint for yParity, *big.Int for the
// order, AffinePoint / JacobianPoint for the point operations, and a
// [20]byte identifier for toAddress.
//
// An op outside the set is rejected with ErrUnknownOp; a known op with
// the wrong argument count is rejected with ErrArgCount. In both cases
// no result is produced.
func Call(op Op, args ...*big.Int) (interface{}, error) {
	want, known := arity[op]
	if !known {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, string(op))
	}
	if len(args) != want {
		return nil, fmt.Errorf("%w: %s takes %d arguments, got %d", ErrArgCount, op, want, len(args))
	}

	switch op {
	case OpIsOnCurve:
		return IsOnCurve(args[0], args[1], args[2], args[3], args[4]), nil
	case OpIsOnCurveSecp256k1:
		return IsOnCurveSecp256k1(args[0], args[1]), nil
	case OpZeroPoint:
		return ZeroPoint(), nil
	case OpBasePoint:
		return BasePoint(), nil
	case OpOrder:
		return Order(), nil
	case OpYParity:
		return YParity(args[0], args[1]), nil
	case OpIsZeroPoint:
		return IsZeroPoint(args[0], args[1]), nil
	case OpToAddress:
		return Address(args[0], args[1]), nil
	case OpToJacobian:
		return ToJacobian(args[0], args[1]), nil
	case OpToAffine:
		return ToAffine(args[0], args[1], args[2]), nil
	case OpAddAffinePoint:
		j := JacobianPoint{X: args[0], Y: args[1], Z: args[2]}
		a := AffinePoint{X: args[3], Y: args[4]}
		return AddAffinePoint(j, a), nil
	default:
		// Unreachable: the arity lookup above already screens unknown
		// ops. Kept so the switch has no silent fallthrough.
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, string(op))
	}
}
