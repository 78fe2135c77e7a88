//go:build js && wasm

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"syscall/js"

	"github.com/smallyu/go-secp256k1-arith/pkg/curve"
)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("go-secp256k1-arith WASM initialized")

	// Expose the dispatcher to JS. Arguments and results travel as
	// big-endian hex strings so JS callers never touch Go big.Ints.
	js.Global().Set("Secp256k1Arith", map[string]interface{}{
		"Call": js.FuncOf(Call),
		"Ops":  js.FuncOf(ListOps),
	})

	<-c
}

// Call invokes one operation of the closed set.
// Arguments:
// 0: operation name (string)
// 1..n: big-endian hex coordinates, one per operation argument
// Returns a JSON string of the result, or an "error: ..." string.
func Call(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return "error: expected at least 1 argument (op)"
	}

	op := curve.Op(args[0].String())

	nums := make([]*big.Int, 0, len(args)-1)
	for i, arg := range args[1:] {
		n, ok := new(big.Int).SetString(arg.String(), 16)
		if !ok {
			return fmt.Sprintf("error: argument %d is not valid hex: %q", i, arg.String())
		}
		nums = append(nums, n)
	}

	res, err := curve.Call(op, nums...)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	out, err := json.Marshal(encodeResult(res))
	if err != nil {
		return fmt.Sprintf("error: failed to encode result: %v", err)
	}
	return string(out)
}

// ListOps returns the defined operation names as a JSON array.
func ListOps(this js.Value, args []js.Value) interface{} {
	names := make([]string, len(curve.Ops))
	for i, op := range curve.Ops {
		names[i] = string(op)
	}
	out, err := json.Marshal(names)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(out)
}

// encodeResult maps a dispatcher result to JSON-friendly values:
// points become objects of hex coordinate strings, integers hex
// strings, booleans and parities pass through.
func encodeResult(res interface{}) interface{} {
	switch v := res.(type) {
	case bool:
		return v
	case uint:
		return v
	case *big.Int:
		return v.Text(16)
	case curve.AffinePoint:
		return map[string]string{
			"x": v.X.Text(16),
			"y": v.Y.Text(16),
		}
	case curve.JacobianPoint:
		return map[string]string{
			"x": v.X.Text(16),
			"y": v.Y.Text(16),
			"z": v.Z.Text(16),
		}
	case [20]byte:
		return hex.EncodeToString(v[:])
	default:
		return fmt.Sprintf("%v", v)
	}
}
