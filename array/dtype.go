// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import "github.com/born-ml/ndarray/internal/dtype"

// Promote returns the smallest data type both a and the others cast to safely.
// Binary promotes only with itself and fails with ErrNoPromotion otherwise.
func Promote(a DataType, others ...DataType) (DataType, error) {
	return dtype.PromoteAll(append([]DataType{a}, others...)...)
}

// ResolveDType returns the output data type selected by policy for the given input
// data types and the operation's own output data type, using the library defaults.
//
// Example:
//
//	dt, _ := array.ResolveDType([]array.DataType{array.Int8}, array.Float64, array.PolicyAccumulation)
//	// dt == array.Int32
func ResolveDType(inputs []DataType, output DataType, policy Policy) (DataType, error) {
	return dtype.Resolve(inputs, output, policy, dtype.DefaultConfig())
}

// IsAllowedCast reports whether casting permits converting from to to.
func IsAllowedCast(from, to DataType, casting Casting) (bool, error) {
	return dtype.IsAllowedCast(from, to, casting)
}

// PolicyOf returns the policy that always selects dt.
func PolicyOf(dt DataType) Policy {
	return dtype.PolicyOf(dt)
}

// ParsePolicy parses a policy name, or a data type name standing for PolicyOf.
func ParsePolicy(s string) (Policy, error) {
	return dtype.ParsePolicy(s)
}
