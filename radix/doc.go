// Package radix converts between bigfloat.BigFloat and an
// arbitrary-precision multi-digit value at radix 2**k, k in 1..5 (radix
// 2, 4, 8, 16, or 32). It's the Go-native counterpart of a library like
// Apfloat: ToDigits/FromDigits carry a BigFloat's exact value across
// the boundary with an external decimal/arbitrary-radix package,
// without this module needing to depend on one itself.
package radix
