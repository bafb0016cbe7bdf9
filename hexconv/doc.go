// Package hexconv converts between hexadecimal/decimal text and binary data.
//
// The conversions never fail: malformed input maps to zero values and
// undersized destinations receive as much output as fits.
package hexconv
