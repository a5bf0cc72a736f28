// Package synced holds the composite measurement types that bundle several
// single-sensor samples under one shared timestamp.
//
// Every constituent is a pointer and nil means absent: a composite with all
// constituents absent is a valid "timestamp tick with no readings yet".
// Copies are deep, including absence (copying a composite with an absent
// slot clears that slot in the target), and the strict ToNED/ToENU forms
// convert all present constituents atomically: either every one converts or
// the output is left untouched.
package synced
