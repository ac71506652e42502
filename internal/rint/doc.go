// Package rint provides allocation-free conversion between signed
// decimal integers and their ASCII representation, used for RESP count
// fields and for serializing bulk-string and array lengths.
package rint
