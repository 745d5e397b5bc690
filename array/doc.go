// SPDX-License-Identifier: MIT

// Package array provides the dense, rectangular containers consumed by the
// nanstat and hist packages.
//
// What & Why:
//
//	Dense[T] is a row-major buffer holding either a 1D vector (NDim()==1) or a
//	2D matrix (NDim()==2). Row is the first ("vertical") axis. The element type
//	is any Go type for masks and buffers; numeric kernels constrain it to
//	Number (all integer and float kinds).
//
// Complexity:
//
//	Rows/Cols/Shape/NDim/Len run in O(1).
//	At/Set bounds-check in O(1) and return ErrOutOfRange instead of panicking.
//	Clone and Col copy; Row and Data expose the backing storage without copying.
package array
