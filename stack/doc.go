// Package stack provides the script engine's data stack.
//
// The stack holds raw byte sequences. Numeric access goes through the
// scriptnum codec at the boundary: PushNum writes the minimal encoding and
// PopNum enforces the size limit and minimal encoding before decoding. The
// stack itself never interprets opcodes.
package stack
