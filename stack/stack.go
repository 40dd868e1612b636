package stack

import (
	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/calebcase/scriptnum"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("stack")

var ErrUnderflow = Error.New("underflow")

// Stack is a last in, first out stack of byte sequences.
type Stack [][]byte

// Push places data on top of the stack.
func (s *Stack) Push(data []byte) {
	*s = append(*s, data)
}

// Peek returns the top of the stack without removing it, or nil if the stack
// is empty.
func (s *Stack) Peek() []byte {
	if len(*s) == 0 {
		return nil
	}

	return (*s)[len(*s)-1]
}

// Pop removes and returns the top of the stack.
func (s *Stack) Pop() (data []byte, err error) {
	if len(*s) == 0 {
		return nil, oops.Trace(ErrUnderflow)
	}

	data = (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]

	return data, nil
}

// Drop discards the top of the stack.
func (s *Stack) Drop() (err error) {
	_, err = s.Pop()

	return err
}

// Depth returns the number of entries on the stack.
func (s *Stack) Depth() int {
	return len(*s)
}

// PushNum pushes the minimal encoding of n.
func (s *Stack) PushNum(n scriptnum.Num) {
	s.Push(n.Bytes())
}

// PopNum pops the top of the stack as a number at most maxSize bytes long.
// The encoding must be minimal.
func (s *Stack) PopNum(maxSize int) (n scriptnum.Num, err error) {
	data, err := s.Pop()
	if err != nil {
		return 0, err
	}

	return scriptnum.MakeNum(data, maxSize)
}

// PushBool pushes the encoding of 1 for true and the empty encoding of 0 for
// false.
func (s *Stack) PushBool(v bool) {
	if v {
		s.PushNum(1)
	} else {
		s.PushNum(0)
	}
}

// PopBool pops the top of the stack as a truth value. Every encoding of zero
// is false, including non-minimal ones and negative zero; everything else is
// true.
func (s *Stack) PopBool() (v bool, err error) {
	data, err := s.Pop()
	if err != nil {
		return false, err
	}

	for i, b := range data {
		if b != 0 {
			// A sign byte with no magnitude bits is negative zero.
			if i == len(data)-1 && b == 0x80 {
				return false, nil
			}

			return true, nil
		}
	}

	return false, nil
}
