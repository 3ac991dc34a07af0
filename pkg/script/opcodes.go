// Package script is a minimal opcode table operating on a stack of byte
// strings.  It is a stub, not a script interpreter: only OP_DUP, OP_HASH160
// and OP_HASH256 are defined.
package script

import (
	"github.com/mahdiidarabi/ecc-secp256k1/pkg/hashes"
)

// Opcodes with a defined implementation.
const (
	OP_DUP     byte = 0x76 // 118
	OP_HASH160 byte = 0xa9 // 169
	OP_HASH256 byte = 0xaa // 170
)

// Stack is a last-in-first-out stack of byte strings.
type Stack [][]byte

// Push places b on top of the stack.
func (s *Stack) Push(b []byte) {
	*s = append(*s, b)
}

// Pop removes and returns the top element.  ok is false on an empty stack.
func (s *Stack) Pop() (b []byte, ok bool) {
	if len(*s) == 0 {
		return nil, false
	}
	b = (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return b, true
}

// Peek returns the top element without removing it.
func (s *Stack) Peek() (b []byte, ok bool) {
	if len(*s) == 0 {
		return nil, false
	}
	return (*s)[len(*s)-1], true
}

// OpFunc transforms the stack and reports whether it succeeded.
type OpFunc func(stack *Stack) bool

// Functions maps each defined opcode to its implementation.
var Functions = map[byte]OpFunc{
	OP_DUP:     OpDup,
	OP_HASH160: OpHash160,
	OP_HASH256: OpHash256,
}

// Names maps each defined opcode to its name.
var Names = map[byte]string{
	OP_DUP:     "OP_DUP",
	OP_HASH160: "OP_HASH160",
	OP_HASH256: "OP_HASH256",
}

// OpDup duplicates the top element.
func OpDup(stack *Stack) bool {
	top, ok := stack.Peek()
	if !ok {
		return false
	}
	dup := make([]byte, len(top))
	copy(dup, top)
	stack.Push(dup)
	return true
}

// OpHash160 replaces the top element with its hash160.
func OpHash160(stack *Stack) bool {
	top, ok := stack.Pop()
	if !ok {
		return false
	}
	stack.Push(hashes.Hash160(top))
	return true
}

// OpHash256 replaces the top element with its double SHA-256.
func OpHash256(stack *Stack) bool {
	top, ok := stack.Pop()
	if !ok {
		return false
	}
	stack.Push(hashes.Hash256(top))
	return true
}

// Execute runs a single opcode against the stack.  Unknown opcodes fail.
func Execute(code byte, stack *Stack) bool {
	fn, ok := Functions[code]
	if !ok {
		return false
	}
	return fn(stack)
}
