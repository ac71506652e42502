// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package respio

// SingleCommand is a non-empty argument vector that the Serializer
// encodes as one RESP array-of-bulk-strings request. SingleCommand
// holds references into caller-owned storage; it does not copy its
// arguments, so the backing storage must outlive any Serialize call
// that uses it.
type SingleCommand struct {
	arguments [][]byte
}

// NewSingleCommand builds a SingleCommand from a variadic list of byte
// string arguments. It rejects the empty case: a command must carry at
// least one argument (the command name itself).
func NewSingleCommand(args ...[]byte) (SingleCommand, error) {
	if len(args) == 0 {
		return SingleCommand{}, ErrInvalidArgument
	}
	return SingleCommand{arguments: args}, nil
}

// NewSingleCommandStrings is a convenience constructor that copies
// each string into a byte slice so the caller can pass string literals
// directly.
func NewSingleCommandStrings(args ...string) (SingleCommand, error) {
	if len(args) == 0 {
		return SingleCommand{}, ErrInvalidArgument
	}
	out := make([][]byte, len(args))
	for i, a := range args {
		out[i] = []byte(a)
	}
	return SingleCommand{arguments: out}, nil
}

// NewSingleCommandRange builds a SingleCommand from an already-built
// argument slice without copying. The caller must not mutate args
// until any Serialize call using the returned command has completed.
func NewSingleCommandRange(args [][]byte) (SingleCommand, error) {
	if len(args) == 0 {
		return SingleCommand{}, ErrInvalidArgument
	}
	return SingleCommand{arguments: args}, nil
}

// Arguments returns the command's argument vector. The returned slice
// must not be mutated by the caller.
func (c SingleCommand) Arguments() [][]byte { return c.arguments }

// CommandSequence is a flat vector of SingleCommand, encoded in order
// by the Serializer. Nesting is not supported: a CommandSequence never
// contains another CommandSequence.
type CommandSequence struct {
	commands []SingleCommand
}

// NewCommandSequence builds a CommandSequence from one or more
// SingleCommand values, rejecting the empty sequence.
func NewCommandSequence(cmds ...SingleCommand) (CommandSequence, error) {
	if len(cmds) == 0 {
		return CommandSequence{}, ErrInvalidArgument
	}
	return CommandSequence{commands: cmds}, nil
}

// Commands returns the sequence's commands in write order.
func (s CommandSequence) Commands() []SingleCommand { return s.commands }

// Len reports how many replies a pipelined send of s will produce,
// one per command.
func (s CommandSequence) Len() int { return len(s.commands) }

// Command is the tagged union the Serializer accepts: either a single
// command or a flat sequence of commands.
type Command interface {
	isCommand()
}

func (SingleCommand) isCommand()   {}
func (CommandSequence) isCommand() {}
