package rbtree

import (
	"io"
	"os"
)

// Config holds configuration options for a tree.
type Config struct {
	// Destination of PrintTree output
	Output io.Writer

	// Verify the Red-Black properties after every Insert and Delete and
	// panic on the first violation (slow, meant for debugging)
	CheckInvariants bool
}

// DefaultConfig returns a default tree configuration.
func DefaultConfig() *Config {
	return &Config{
		Output:          os.Stdout,
		CheckInvariants: false,
	}
}

func (t *RBTree[T]) checkInvariants() {
	if !t.config.CheckInvariants {
		return
	}
	if err := t.VerifyTreeProperties(); err != nil {
		panic(err)
	}
}
