package rowan

import (
	"fmt"
	"os"
)

// debugCheckDestroyed panics with a descriptive message when a destroyed
// node is used in a tree operation. Only called when the scene is in debug
// mode; release mode skips the check entirely.
func debugCheckDestroyed(n *Node, op string) {
	if n.flags.HasAll(FlagDestroyed) {
		panic(fmt.Sprintf("rowan debug: %s on destroyed node %q (ID %d)", op, n.Name, n.ID))
	}
}

// debugMaxTreeDepth is the depth past which attach warns on stderr.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[rowan] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}
