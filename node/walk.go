package node

import (
	"iter"
	"strings"
)

// Walk calls fn for n and its descendants in depth-first order, passing
// each node's depth below n. Children of a node are skipped when fn
// returns false for it.
func Walk(n Node, fn func(n Node, depth int) bool) {
	walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) bool) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children() {
		walk(c, depth+1, fn)
	}
}

// All yields every descendant of n with its dotted path, depth first.
// Array elements join without a dot: "entries[0].tags[1]".
func All(n Node) iter.Seq2[string, Node] {
	return func(yield func(string, Node) bool) {
		all(n, "", yield)
	}
}

func all(n Node, prefix string, yield func(string, Node) bool) bool {
	for _, c := range n.Children() {
		p := join(prefix, c.Name())
		if !yield(p, c) {
			return false
		}
		if !all(c, p, yield) {
			return false
		}
	}
	return true
}

func join(prefix, name string) string {
	if prefix == "" || strings.HasPrefix(name, "[") {
		return prefix + name
	}
	return prefix + "." + name
}

// Find returns the descendant of n at path, in the form yielded by All.
func Find(n Node, path string) (Node, bool) {
	for p, c := range All(n) {
		if p == path {
			return c, true
		}
	}
	return nil, false
}

// Count returns the number of nodes in the tree rooted at n, including n.
func Count(n Node) int {
	total := 0
	Walk(n, func(Node, int) bool {
		total++
		return true
	})
	return total
}
