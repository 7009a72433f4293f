package bstindex

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajwerner/bstindex/internal/abstract"
	"github.com/xlab/treeprint"
)

// Fprint writes an indented rendering of the tree to w, left child first.
// If printData is set each key is followed by its bucket. The missing child
// of a node with a single child is drawn as "*".
func (t *Tree[K, V]) Fprint(w io.Writer, printData bool) error {
	if !t.root.HasKey() {
		_, err := io.WriteString(w, "*\n")
		return err
	}
	tree := treeprint.NewWithRoot(nodeLabel(t.root, printData))
	addChildren(tree, t.root, printData)
	_, err := io.WriteString(w, tree.String())
	return err
}

// PrettyPrint logs the rendering produced by Fprint at debug level.
func (t *Tree[K, V]) PrettyPrint(printData bool) {
	var b strings.Builder
	_ = t.Fprint(&b, printData)
	t.cfg.Logger().Debug("tree dump", "tree", b.String())
}

func addChildren[K, V any](branch treeprint.Tree, n *abstract.Node[K, V], printData bool) {
	if n.Left() == nil && n.Right() == nil {
		return
	}
	for _, c := range [...]*abstract.Node[K, V]{n.Left(), n.Right()} {
		if c == nil {
			branch.AddNode("*")
			continue
		}
		addChildren(branch.AddBranch(nodeLabel(c, printData)), c, printData)
	}
}

func nodeLabel[K, V any](n *abstract.Node[K, V], printData bool) string {
	if printData {
		return fmt.Sprintf("%v %v", n.Key(), n.Values())
	}
	return fmt.Sprint(n.Key())
}
