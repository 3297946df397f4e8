package kdgo

// Each visits every point in the tree in-order. It is a finite,
// single-pass traversal driven synchronously by the visitor; the tree must
// not be mutated while it runs.
func (t *KDTree) Each(visit func(p *Point)) {
	t.InOrder(func(n *KDTree) {
		visit(n.value)
	})
}

// PreOrder visits every node in the tree, parent before children.
func (t *KDTree) PreOrder(visit func(n *KDTree)) {
	if t == nil || t.value == nil {
		return
	}
	visit(t)
	t.left.PreOrder(visit)
	t.right.PreOrder(visit)
}

// InOrder visits every node in the tree, left child first, parent second.
func (t *KDTree) InOrder(visit func(n *KDTree)) {
	if t == nil || t.value == nil {
		return
	}
	t.left.InOrder(visit)
	visit(t)
	t.right.InOrder(visit)
}

// PostOrder visits every node in the tree, children before parent.
func (t *KDTree) PostOrder(visit func(n *KDTree)) {
	if t == nil || t.value == nil {
		return
	}
	t.left.PostOrder(visit)
	t.right.PostOrder(visit)
	visit(t)
}
