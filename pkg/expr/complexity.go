package expr

func (c *ConstNode) NodeCount() int { return 1 }
func (f *FloatNode) NodeCount() int { return 1 }
func (n *NameNode) NodeCount() int  { return 1 }
func (u *UnaryNode) NodeCount() int { return 1 + u.Child.NodeCount() }
func (b *BinaryNode) NodeCount() int {
	return 1 + b.Left.NodeCount() + b.Right.NodeCount()
}
func (c *CompareNode) NodeCount() int {
	return 1 + c.Left.NodeCount() + sumNodeCount(c.Comparators)
}
func (b *BoolNode) NodeCount() int { return 1 + sumNodeCount(b.Values) }
func (c *CallNode) NodeCount() int { return 1 + c.Func.NodeCount() + sumNodeCount(c.Args) }

func (c *ConstNode) Depth() int { return 1 }
func (f *FloatNode) Depth() int { return 1 }
func (n *NameNode) Depth() int  { return 1 }
func (u *UnaryNode) Depth() int { return 1 + u.Child.Depth() }
func (b *BinaryNode) Depth() int {
	ld := b.Left.Depth()
	rd := b.Right.Depth()
	if ld > rd {
		return 1 + ld
	}
	return 1 + rd
}
func (c *CompareNode) Depth() int {
	return 1 + maxDepth(append([]Node{c.Left}, c.Comparators...))
}
func (b *BoolNode) Depth() int { return 1 + maxDepth(b.Values) }
func (c *CallNode) Depth() int {
	return 1 + maxDepth(append([]Node{c.Func}, c.Args...))
}

func sumNodeCount(nodes []Node) int {
	total := 0
	for _, n := range nodes {
		total += n.NodeCount()
	}
	return total
}

func maxDepth(nodes []Node) int {
	d := 0
	for _, n := range nodes {
		if nd := n.Depth(); nd > d {
			d = nd
		}
	}
	return d
}
