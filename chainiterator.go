package mchashbrowns

// chainIterator - Is used to iterate over the nodes of one bucket chain one by one, head first.
// The iterator has already moved past a node when it is handed out, so the node may be unlinked by the caller.
type chainIterator struct {
	current *node
}

// newChainIterator - Returns a pointer to a new chainIterator starting at head
func newChainIterator(head *node) *chainIterator {
	return &chainIterator{current: head}
}

// hasNext - Returns true if there are more nodes to be fetched from a call to next.
func (C *chainIterator) hasNext() bool {
	return C.current != nil
}

// next - Returns the next node in the chain, or nil if the chain is exhausted.
func (C *chainIterator) next() (n *node) {
	n = C.current
	if n != nil {
		C.current = n.next
	}

	return
}
