package experiment

const (
	LeftNodeID  = 1
	RightNodeID = 2
)

// Node is one of the two click targets.
type Node struct {
	id     int
	status bool
}

func newNode(id int, status bool) *Node {
	return &Node{id: id, status: status}
}

// ID returns the fixed node identity (1 or 2).
func (node *Node) ID() int {
	return node.id
}

// Active reports whether the node is the currently clickable target.
func (node *Node) Active() bool {
	return node.status
}

func (node *Node) toggle() {
	node.status = !node.status
}
