package scene

import (
	"github.com/lixenwraith/tannenbaum/vmath"
)

// NodeID indexes a transform node in a Graph arena
type NodeID int

// NodeNone marks a node with no parent
const NodeNone NodeID = -1

type node struct {
	parent NodeID
	pos    vmath.Vec3
	rot    vmath.Euler
}

// Graph is an arena of transform nodes with explicit parent links
// Particles hold a NodeID, never a live node reference, so the
// collection can grow without invalidating anything
type Graph struct {
	nodes []node
}

func NewGraph() *Graph {
	return &Graph{nodes: make([]node, 0, 64)}
}

// Add appends a node under parent and returns its id
// parent must be NodeNone or a previously returned id
func (g *Graph) Add(parent NodeID) NodeID {
	g.nodes = append(g.nodes, node{parent: parent})
	return NodeID(len(g.nodes) - 1)
}

func (g *Graph) SetPos(id NodeID, p vmath.Vec3) {
	g.nodes[id].pos = p
}

func (g *Graph) Pos(id NodeID) vmath.Vec3 {
	return g.nodes[id].pos
}

func (g *Graph) SetRot(id NodeID, r vmath.Euler) {
	g.nodes[id].rot = r
}

func (g *Graph) Rot(id NodeID) vmath.Euler {
	return g.nodes[id].rot
}

// World composes a local point through the node's ancestor chain
// Each level rotates by the ancestor's orientation then translates
func (g *Graph) World(id NodeID, local vmath.Vec3) vmath.Vec3 {
	p := local
	for id != NodeNone {
		n := &g.nodes[id]
		p = vmath.V3Add(vmath.Rotate(p, n.rot), n.pos)
		id = n.parent
	}
	return p
}

// Len returns the number of nodes in the arena
func (g *Graph) Len() int {
	return len(g.nodes)
}
