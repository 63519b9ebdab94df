package rating

import "github.com/bekbolotov/movie-catalog-api/internal/domain"

// MaxThreadDepth bounds reply nesting during assembly. Parent timestamps
// make cycles impossible, but a long adversarial chain could still force
// unbounded recursion, so levels past the limit are dropped.
const MaxThreadDepth = 100

// Node is a rating with its direct replies attached.
type Node struct {
	*domain.Rating
	Replies []*Node
}

// Thread builds the reply tree from a flat, creation-time-ordered rating
// list by indexing children by parent id. Input order is preserved within
// each level. A rating whose parent is not part of the input is treated as
// top-level rather than dropped.
func Thread(ratings []*domain.Rating) []*Node {
	nodes := make(map[int]*Node, len(ratings))
	for _, r := range ratings {
		nodes[r.ID] = &Node{Rating: r}
	}

	var roots []*Node
	for _, r := range ratings {
		node := nodes[r.ID]

		if r.ParentID == nil {
			roots = append(roots, node)
			continue
		}

		parent, ok := nodes[*r.ParentID]
		if !ok || parent == node {
			roots = append(roots, node)
			continue
		}

		parent.Replies = append(parent.Replies, node)
	}

	prune(roots, 1)

	return roots
}

func prune(nodes []*Node, depth int) {
	for _, n := range nodes {
		if depth >= MaxThreadDepth {
			n.Replies = nil
			continue
		}

		prune(n.Replies, depth+1)
	}
}
