package engine

import (
	"github.com/minhyukpark/cm/cluster"
	"github.com/minhyukpark/cm/graph"
	"github.com/minhyukpark/cm/hierarchy"
)

// driver holds one engine run's mutable state: the LIFO work stack, the
// label map, the hierarchy tree, and the index from ClusterIndex to the
// tree node that currently represents it.
type driver struct {
	global     *graph.Graph
	clusterer  cluster.Clusterer
	req        cluster.Requirement
	onDecision DecisionHook

	tree      *hierarchy.Tree
	nodeOf    map[string]hierarchy.NodeIndex
	labels    map[int32]string
	stack     []cluster.IntangibleCluster
	ans       []cluster.IntangibleCluster
}

// init seeds the tree's root and its initial-cluster children, and
// pushes the initial clusters onto the work stack.
func (d *driver) init(initial []cluster.IntangibleCluster) {
	tree, root := hierarchy.New("", d.global.N())
	d.tree = tree
	d.nodeOf = map[string]hierarchy.NodeIndex{"": root}
	d.labels = map[int32]string{}

	for _, ic := range initial {
		child := d.tree.AddChild(root, ic.Index, ic.Index, ic.N())
		d.nodeOf[ic.Index] = child
		d.stack = append(d.stack, ic)
	}
}

// loop drains the work stack, processing one job per iteration.
func (d *driver) loop() error {
	for len(d.stack) > 0 {
		job := d.stack[len(d.stack)-1]
		d.stack = d.stack[:len(d.stack)-1]
		if err := d.step(job); err != nil {
			return err
		}
	}
	return nil
}

// step processes a single popped job: prune, find the global mincut,
// then split or accept.
func (d *driver) step(job cluster.IntangibleCluster) error {
	d.stampLabels(job.Nodes, job.Index)

	if job.N() <= 1 {
		return nil
	}

	treeNode, ok := d.nodeOf[job.Index]
	if !ok {
		return &InternalInvariantError{
			Invariant: "tree node exists for every queued job",
			Detail:    "missing tree node for cluster " + job.Index,
		}
	}

	v := cluster.Realize(d.global, job)
	activeNode := treeNode

	origMCD := v.MCD()
	numPruned := cluster.Prune(v, d.req, d.clusterer)
	if numPruned > 0 {
		d.tree.SetCutSize(treeNode, origMCD)
		prunedIndex := v.Index() + cluster.Pruned
		v.Reindex(prunedIndex)
		child := d.tree.AddChild(treeNode, prunedIndex, prunedIndex, v.N())
		d.nodeOf[prunedIndex] = child
		activeNode = child
		d.stampLabels(v.ToIntangible().Nodes, prunedIndex)
		d.emit(DecisionEvent{Kind: "prune", ClusterIndex: prunedIndex, N: v.N(), NumPruned: numPruned})
	}

	if v.N() <= 1 {
		return nil
	}

	res := v.FindMincut()
	thr := d.req.ValidityThreshold(d.clusterer, v)
	d.tree.SetCutSize(activeNode, res.CutSize)
	d.tree.SetValidityThreshold(activeNode, thr)

	if res.CutSize > 0 && float64(res.CutSize) <= thr {
		return d.split(v, res, activeNode, thr)
	}
	return d.decideAccept(v, activeNode, thr)
}

// split builds the two mincut-side ClusterViews, reclusters each, and
// pushes the reclustered children onto the work stack — never the sides
// themselves.
func (d *driver) split(v *cluster.ClusterView, res cluster.MincutResult, parent hierarchy.NodeIndex, thr float64) error {
	a, b := v.CutByMincut(res)
	nodeA := d.tree.AddChild(parent, a.Index(), a.Index(), a.N())
	nodeB := d.tree.AddChild(parent, b.Index(), b.Index(), b.N())
	d.nodeOf[a.Index()] = nodeA
	d.nodeOf[b.Index()] = nodeB

	var childLabels []string
	for _, side := range []struct {
		v    *cluster.ClusterView
		node hierarchy.NodeIndex
	}{{a, nodeA}, {b, nodeB}} {
		subs, err := d.clusterer.ClusterWithoutSingletons(side.v)
		if err != nil {
			return &ClustererError{ClusterIndex: side.v.Index(), Err: err}
		}
		for _, sg := range subs {
			child := d.tree.AddChild(side.node, sg.Index, sg.Index, sg.N())
			d.nodeOf[sg.Index] = child
			d.stack = append(d.stack, sg)
			childLabels = append(childLabels, sg.Index)
		}
	}

	d.emit(DecisionEvent{
		Kind: "split", ClusterIndex: v.Index(), N: v.N(),
		CutSize: res.CutSize, Threshold: thr, Children: childLabels,
	})
	return nil
}

// decideAccept applies the accept-or-reject branch: an IKC candidate
// additionally needs positive Newman modularity to survive into ans.
func (d *driver) decideAccept(v *cluster.ClusterView, node hierarchy.NodeIndex, thr float64) error {
	candidate := v.ToIntangible()
	mod := d.global.Modularity(candidate.Nodes)

	if d.clusterer.RequiresPositiveModularity() && mod <= 0 {
		d.tree.SetExtant(node, false)
		d.emit(DecisionEvent{Kind: "reject", ClusterIndex: v.Index(), N: v.N(), Threshold: thr})
		return nil
	}

	d.ans = append(d.ans, candidate)
	d.tree.SetExtant(node, true)
	d.emit(DecisionEvent{Kind: "accept", ClusterIndex: v.Index(), N: v.N(), Threshold: thr})
	return nil
}

func (d *driver) stampLabels(nodes map[int32]struct{}, index string) {
	for u := range nodes {
		d.labels[u] = index
	}
}

func (d *driver) emit(ev DecisionEvent) {
	if d.onDecision != nil {
		d.onDecision(ev)
	}
}
