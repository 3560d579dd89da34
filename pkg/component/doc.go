/*
Package component implements the composite tree at the heart of Canopy: a
hierarchy of nodes that are either terminal (Leaf) or aggregating
(Container), rendered uniformly through a single Execute operation.

Structure is maintained under four invariants: the child relation is
acyclic, a node's parent reference always matches its actual position, a
node is owned by at most one container at a time, and child order changes
only through explicit Add (append) and Remove (order-preserving delete).
Add enforces the first three — it detaches a child from its previous parent
before appending and rejects edges that would close a loop with
ErrCycleDetected.

Rendering follows the grammar

	result   = "Leaf" | payload | branch
	branch   = "Branch(" [result {"+" result}] ")"

so a leaf contributes its payload and a container contributes the ordered
join of its children's results. Traversal is iterative throughout; depth is
bounded by heap, not goroutine stack.

Child management deliberately lives only on Container. A uniform Node
surface that accepts Add on a leaf just to refuse it at runtime hides
wiring bugs; keeping mutation on the concrete container type surfaces them
at compile time instead.
*/
package component
