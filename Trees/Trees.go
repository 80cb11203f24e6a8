// Package Trees implements red-black trees augmented with subtree sizes, so
// that besides ordered lookup they find the k-th element, the rank of an
// element, and move iterators by any offset in logarithmic time.
//
// Nodes live in an arena indexed by S. Index 0 is a per-tree sentinel
// standing for every missing child, the parent of the root and the End
// position, which removes nil checks from the balancing code. Contract violations
// such as reading End panic; ordinary misses never do.
package Trees

import "golang.org/x/exp/constraints"

// Tree is the part of the API shared by RBTree and MultiTree. Insertion and
// removal by key differ between unique and repeated keys, so they're left to
// the implementations.
type Tree[K, V any, S constraints.Unsigned] interface {
	//Find an element with key k, End if there's none.
	Find(k K) Iterator[K, V, S]
	//Erase the element at it, returning the position of its successor.
	//it must be a valid element of this tree.
	Erase(it Iterator[K, V, S]) Iterator[K, V, S]
	//At returns the k-th smallest element; End if k<0 or k>=Size().
	At(k int) Iterator[K, V, S]
	//Begin is the smallest element or End when empty.
	Begin() Iterator[K, V, S]
	//End is the position after the largest element.
	End() Iterator[K, V, S]
	//Last is the largest element or End when empty.
	Last() Iterator[K, V, S]
	//Size of the tree.
	Size() int
	//Clear removes all elements.
	Clear()
	//InOrder visits the elements in ascending order until f returns false.
	//The tree must not be modified during the iteration.
	InOrder(f func(K, *V) bool)
	//Verify the structure, returning the first violated property.
	Verify() error
	//Valid is Verify()==nil.
	Valid() bool
}
