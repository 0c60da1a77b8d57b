// Package tree generates fractal branch diagrams.
//
// A tree is produced by a depth-first recursion that emits one straight
// [Segment] per call and then branches twice, once turning left and once
// turning right, until a per-variant depth bound is reached:
//
//   - [Basic]: fixed ±20° turns, each branch 0.8 of its parent
//   - [Random]: jittered turns and lengths, deeper recursion
//   - [Colored]: Random's jitter, with lightness and stroke width per depth
//
// # Example
//
//	gen := tree.NewSeededGenerator(42)
//	seq := gen.Generate(tree.Random, 300, 500)
//	fmt.Println(len(seq)) // 8191
//
// # Thread Safety
//
// A [Generator] draws from its random source on every call and is NOT
// thread-safe. The same holds for [Scene]. Use one generator per goroutine.
package tree
