// Package courselab collects three classic algorithm exercises as small,
// independent Go packages.
//
// 🚀 What is inside?
//
//	• editdistance/  minimum edit distance with adjacent transposition,
//	                 plus lazy enumeration of every optimal alignment
//	• rivercrossing/ depth-first search over the 16-state peasant, wolf,
//	                 goat and cabbage puzzle
//	• convexhull/    brute-force O(n³) convex hull edges of a point set
//
// Each package is pure, synchronous and free of global state. The
// cmd/courselab binary wires them to stdin/stdout with cobra and logrus:
//
//	printf 'kitten\tsitting\n' | courselab editdistance
//	courselab rivercrossing --log-level=debug
//	courselab convexhull --points 50 --seed 1
//
//	go get github.com/katalvlaran/courselab
package courselab
