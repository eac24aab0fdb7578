// Package rivercrossing solves the peasant, wolf, goat and cabbage puzzle by
// depth-first search over a 16-state graph.
//
// What:
//
//   - State packs the bank of each actor into 4 bits: Peasant 0x08,
//     Wolf 0x04, Goat 0x02, Cabbage 0x01. A set bit means the far bank,
//     so Start is <0000> and Goal is <1111>.
//   - A state is a dead end when the goat is left without the peasant
//     next to the wolf or the cabbage.
//   - A crossing moves the peasant alone, or the peasant with one item
//     that was on the peasant's bank.
//   - Solve walks every simple path from an initial to a goal state,
//     marking states visited only along the current path, and records each
//     path that reaches the goal.
//
// Why:
//   - The classic state-space search exercise: small enough to check by
//     hand, rich enough to show dead ends, revisits and backtracking.
//
// Hooks:
//
//   - WithOnVisit(fn)      called when a state is entered at a given depth.
//   - WithOnBacktrack(fn)  called when the search returns to a state.
//   - WithOnSkip(fn)       called for every candidate crossing that is not
//     taken, with the reason (dead end, illegal, already on path).
//
// Complexity:
//
//   - Time:   bounded by the number of simple paths in a 16-vertex graph.
//   - Memory: O(16) for the path and on-path marks.
package rivercrossing
