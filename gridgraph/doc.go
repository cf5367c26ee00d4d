// Package gridgraph lays out a rectangular grid of nodes on a canvas and
// seeds a *core.Graph with their positions and neighbor edges.
//
// What:
//
//   - Grid describes Rows×Cols cells centred on a Width×Height canvas, with a
//     margin of two node radii on each axis.
//   - Nodes are named "node-<row>-<col>" and placed at
//     (col·hSpacing + offsetX, row·vSpacing + offsetY).
//   - Conn4 connects orthogonal neighbors; Conn8 adds the diagonals.
//   - Edge weights are left to core: the Euclidean distance of the positions.
//
// Complexity:
//
//   - NewGrid:      O(1).
//   - ToCoreGraph:  O(Rows×Cols×d), Memory: O(Rows×Cols + E)   (d = 4 or 8).
//
// Errors:
//
//   - ErrEmptyGrid:  Rows or Cols below one.
//   - ErrBadCanvas:  non-positive canvas size or negative radius.
package gridgraph
