// Package grid turns raster images into binary occupancy grids suitable for
// seeding a cellular automaton such as Conway's Game of Life.
//
// An image is cut into square cells starting at its top-left corner. Each
// cell's brightness is sampled (see Policy) and the cell is alive when the
// sampled R+G+B sum is below 384, i.e. when it is darker than the 8-bit
// midpoint. Pixels on the right and bottom edges that don't fill a whole cell
// are dropped.
package grid
