// Package stream reads and writes batches of graphs in the line oriented
// numeric format used on the command line.
package stream
