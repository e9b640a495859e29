// Package grid defines the level and cell data model, the obstacle
// metadata table, and direction arithmetic. These are plain structured
// containers with no caching or concurrency behavior of their own; levels
// typically enter the process as JSON assets loaded through an asset
// source.
package grid
