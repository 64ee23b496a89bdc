// Package model holds the value types shared across the pixel pipeline:
// regions of interest, buffer descriptors, colorspace tags, tiling
// requirements and the input image snapshot.
package model
