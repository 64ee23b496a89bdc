// Package pixelpipe runs an ordered chain of image operation modules over
// a float32 pixel buffer. A render starts at the tail of the chain and
// recurses toward the input: each node shrinks or grows the requested
// region of interest on the way down, and pixels flow back up through the
// module process functions.
//
// Modules implement small optional interfaces for the callbacks they need;
// anything they leave out falls back to an identity default. The pipeline
// borrows its input buffer, owns every intermediate, and publishes the
// finished render to a backbuffer that can be read while the next render
// is in flight.
package pixelpipe
