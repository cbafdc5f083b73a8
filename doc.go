// Package gfx provides the 2D geometry and procedural-shape layer of a
// simulated robot world.
//
// # Overview
//
// The package has two cooperating halves. The transform half is pure
// point and angle arithmetic: rotation about the origin or an arbitrary
// pivot, single-step angle wrapping into [0, 2*Pi), Euclidean and squared
// distance. The tessellation half expands high-level shape requests
// (circles, ellipses, regular polygons, grids, light beams) into flat
// vertex sequences suitable for immediate-mode rendering.
//
// # Draw calls
//
// Vertices flow to a rendering collaborator through the Target interface:
// a draw call pairs a vertex sequence (and an optional parallel color
// sequence) with an intended primitive kind. Targets own their drawing
// surface; the geometry layer is stateless and side-effect free, so every
// function here is safe to call concurrently. A software target renders
// into a Pixmap on the CPU; package ebitendraw adapts draw calls to an
// ebiten screen.
//
// # Coordinate system
//
// Angles are radians, counter-clockwise for positive values. Shapes are
// described by world-space bounding boxes or center plus radius; vertex
// sequences are emitted as float32 (x, y) pairs in drawing order.
package gfx
