// Package axion is a minimal software wireframe renderer.
//
// A Device owns a CPU-side BGRA8 back buffer sized to a borrowed display Surface. Each
// frame the caller clears the buffer, renders one or more meshes through a fixed
// world/view/projection chain, and presents the result:
//
//	Clear → Render(camera, meshes...) → Present
//
// Only projected vertices are rasterized, as single points in DrawColor. There is no
// depth buffer, no culling and no fill. Driver bundles the per-frame sequence behind a
// single Step call so any host tick can drive it.
//
// The package is single-threaded: a Device and the meshes it renders must not be used
// from more than one goroutine at a time.
package axion
