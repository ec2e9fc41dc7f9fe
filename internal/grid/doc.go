// Package grid renders a pixel-measurement overlay onto a screenshot so that
// on-screen positions can be read off by eye when authoring room scripts.
package grid
