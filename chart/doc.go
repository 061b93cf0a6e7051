// Package chart renders the plots of the numlab commands to image files
// with gonum/plot: plain functions, interpolants with their nodes, ODE
// trajectories against the exact solution, and the zero level sets of a 2-D
// nonlinear system.
//
// The output format follows the file extension (.png, .svg, .pdf, ...).
// Non-finite samples are dropped, so functions with a restricted domain
// (sqrt, ln) can be drawn over any range.
package chart
