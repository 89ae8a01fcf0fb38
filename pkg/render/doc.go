// Package render provides output sinks for truss graphs.
//
// # Overview
//
// This package turns a [truss.Graph] into shareable artifacts:
//
//   - SVG drawings via [RenderSVG], in a clean "simple" style or a
//     sketchy "handdrawn" style with deterministic jitter
//   - JSON documents via [ExportJSON], the primary interchange format
//   - Graphviz DOT via [ToDOT], plus [RenderDOTSVG] and [RenderDOTPNG]
//     for rasterized node-link diagrams
//
// All sinks are pure functions of the graph and their options. The
// handdrawn style derives its wobble from a seed, so the same graph and
// seed always produce byte-identical output.
//
// [truss.Graph]: github.com/soerensenkarl/DrawTruss/pkg/truss
package render
