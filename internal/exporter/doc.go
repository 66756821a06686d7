// Package exporter owns every output surface of the pipeline: the
// gnuplot-style separation-energy table, its CSV and Excel renditions,
// and the SVG chart of nuclides. The core packages only produce values;
// all text and markup emission happens here.
package exporter
