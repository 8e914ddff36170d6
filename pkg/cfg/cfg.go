package cfg

// OverlapTolerance is the maximum distance between two edges for them to be
// considered overlapping. All geometric comparisons during overlap detection
// and fusion use this value. Units are the model's length units (for STL
// input that is typically mm, though the format itself carries no unit).
var OverlapTolerance = 1e-5

// PlanarCosTolerance is the minimum dot product between the unit normals of
// two adjacent triangles for them to be grouped into the same planar face.
var PlanarCosTolerance = 1.0 - 1e-9

// TransientPrefix marks wire objects created for the duration of a single
// export. Cleanup removes every document object whose name starts with this.
const TransientPrefix = "_tmp_wire"

// StrokeWidthMM is the stroke width written to exported SVG paths.
var StrokeWidthMM = 0.35
