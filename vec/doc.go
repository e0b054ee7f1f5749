// Package vec provides the fixed-size vector and point value types the
// rotation subsystem operates on: Vec2, Vec3, Vec4, Point2 and Point3.
//
// Vectors are displacements; points are positions. The difference of two
// points is a vector, a point plus a vector is a point, and transforms treat
// them differently (vectors ignore translation). All types are plain
// comparable structs: every method returns a new value and never mutates
// its receiver.
package vec
