// Package score ranks recipes against a pantry. A hard balance gate drops
// recipes whose macro-calorie split strays too far from the target ratios;
// survivors are ranked by a blend of ingredient coverage and how close to
// the target split they sit.
package score
