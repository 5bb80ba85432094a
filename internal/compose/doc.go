// Package compose deep-merges tool configuration fragments. Sequences are
// unioned in first-seen order, the "rules" record is merged one level deep
// with later values winning, other records are merged recursively and
// everything else is replaced by the later value. The behaviour for a key is
// looked up in a small strategy table rather than supplied as a callback.
package compose
