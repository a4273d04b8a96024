// Package library resolves user specification lines into a concrete set of
// file transfer jobs.
//
// A specification line is a partial path of the form artist/album/track with
// trailing components optional. Resolution is a pipeline of small
// transformations, each producing a new collection:
//
//  1. [ParseSpecLines] : spec lines → three-component glob [Pattern]s
//  2. [ExpandPattern] : pattern → existing files under the library root
//  3. [ResolveJob] / [BuildJobSet] : matched file → [Job] with destination and
//     optional format conversion, deduplicated by source path
//  4. [FilterAgainstTarget] : drop jobs whose destination already exists
//
// Only [ExpandPattern], [FilterAgainstTarget] and [PrepareTarget] touch the
// filesystem; everything else is a pure function of its inputs, which keeps
// each stage independently testable.
package library
