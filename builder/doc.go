// Package builder transforms track records into the weighted undirected
// artist-collaboration graph.
//
// Design contract (strict):
//
//   - One orchestrator: Build(records, opts...). Filters incomplete records,
//     parses artist fields, derives per-track pair sets and accumulates
//     weights into a core.Graph.
//   - Functional options resolve into an immutable config (no global state).
//   - Determinism: the same records and options produce an identical graph,
//     regardless of worker count — partial accumulators merge by summing
//     weights, and merging is commutative and associative.
//   - Safety: Build never panics; option constructors panic on nonsense
//     values (empty delimiter, non-positive worker count), which is a
//     programmer error caught at configuration time.
//
// Pairing rules (the heart of the package, see TrackPairs):
//
//   - Names are deduplicated (case-sensitive exact match) before pairing,
//     so "A;A;B" yields exactly one pair (A,B) — no self-pairs, no double
//     counting within one track.
//   - Fewer than two distinct names ⇒ the track contributes no edges.
//   - Every pair is emitted in canonical lexicographic order, so (a,b) and
//     (b,a) collapse into one aggregation key.
//   - A track with k distinct artists yields exactly C(k,2) pairs, each
//     contributing weight 1 from that track.
//
// Filtering (expected data noise, never fatal):
//
//   - Records with a blank identifier or blank artist field are skipped.
//   - Zero valid records yield an empty graph, not an error.
//
// Errors:
//
//	Build only fails if the underlying graph rejects an accumulation, which
//	the pairing rules make unreachable for well-formed pair sets; any such
//	failure is wrapped with "Build:" context and preserves core sentinels
//	for errors.Is.
package builder
