// SPDX-License-Identifier: EPL-2.0

// Package signal defines the pull-based execution contract every node in a
// synthesis graph obeys, plus the basic combinators for composing nodes.
//
// # The pull contract
//
// A node exposes three operations:
//
//	type Signal interface {
//	    Get() Frame  // current frame, idempotent
//	    Advance()    // move state forward exactly one sample
//	    Retrigger()  // reset to the initial configured phase
//	}
//
// Get must not mutate the node, so the same node can be read several times
// while producing one output sample, for example when one oscillator feeds
// two separate effect chains. All mutation happens in Advance. One output
// sample is exactly one Get followed by one Advance on the root:
//
//	for i := range out {
//	    out[i] = root.Get()
//	    root.Advance()
//	}
//
// which is what Render does for you.
//
// # Composite nodes
//
// A combinator forwards Advance and Retrigger to every child in a fixed
// order (slice order for Mix, left then right for StereoPair) and computes
// Get purely from its children's Get results. Children are never advanced
// from inside Get.
//
// # Capabilities
//
// Nodes with a finite lifetime additionally implement Stop (begin a graceful
// tail, e.g. an envelope release) and Done (only silence from now on). The
// Voice interface bundles all five methods and is what the poly package
// manages.
//
// # Shared readers
//
// Nodes are exclusively owned by their parent. When one generator must feed
// two chains, wrap it in a Ref for the second chain: Ref forwards Get only,
// so the owner side remains solely responsible for advancing.
//
// The graph is single-threaded and cooperative. Nothing here locks; a host
// mixing graph construction with a realtime callback must serialize access
// itself.
package signal
