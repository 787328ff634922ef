// Package menu implements the item-detail orchestrator: prompt construction,
// the bounded two-tier retry policy over the generation provider, response
// validation and repair, and synthesis of local fallback results. The policy
// deliberately favors always answering with a structurally valid result over
// propagating upstream instability to the caller.
package menu
