// Package fallback chains the local balancer with an external equation solver.
//
// The local balancer runs first. When it reports any failure the raw equation
// and the caller's language preference are handed to a Solver (typically a
// generative-AI service, kept outside this module); its answer is returned as
// already-rendered text. Inputs rejected by the balancer's input guard are
// never forwarded. When both fail, Outcome carries a localized failure message.
package fallback
