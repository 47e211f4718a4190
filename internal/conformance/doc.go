// Package conformance runs YAML-described case tables through the key
// expression algebra and renders a deterministic report.
//
// Case files live in testdata/*.yaml; each carries canonization, relation,
// and prefix-stripping cases with their expected outcomes. Tests assert the
// expectations directly and additionally compare the rendered report against
// a golden file, so a semantic drift shows up as a readable diff.
package conformance
