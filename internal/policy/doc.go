// Package policy implements the merge-policy evaluation engine: branch
// classification against hotfix/feature patterns, the ordered release workflow,
// the merge-permission rules, and the blocked-stage detector that consults
// branch ancestry.
//
// Blockage detection only inspects the immediately next stage of the workflow.
// A backlog that is two or more stages deep is not detected when evaluating a
// merge into the first blocked stage. This is a known limitation, kept because
// widening the check would change observable behavior.
package policy
