// Package rules ties conditions and actions into named rules and ordered
// rule sets. Rule order is priority: the engine applies the first rule
// whose condition matches a candidate path and skips the rest. Each rule
// also accumulates the ignore paths its actions introduce, so the engine
// never evaluates rules against their own output locations.
package rules
