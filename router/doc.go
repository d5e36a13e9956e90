// Package router implements the stage-1 classifier: a cheap, terse
// language model call that decides whether a query needs a tool at all and,
// if so, suggests a candidate. The router never executes tools and always
// fails open — on any gateway or parse failure it answers "no tool" so a
// broken classification can never block a turn.
package router
