// Package memory implements the per-session conversation memory: a bounded
// log of user/assistant turns and an independent bounded log of tool
// results. Both logs evict oldest-first once their fixed capacity is
// reached, never reorder surviving entries, and never mutate past entries.
package memory
