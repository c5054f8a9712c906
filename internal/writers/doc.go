// Package writers turns scan events into serialized reports.
//
// Design:
//   - Writers own all presentation knowledge (text lines, JSON/JSONL).
//   - Engine stays domain-only; Pipeline stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
