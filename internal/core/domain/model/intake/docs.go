// Package intake provides the domain model for the guided order-intake flow.
// It implements the linear state machine that collects the seven required
// order fields plus the optional photo decision, one inbound message at a
// time, before a single atomic commit.
//
// The package includes:
//   - Stage: the cursor of the flow, a strictly linear state machine with a
//     prompt per state
//   - Session: the per-(administrator, conversation) accumulator of in-progress
//     field values
//   - Draft: the collected fields handed to order creation on completion
//
// Sessions are deliberately ephemeral: they live in memory only, are lost on
// process restart, and are swept by the idle-expiry job when abandoned.
package intake
