// Package session persists register content between editor runs.
//
// A session is a single YAML document holding the generic registers, the
// nine rotating delete registers and register 0. File reads and writes the
// document; Saver batches the save requests the register Manager issues
// after each mutation so a burst of edits produces one write.
package session
