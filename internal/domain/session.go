package domain

type SessionStage string

const (
	StageIdle SessionStage = ""
	// StageAwaitingProof: the user claimed a slot and the next expected
	// input is a payment screenshot.
	StageAwaitingProof SessionStage = "awaiting_proof"
	// StageAwaitingSlotTime: the admin is entering a date/time for a new slot.
	StageAwaitingSlotTime SessionStage = "awaiting_slot_time"
)

// Session is the per-conversation state of an in-progress booking attempt.
// It lives only in process memory and is discarded on completion or reset.
type Session struct {
	Stage  SessionStage
	SlotID int64
}
