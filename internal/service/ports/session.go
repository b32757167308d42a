package ports

import "github.com/mkorchagin/ConsultBooker/internal/domain"

type SessionStore interface {
	Get(userID int64) (domain.Session, bool)
	SetAwaitingProof(userID, slotID int64)
	SetAwaitingSlotTime(userID int64)
	Clear(userID int64)
}
