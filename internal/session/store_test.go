package session

import (
	"sync"
	"testing"

	"github.com/mkorchagin/ConsultBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_GetMissing(t *testing.T) {
	s := NewStore()

	_, ok := s.Get(100)

	assert.False(t, ok)
}

func TestStore_SetAwaitingProof(t *testing.T) {
	s := NewStore()

	s.SetAwaitingProof(100, 5)

	sess, ok := s.Get(100)
	require.True(t, ok)
	assert.Equal(t, domain.StageAwaitingProof, sess.Stage)
	assert.Equal(t, int64(5), sess.SlotID)
}

func TestStore_SetAwaitingSlotTime(t *testing.T) {
	s := NewStore()

	s.SetAwaitingSlotTime(100)

	sess, ok := s.Get(100)
	require.True(t, ok)
	assert.Equal(t, domain.StageAwaitingSlotTime, sess.Stage)
	assert.Zero(t, sess.SlotID)
}

func TestStore_Clear(t *testing.T) {
	s := NewStore()

	s.SetAwaitingProof(100, 5)
	s.Clear(100)

	_, ok := s.Get(100)
	assert.False(t, ok)
}

func TestStore_OverwriteStage(t *testing.T) {
	s := NewStore()

	s.SetAwaitingProof(100, 5)
	s.SetAwaitingSlotTime(100)

	sess, ok := s.Get(100)
	require.True(t, ok)
	assert.Equal(t, domain.StageAwaitingSlotTime, sess.Stage)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			s.SetAwaitingProof(id, id*10)
			s.Get(id)
			s.Clear(id)
		}(int64(i))
	}
	wg.Wait()

	for i := int64(0); i < 50; i++ {
		_, ok := s.Get(i)
		assert.False(t, ok)
	}
}
