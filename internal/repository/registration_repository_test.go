package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lingua/internal/model"
)

func TestRegistrationRepository_OptionalFieldsStayEmpty(t *testing.T) {
	repo := NewRegistrationRepository(openTestDB(t, "reg_optional"))
	ctx := context.Background()

	reg := &model.CourseRegistration{
		UserName:    "A",
		Email:       "a@x.com",
		CourseID:    "arabic-101",
		CourseTitle: "Arabic for Beginners",
	}
	require.NoError(t, repo.Create(ctx, reg))
	assert.NotZero(t, reg.ID)

	regs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Empty(t, regs[0].Phone)
	assert.Empty(t, regs[0].Experience)
	assert.Empty(t, regs[0].Goals)
}

func TestMessageRepository_ListNewestFirst(t *testing.T) {
	repo := NewMessageRepository(openTestDB(t, "msg_order"))
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m1 := &model.Message{Name: "A", Email: "a@x.com", Body: "first", CreatedAt: base}
	m2 := &model.Message{Name: "B", Email: "b@x.com", Body: "second", CreatedAt: base.Add(time.Second)}
	require.NoError(t, repo.Create(ctx, m1))
	require.NoError(t, repo.Create(ctx, m2))

	// Same sender twice is fine: no uniqueness on messages.
	require.NoError(t, repo.Create(ctx, &model.Message{Name: "A", Email: "a@x.com", Body: "again", CreatedAt: base.Add(2 * time.Second)}))

	msgs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "again", msgs[0].Body)
	assert.Equal(t, "second", msgs[1].Body)
	assert.Equal(t, "first", msgs[2].Body)
}
