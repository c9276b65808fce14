package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSetAchieved_SetsDateOnce(t *testing.T) {
	t.Parallel()

	m := Milestone{}
	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	later := first.Add(48 * time.Hour)

	m.SetAchieved(true, first)
	require.True(t, m.IsAchieved)
	require.NotNil(t, m.AchievedDate)
	require.Equal(t, first, *m.AchievedDate)

	// A later update with the flag still set must not move the date.
	m.SetAchieved(true, later)
	require.Equal(t, first, *m.AchievedDate)
}

func TestSetAchieved_Sticky(t *testing.T) {
	t.Parallel()

	m := Milestone{}
	now := time.Now()

	m.SetAchieved(false, now)
	require.False(t, m.IsAchieved)
	require.Nil(t, m.AchievedDate)

	m.SetAchieved(true, now)
	m.SetAchieved(false, now.Add(time.Hour))
	require.True(t, m.IsAchieved, "achieved milestone must not return to unachieved")
	require.Equal(t, now, *m.AchievedDate)
}

func TestCanBeApproved(t *testing.T) {
	t.Parallel()

	m := Milestone{}
	require.False(t, m.CanBeApproved())

	m.SetAchieved(true, time.Now())
	require.True(t, m.CanBeApproved())
}

func TestRecordDecision_OverwritesPriorDecision(t *testing.T) {
	t.Parallel()

	m := Milestone{}
	m.SetAchieved(true, time.Now())

	firstApprover := uuid.New()
	firstTime := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	m.RecordDecision(true, "looks good", firstApprover, firstTime)

	require.True(t, m.IsApproved)
	require.Equal(t, "looks good", m.ApprovalComments)
	require.Equal(t, firstTime, *m.ApprovedDate)
	require.Equal(t, firstApprover, *m.ApprovedByUserID)

	// A re-review reverses the decision and replaces approver, date, comments.
	secondApprover := uuid.New()
	secondTime := firstTime.Add(72 * time.Hour)
	m.RecordDecision(false, "missing deliverables", secondApprover, secondTime)

	require.False(t, m.IsApproved)
	require.Equal(t, "missing deliverables", m.ApprovalComments)
	require.Equal(t, secondTime, *m.ApprovedDate)
	require.Equal(t, secondApprover, *m.ApprovedByUserID)
	require.True(t, m.IsAchieved, "re-review must not touch the achieved flag")
}
