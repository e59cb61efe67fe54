package service

import (
	"context"
	"testing"
	"time"

	"github.com/PostHog/birthday-bot/internal/domain/entity"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestScheduler(m allMocks) *scheduler {
	birthdays := newTestBirthdayService(m)
	return newScheduler(birthdays, m.mockDataManager, m.mockSlackClient, testConfig())
}

func Test_newScheduler(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	sched := newTestScheduler(m)

	require.NotNil(t, sched)
	assert.Equal(t, "09:00", sched.scheduleTime)
	assert.Equal(t, time.UTC, sched.loc)
	assert.False(t, sched.running)
}

func Test_scheduler_RunAt_cleanup(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Should remove members absent from the workspace", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		members := []slack.User{
			{ID: "U_PRESENT"},
			{ID: "U_DEACTIVATED", Deleted: true},
		}
		m.mockSlackClient.EXPECT().
			ListUsers(gomock.Any()).
			Return(members, false, nil).Times(1)

		stored := []*entity.Birthday{
			{MemberID: "U_PRESENT", BirthDate: "25-12"},
			{MemberID: "U_DEACTIVATED", BirthDate: "25-12"},
			{MemberID: "U_GONE", BirthDate: "25-12"},
		}
		// Cleanup listing, then the dispatch listing.
		m.mockBirthdayRepo.EXPECT().
			List().
			Return(stored, nil).Times(1)
		m.mockBirthdayRepo.EXPECT().
			Delete("U_DEACTIVATED").
			Return(nil).Times(1)
		m.mockBirthdayRepo.EXPECT().
			Delete("U_GONE").
			Return(nil).Times(1)
		m.mockSlackClient.EXPECT().
			PostMessage("C_ADMIN", gomock.Any()).
			Return("C_ADMIN", "1.2", nil).Times(1)

		m.mockBirthdayRepo.EXPECT().
			List().
			Return(stored[:1], nil).Times(1)

		sched := newTestScheduler(m)
		err := sched.RunAt(context.Background(), now)

		require.NoError(t, err)
	})

	t.Run("Should skip cleanup when the member listing is partial", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockSlackClient.EXPECT().
			ListUsers(gomock.Any()).
			Return([]slack.User{{ID: "U_PRESENT"}}, true, nil).Times(1)

		// Only the dispatch listing, no deletes.
		m.mockBirthdayRepo.EXPECT().
			List().
			Return(nil, nil).Times(1)

		sched := newTestScheduler(m)
		err := sched.RunAt(context.Background(), now)

		require.NoError(t, err)
	})

	t.Run("Should abort the run when membership cannot be fetched", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockSlackClient.EXPECT().
			ListUsers(gomock.Any()).
			Return(nil, false, assert.AnError).Times(1)

		sched := newTestScheduler(m)
		err := sched.RunAt(context.Background(), now)

		require.Error(t, err)
	})
}

func Test_scheduler_RunAt_dispatch(t *testing.T) {
	// 2024-06-01: 08-06 is 7 days out, 02-06 is tomorrow, 01-06 is today.
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Should trigger collection seven days ahead", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		expectEmptyMembership(m)
		m.mockBirthdayRepo.EXPECT().
			List().
			Return([]*entity.Birthday{{MemberID: "U_CELEBRANT", BirthDate: "08-06"}}, nil).Times(1)

		// CollectTributes: placeholder, directory, celebrant info, own id.
		m.mockBirthdayRepo.EXPECT().
			EnsurePlaceholder("U_CELEBRANT").
			Return(nil).Times(1)
		m.mockSlackClient.EXPECT().
			ListUsers(gomock.Any()).
			Return(nil, false, nil).Times(1)
		m.mockSlackClient.EXPECT().
			GetUserInfo("U_CELEBRANT").
			Return(&slack.User{ID: "U_CELEBRANT"}, nil).Times(1)
		m.mockSlackClient.EXPECT().
			AuthTest().
			Return(&slack.AuthTestResponse{UserID: "U_BOT_SELF"}, nil).Times(1)

		sched := newTestScheduler(m)
		err := sched.RunAt(context.Background(), now)

		require.NoError(t, err)
	})

	t.Run("Should post the admin digest one day ahead", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		expectEmptyMembership(m)
		m.mockBirthdayRepo.EXPECT().
			List().
			Return([]*entity.Birthday{{MemberID: "U_CELEBRANT", BirthDate: "02-06"}}, nil).Times(1)

		m.mockTributeRepo.EXPECT().
			CountUndelivered("U_CELEBRANT").
			Return(3, nil).Times(1)
		m.mockSlackClient.EXPECT().
			PostMessage("C_ADMIN", gomock.Any()).
			Return("C_ADMIN", "1.2", nil).Times(1)

		sched := newTestScheduler(m)
		err := sched.RunAt(context.Background(), now)

		require.NoError(t, err)
	})

	t.Run("Should post the celebration on the day", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		expectEmptyMembership(m)
		m.mockBirthdayRepo.EXPECT().
			List().
			Return([]*entity.Birthday{{MemberID: "U_CELEBRANT", BirthDate: "01-06"}}, nil).Times(1)

		// PostCelebration with nothing stored posts nothing.
		m.mockDescriptionRepo.EXPECT().
			ListUndelivered("U_CELEBRANT").
			Return(nil, nil).Times(1)
		m.mockTributeRepo.EXPECT().
			ListUndelivered("U_CELEBRANT").
			Return(nil, nil).Times(1)

		sched := newTestScheduler(m)
		err := sched.RunAt(context.Background(), now)

		require.NoError(t, err)
	})

	t.Run("Should ignore offsets that are not actionable", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		expectEmptyMembership(m)
		m.mockBirthdayRepo.EXPECT().
			List().
			Return([]*entity.Birthday{
				{MemberID: "U_SOON", BirthDate: "05-06"},
				{MemberID: "U_PLACEHOLDER", BirthDate: "00-00"},
				{MemberID: "U_FAR", BirthDate: "25-12"},
			}, nil).Times(1)

		sched := newTestScheduler(m)
		err := sched.RunAt(context.Background(), now)

		require.NoError(t, err)
	})

	t.Run("Should keep going when one record fails", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		expectEmptyMembership(m)
		m.mockBirthdayRepo.EXPECT().
			List().
			Return([]*entity.Birthday{
				{MemberID: "U_FAILING", BirthDate: "02-06"},
				{MemberID: "U_HEALTHY", BirthDate: "02-06"},
			}, nil).Times(1)

		m.mockTributeRepo.EXPECT().
			CountUndelivered("U_FAILING").
			Return(0, assert.AnError).Times(1)

		// The second record is still dispatched.
		m.mockTributeRepo.EXPECT().
			CountUndelivered("U_HEALTHY").
			Return(1, nil).Times(1)
		m.mockSlackClient.EXPECT().
			PostMessage("C_ADMIN", gomock.Any()).
			Return("C_ADMIN", "1.2", nil).Times(1)

		sched := newTestScheduler(m)
		err := sched.RunAt(context.Background(), now)

		require.NoError(t, err)
	})
}

// expectEmptyMembership stubs the cleanup phase to a no-op: an empty
// workspace listing followed by the cleanup's birthday listing.
func expectEmptyMembership(m allMocks) {
	m.mockSlackClient.EXPECT().
		ListUsers(gomock.Any()).
		Return(nil, false, nil).Times(1)
	m.mockBirthdayRepo.EXPECT().
		List().
		Return(nil, nil).Times(1)
}
