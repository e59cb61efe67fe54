package service

import (
	"context"
	"testing"

	"github.com/PostHog/birthday-bot/internal/domain"
	"github.com/PostHog/birthday-bot/internal/domain/entity"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_birthdayService_SetBirthday(t *testing.T) {
	type args struct {
		memberID string
		date     string
	}
	tests := []struct {
		name      string
		args      args
		buildMock func(mocks allMocks, args args)
		wantErr   error
	}{
		{
			name: "Should save a valid date",
			args: args{memberID: "U123456789", date: "08-06"},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockBirthdayRepo.EXPECT().
					Upsert(args.memberID, "08-06").
					Return(nil).Times(1)
			},
		},
		{
			name: "Should accept the leap day",
			args: args{memberID: "U123456789", date: "29-02"},
			buildMock: func(mocks allMocks, args args) {
				mocks.mockBirthdayRepo.EXPECT().
					Upsert(args.memberID, "29-02").
					Return(nil).Times(1)
			},
		},
		{
			name:    "Should reject a date with the wrong shape",
			args:    args{memberID: "U123456789", date: "8-6"},
			wantErr: domain.ErrInvalidDate,
		},
		{
			name:    "Should reject a day that does not exist",
			args:    args{memberID: "U123456789", date: "31-04"},
			wantErr: domain.ErrInvalidDate,
		},
		{
			name:    "Should reject a month that does not exist",
			args:    args{memberID: "U123456789", date: "01-13"},
			wantErr: domain.ErrInvalidDate,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			if tt.buildMock != nil {
				tt.buildMock(m, tt.args)
			}

			svc := newTestBirthdayService(m)
			err := svc.SetBirthday(tt.args.memberID, tt.args.date)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_birthdayService_SetBirthdayByName(t *testing.T) {
	members := []slack.User{
		{ID: "U_JANE_DOE", RealName: "Jane Doe"},
		{ID: "U_JANE_SMITH", RealName: "Jane Smith", Profile: slack.UserProfile{FirstName: "Jane"}},
	}

	t.Run("Should resolve an exact real name match", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockSlackClient.EXPECT().
			ListUsers(gomock.Any()).
			Return(members, false, nil).Times(1)
		m.mockBirthdayRepo.EXPECT().
			Upsert("U_JANE_DOE", "08-06").
			Return(nil).Times(1)

		svc := newTestBirthdayService(m)
		memberID, err := svc.SetBirthdayByName(context.Background(), "Jane", "Doe", "08-06")

		require.NoError(t, err)
		assert.Equal(t, "U_JANE_DOE", memberID)
	})

	t.Run("Should report not found for an ambiguous first name", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		// Two Janes, no matching last name: every stage fails or is ambiguous.
		m.mockSlackClient.EXPECT().
			ListUsers(gomock.Any()).
			Return(members, false, nil).Times(1)

		svc := newTestBirthdayService(m)
		_, err := svc.SetBirthdayByName(context.Background(), "Jane", "Roe", "08-06")

		require.ErrorIs(t, err, domain.ErrMemberNotFound)
	})

	t.Run("Should reject the date before scanning the directory", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		svc := newTestBirthdayService(m)
		_, err := svc.SetBirthdayByName(context.Background(), "Jane", "Doe", "99-99")

		require.ErrorIs(t, err, domain.ErrInvalidDate)
	})
}

func Test_birthdayService_SubmitTribute(t *testing.T) {
	t.Run("Should store tribute for a known celebrant", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockBirthdayRepo.EXPECT().
			Exists("U_CELEBRANT").
			Return(true, nil).Times(1)
		m.mockTributeRepo.EXPECT().
			Add(gomock.Any()).
			DoAndReturn(func(tribute *entity.Tribute) (bool, error) {
				require.Equal(t, "U_CELEBRANT", tribute.CelebrantID)
				require.Equal(t, "U_SENDER", tribute.SenderID)
				require.Equal(t, "Sender Name", tribute.SenderName)
				require.Equal(t, "Happy birthday!", tribute.Message)
				require.Equal(t, "https://example.com/cake.gif", tribute.MediaURL)
				return true, nil
			}).Times(1)

		svc := newTestBirthdayService(m)
		inserted, err := svc.SubmitTribute("U_CELEBRANT", "U_SENDER", "Sender Name", "Happy birthday!", "https://example.com/cake.gif")

		require.NoError(t, err)
		assert.True(t, inserted)
	})

	t.Run("Should report duplicate as a no-op, not an error", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockBirthdayRepo.EXPECT().
			Exists("U_CELEBRANT").
			Return(true, nil).Times(1)
		m.mockTributeRepo.EXPECT().
			Add(gomock.Any()).
			Return(false, nil).Times(1)

		svc := newTestBirthdayService(m)
		inserted, err := svc.SubmitTribute("U_CELEBRANT", "U_SENDER", "Sender Name", "Happy birthday!", "")

		require.NoError(t, err)
		assert.False(t, inserted)
	})

	t.Run("Should refuse tribute for unknown celebrant", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockBirthdayRepo.EXPECT().
			Exists("U_NOBODY").
			Return(false, nil).Times(1)

		svc := newTestBirthdayService(m)
		_, err := svc.SubmitTribute("U_NOBODY", "U_SENDER", "Sender Name", "Happy birthday!", "")

		require.ErrorIs(t, err, domain.ErrCelebrantUnknown)
	})
}

func Test_birthdayService_SubmitDescription(t *testing.T) {
	t.Run("Should store description for a known celebrant", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockBirthdayRepo.EXPECT().
			Exists("U_CELEBRANT").
			Return(true, nil).Times(1)
		m.mockDescriptionRepo.EXPECT().
			Add(gomock.Any()).
			DoAndReturn(func(description *entity.Description) (bool, error) {
				require.Equal(t, "U_CELEBRANT", description.CelebrantID)
				require.Equal(t, "Always helpful", description.Text)
				return true, nil
			}).Times(1)

		svc := newTestBirthdayService(m)
		inserted, err := svc.SubmitDescription("U_CELEBRANT", "U_SENDER", "Sender Name", "Always helpful")

		require.NoError(t, err)
		assert.True(t, inserted)
	})

	t.Run("Should refuse description for unknown celebrant", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockBirthdayRepo.EXPECT().
			Exists("U_NOBODY").
			Return(false, nil).Times(1)

		svc := newTestBirthdayService(m)
		_, err := svc.SubmitDescription("U_NOBODY", "U_SENDER", "Sender Name", "Always helpful")

		require.ErrorIs(t, err, domain.ErrCelebrantUnknown)
	})
}
