package service

import (
	"testing"
	"time"

	"github.com/PostHog/birthday-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type allMocks struct {
	mockDataManager     *mocks.MockDataManager
	mockBirthdayRepo    *mocks.MockBirthdayRepo
	mockTributeRepo     *mocks.MockTributeRepo
	mockDescriptionRepo *mocks.MockDescriptionRepo
	mockSlackClient     *mocks.MockSlackClient
	mockPoemGenerator   *mocks.MockPoemGenerator
}

func testConfig() Config {
	return Config{
		BirthdayChannelID: "C_BIRTHDAYS",
		AdminChannelID:    "C_ADMIN",
		ScheduleTime:      "09:00",
		Location:          time.UTC,
	}
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	birthdayRepo := mocks.NewMockBirthdayRepo(ctrl)
	dm.EXPECT().Birthday().Return(birthdayRepo).AnyTimes()

	tributeRepo := mocks.NewMockTributeRepo(ctrl)
	dm.EXPECT().Tribute().Return(tributeRepo).AnyTimes()

	descriptionRepo := mocks.NewMockDescriptionRepo(ctrl)
	dm.EXPECT().Description().Return(descriptionRepo).AnyTimes()

	slackClient := mocks.NewMockSlackClient(ctrl)
	poemGenerator := mocks.NewMockPoemGenerator(ctrl)

	m = allMocks{
		mockDataManager:     dm,
		mockBirthdayRepo:    birthdayRepo,
		mockTributeRepo:     tributeRepo,
		mockDescriptionRepo: descriptionRepo,
		mockSlackClient:     slackClient,
		mockPoemGenerator:   poemGenerator,
	}

	// validate service creation
	birthdayService := newBirthday(dm, slackClient, poemGenerator, testConfig())
	require.NotNil(t, birthdayService)

	return
}

func newTestBirthdayService(m allMocks) *birthdayService {
	return newBirthday(m.mockDataManager, m.mockSlackClient, m.mockPoemGenerator, testConfig())
}
