package service

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/attendbot/slack-attendance-bot/internal/domain/contract"
	"github.com/attendbot/slack-attendance-bot/mocks"
)

type allMocks struct {
	mockDataManager      *mocks.MockDataManager
	mockVerificationRepo *mocks.MockVerificationRepo
	mockVacationRepo     *mocks.MockVacationRepo
	mockHolidayRepo      *mocks.MockHolidayRepo
	mockChatClient       *mocks.MockChatClient
	mockWebhookSender    *mocks.MockWebhookSender
}

func newServiceTestMock(t *testing.T) (m allMocks, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)

	dm := mocks.NewMockDataManager(ctrl)

	verificationRepo := mocks.NewMockVerificationRepo(ctrl)
	dm.EXPECT().Verification().Return(verificationRepo).AnyTimes()

	vacationRepo := mocks.NewMockVacationRepo(ctrl)
	dm.EXPECT().Vacation().Return(vacationRepo).AnyTimes()

	holidayRepo := mocks.NewMockHolidayRepo(ctrl)
	dm.EXPECT().Holiday().Return(holidayRepo).AnyTimes()

	// Transactions run the callback against the same mocked repos.
	dm.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(contract.DataManager) error) error {
			return fn(dm)
		},
	).AnyTimes()

	chatClient := mocks.NewMockChatClient(ctrl)
	webhookSender := mocks.NewMockWebhookSender(ctrl)

	m = allMocks{
		mockDataManager:      dm,
		mockVerificationRepo: verificationRepo,
		mockVacationRepo:     vacationRepo,
		mockHolidayRepo:      holidayRepo,
		mockChatClient:       chatClient,
		mockWebhookSender:    webhookSender,
	}

	return
}
