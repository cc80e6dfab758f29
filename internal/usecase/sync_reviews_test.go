package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/floobyte/site-api/internal/entity"
	"github.com/floobyte/site-api/internal/infra/integration/googleplaces"
	"github.com/floobyte/site-api/internal/infra/integration/trustpilot"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) List(ctx context.Context) ([]entity.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Review), args.Error(1)
}

func (m *MockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) Get(ctx context.Context, key string) (*entity.Setting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Setting), args.Error(1)
}

func (m *MockSettingRepository) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

type MockGooglePlacesGateway struct {
	mock.Mock
}

func (m *MockGooglePlacesGateway) FetchPlaceReviews(ctx context.Context, placeID, apiKey string) ([]googleplaces.Review, error) {
	args := m.Called(ctx, placeID, apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]googleplaces.Review), args.Error(1)
}

type MockTrustpilotGateway struct {
	mock.Mock
}

func (m *MockTrustpilotGateway) FetchBusinessUnitReviews(ctx context.Context, businessUnitID, accessToken string) ([]trustpilot.Review, error) {
	args := m.Called(ctx, businessUnitID, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trustpilot.Review), args.Error(1)
}

func settingValue(v string) *entity.Setting {
	return &entity.Setting{Key: "k", Value: &v}
}

func newSyncUC(reviews *MockReviewRepository, settings *MockSettingRepository, google *MockGooglePlacesGateway, tp *MockTrustpilotGateway, envKey, envToken string) *SyncReviewsUseCase {
	return NewSyncReviewsUseCase(reviews, settings, google, tp, envKey, envToken)
}

func TestSyncReviewsInvalidSource(t *testing.T) {
	uc := newSyncUC(new(MockReviewRepository), new(MockSettingRepository), new(MockGooglePlacesGateway), new(MockTrustpilotGateway), "", "")

	_, err := uc.Execute(context.Background(), SyncReviewsInput{Source: "yelp"})

	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
	assert.Equal(t, "Invalid source. Use 'google' or 'trustpilot'", err.Error())
}

func TestSyncGoogleMissingCredentials(t *testing.T) {
	settings := new(MockSettingRepository)
	settings.On("Get", mock.Anything, "google.placeId").Return(nil, entity.ErrNotFound)
	settings.On("Get", mock.Anything, "google.apiKey").Return(nil, entity.ErrNotFound)

	google := new(MockGooglePlacesGateway)
	uc := newSyncUC(new(MockReviewRepository), settings, google, new(MockTrustpilotGateway), "", "")

	_, err := uc.Execute(context.Background(), SyncReviewsInput{Source: "google"})

	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
	assert.Equal(t, "Missing Google placeId or apiKey", err.Error())
	google.AssertNotCalled(t, "FetchPlaceReviews")
}

func TestSyncGoogleBodyCredentialsWinOverEnvAndSettings(t *testing.T) {
	ctx := context.Background()
	reviews := new(MockReviewRepository)
	reviews.On("Create", ctx, mock.Anything).Return(nil)

	google := new(MockGooglePlacesGateway)
	google.On("FetchPlaceReviews", ctx, "body-place", "body-key").Return([]googleplaces.Review{
		{Author: "Alice", Rating: 5, Text: "Great"},
	}, nil)

	uc := newSyncUC(reviews, new(MockSettingRepository), google, new(MockTrustpilotGateway), "env-key", "")

	count, err := uc.Execute(ctx, SyncReviewsInput{
		Source:  "google",
		PlaceID: "body-place",
		APIKey:  "body-key",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, count)
	google.AssertCalled(t, "FetchPlaceReviews", ctx, "body-place", "body-key")
}

func TestSyncGoogleFallsBackToSettings(t *testing.T) {
	ctx := context.Background()
	reviews := new(MockReviewRepository)
	reviews.On("Create", ctx, mock.Anything).Return(nil)

	settings := new(MockSettingRepository)
	settings.On("Get", mock.Anything, "google.placeId").Return(settingValue("stored-place"), nil)
	settings.On("Get", mock.Anything, "google.apiKey").Return(settingValue("stored-key"), nil)

	google := new(MockGooglePlacesGateway)
	google.On("FetchPlaceReviews", ctx, "stored-place", "stored-key").Return([]googleplaces.Review{}, nil)

	uc := newSyncUC(reviews, settings, google, new(MockTrustpilotGateway), "", "")

	count, err := uc.Execute(ctx, SyncReviewsInput{Source: "google"})

	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestSyncGoogleEnvKeyBeatsStoredKey(t *testing.T) {
	ctx := context.Background()
	reviews := new(MockReviewRepository)

	settings := new(MockSettingRepository)
	settings.On("Get", mock.Anything, "google.placeId").Return(settingValue("stored-place"), nil)

	google := new(MockGooglePlacesGateway)
	google.On("FetchPlaceReviews", ctx, "stored-place", "env-key").Return([]googleplaces.Review{}, nil)

	uc := newSyncUC(reviews, settings, google, new(MockTrustpilotGateway), "env-key", "")

	_, err := uc.Execute(ctx, SyncReviewsInput{Source: "google"})

	assert.NoError(t, err)
	google.AssertCalled(t, "FetchPlaceReviews", ctx, "stored-place", "env-key")
	settings.AssertNotCalled(t, "Get", mock.Anything, "google.apiKey")
}

func TestSyncGoogleCapsAtTwenty(t *testing.T) {
	ctx := context.Background()
	reviews := new(MockReviewRepository)
	reviews.On("Create", ctx, mock.Anything).Return(nil)

	fetched := make([]googleplaces.Review, 0, 30)
	for i := 0; i < 30; i++ {
		fetched = append(fetched, googleplaces.Review{Author: fmt.Sprintf("a%d", i), Rating: 4})
	}

	google := new(MockGooglePlacesGateway)
	google.On("FetchPlaceReviews", ctx, "p", "k").Return(fetched, nil)

	uc := newSyncUC(reviews, new(MockSettingRepository), google, new(MockTrustpilotGateway), "", "")

	count, err := uc.Execute(ctx, SyncReviewsInput{Source: "google", PlaceID: "p", APIKey: "k"})

	assert.NoError(t, err)
	assert.Equal(t, 20, count)
	reviews.AssertNumberOfCalls(t, "Create", 20)
}

func TestSyncGoogleAnonymousAuthorFallback(t *testing.T) {
	ctx := context.Background()
	var inserted []*entity.Review
	reviews := new(MockReviewRepository)
	reviews.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		inserted = append(inserted, args.Get(1).(*entity.Review))
	}).Return(nil)

	google := new(MockGooglePlacesGateway)
	google.On("FetchPlaceReviews", ctx, "p", "k").Return([]googleplaces.Review{
		{Author: "", Rating: 3, Text: ""},
	}, nil)

	uc := newSyncUC(reviews, new(MockSettingRepository), google, new(MockTrustpilotGateway), "", "")

	count, err := uc.Execute(ctx, SyncReviewsInput{Source: "google", PlaceID: "p", APIKey: "k"})

	assert.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, "Anonymous", inserted[0].Author)
	assert.Equal(t, "Google", inserted[0].Source)
	assert.Nil(t, inserted[0].Text)
}

func TestSyncGoogleUpstreamFailure(t *testing.T) {
	ctx := context.Background()
	google := new(MockGooglePlacesGateway)
	google.On("FetchPlaceReviews", ctx, "p", "k").Return(nil, errors.New("status 403"))

	uc := newSyncUC(new(MockReviewRepository), new(MockSettingRepository), google, new(MockTrustpilotGateway), "", "")

	_, err := uc.Execute(ctx, SyncReviewsInput{Source: "google", PlaceID: "p", APIKey: "k"})

	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
	assert.Equal(t, "Failed to fetch Google Reviews", err.Error())
}

func TestSyncTrustpilotSuccess(t *testing.T) {
	ctx := context.Background()
	var inserted []*entity.Review
	reviews := new(MockReviewRepository)
	reviews.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		inserted = append(inserted, args.Get(1).(*entity.Review))
	}).Return(nil)

	tp := new(MockTrustpilotGateway)
	tp.On("FetchBusinessUnitReviews", ctx, "bu-1", "token").Return([]trustpilot.Review{
		{Author: "Bob", Rating: 4, Text: "Solid work"},
		{Author: "", Rating: 5, Text: ""},
	}, nil)

	uc := newSyncUC(reviews, new(MockSettingRepository), new(MockGooglePlacesGateway), tp, "", "token")

	count, err := uc.Execute(ctx, SyncReviewsInput{Source: "Trustpilot", BusinessUnitID: "bu-1"})

	assert.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, "Bob", inserted[0].Author)
	assert.Equal(t, "Trustpilot", inserted[0].Source)
	assert.Equal(t, "Trustpilot User", inserted[1].Author)
}

func TestSyncTrustpilotMissingCredentials(t *testing.T) {
	settings := new(MockSettingRepository)
	settings.On("Get", mock.Anything, "trustpilot.businessUnitId").Return(nil, entity.ErrNotFound)
	settings.On("Get", mock.Anything, "trustpilot.accessToken").Return(nil, entity.ErrNotFound)

	uc := newSyncUC(new(MockReviewRepository), settings, new(MockGooglePlacesGateway), new(MockTrustpilotGateway), "", "")

	_, err := uc.Execute(context.Background(), SyncReviewsInput{Source: "trustpilot"})

	assert.Error(t, err)
	assert.Equal(t, "Missing Trustpilot businessUnitId or accessToken", err.Error())
}

func TestSyncInsertFailureIsTechnical(t *testing.T) {
	ctx := context.Background()
	reviews := new(MockReviewRepository)
	reviews.On("Create", ctx, mock.Anything).Return(errors.New("disk full"))

	google := new(MockGooglePlacesGateway)
	google.On("FetchPlaceReviews", ctx, "p", "k").Return([]googleplaces.Review{
		{Author: "Alice", Rating: 5},
	}, nil)

	uc := newSyncUC(reviews, new(MockSettingRepository), google, new(MockTrustpilotGateway), "", "")

	_, err := uc.Execute(ctx, SyncReviewsInput{Source: "google", PlaceID: "p", APIKey: "k"})

	assert.Error(t, err)
	assert.True(t, IsTechnicalError(err))
	assert.Equal(t, "Failed to sync reviews", err.Error())
}
