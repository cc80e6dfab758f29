package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/floobyte/site-api/internal/entity"
)

// Caps on how many reviews one sync call will insert per source.
const (
	googleReviewCap     = 20
	trustpilotReviewCap = 50
)

type SyncReviewsInput struct {
	Source         string `json:"source"`
	PlaceID        string `json:"placeId"`
	APIKey         string `json:"apiKey"`
	BusinessUnitID string `json:"businessUnitId"`
	AccessToken    string `json:"accessToken"`
}

// SyncReviewsUseCase pulls reviews from an external source and inserts each
// one as an internal Review row. Inserts are not wrapped in a transaction
// and nothing de-duplicates: re-running a sync re-inserts the same reviews.
type SyncReviewsUseCase struct {
	Reviews    entity.ReviewRepository
	Settings   entity.SettingRepository
	Google     GooglePlacesGateway
	Trustpilot TrustpilotGateway

	// Deployment-level fallbacks, used between the request body and the
	// settings store in the credential lookup order.
	GoogleAPIKey          string
	TrustpilotAccessToken string
}

func NewSyncReviewsUseCase(
	reviews entity.ReviewRepository,
	settings entity.SettingRepository,
	google GooglePlacesGateway,
	trustpilot TrustpilotGateway,
	googleAPIKey, trustpilotAccessToken string,
) *SyncReviewsUseCase {
	return &SyncReviewsUseCase{
		Reviews:               reviews,
		Settings:              settings,
		Google:                google,
		Trustpilot:            trustpilot,
		GoogleAPIKey:          googleAPIKey,
		TrustpilotAccessToken: trustpilotAccessToken,
	}
}

func (uc *SyncReviewsUseCase) Execute(ctx context.Context, input SyncReviewsInput) (int, error) {
	switch strings.ToLower(input.Source) {
	case "google":
		return uc.syncGoogle(ctx, input)
	case "trustpilot":
		return uc.syncTrustpilot(ctx, input)
	default:
		return 0, &DomainError{Code: CodeValidation, Message: "Invalid source. Use 'google' or 'trustpilot'"}
	}
}

func (uc *SyncReviewsUseCase) syncGoogle(ctx context.Context, input SyncReviewsInput) (int, error) {
	placeID := input.PlaceID
	if placeID == "" {
		placeID = uc.setting(ctx, "google.placeId")
	}
	apiKey := input.APIKey
	if apiKey == "" {
		apiKey = uc.GoogleAPIKey
	}
	if apiKey == "" {
		apiKey = uc.setting(ctx, "google.apiKey")
	}
	if placeID == "" || apiKey == "" {
		return 0, &DomainError{Code: CodeValidation, Message: "Missing Google placeId or apiKey"}
	}

	fetched, err := uc.Google.FetchPlaceReviews(ctx, placeID, apiKey)
	if err != nil {
		slog.Error("google review fetch failed", "error", err)
		return 0, &DomainError{Code: CodeUpstream, Message: "Failed to fetch Google Reviews"}
	}
	if len(fetched) > googleReviewCap {
		fetched = fetched[:googleReviewCap]
	}

	for _, r := range fetched {
		review := &entity.Review{
			Author: defaultString(r.Author, "Anonymous"),
			Rating: r.Rating,
			Text:   optional(r.Text),
			Source: "Google",
		}
		if err := uc.Reviews.Create(ctx, review); err != nil {
			slog.Error("failed to persist synced review", "source", "google", "error", err)
			return 0, &TechnicalError{Code: CodeDatabase, Message: "Failed to sync reviews"}
		}
	}
	return len(fetched), nil
}

func (uc *SyncReviewsUseCase) syncTrustpilot(ctx context.Context, input SyncReviewsInput) (int, error) {
	businessUnitID := input.BusinessUnitID
	if businessUnitID == "" {
		businessUnitID = uc.setting(ctx, "trustpilot.businessUnitId")
	}
	accessToken := input.AccessToken
	if accessToken == "" {
		accessToken = uc.TrustpilotAccessToken
	}
	if accessToken == "" {
		accessToken = uc.setting(ctx, "trustpilot.accessToken")
	}
	if businessUnitID == "" || accessToken == "" {
		return 0, &DomainError{Code: CodeValidation, Message: "Missing Trustpilot businessUnitId or accessToken"}
	}

	fetched, err := uc.Trustpilot.FetchBusinessUnitReviews(ctx, businessUnitID, accessToken)
	if err != nil {
		slog.Error("trustpilot review fetch failed", "error", err)
		return 0, &DomainError{Code: CodeUpstream, Message: "Failed to fetch Trustpilot Reviews"}
	}
	if len(fetched) > trustpilotReviewCap {
		fetched = fetched[:trustpilotReviewCap]
	}

	for _, r := range fetched {
		review := &entity.Review{
			Author: defaultString(r.Author, "Trustpilot User"),
			Rating: r.Rating,
			Text:   optional(r.Text),
			Source: "Trustpilot",
		}
		if err := uc.Reviews.Create(ctx, review); err != nil {
			slog.Error("failed to persist synced review", "source", "trustpilot", "error", err)
			return 0, &TechnicalError{Code: CodeDatabase, Message: "Failed to sync reviews"}
		}
	}
	return len(fetched), nil
}

func (uc *SyncReviewsUseCase) setting(ctx context.Context, key string) string {
	s, err := uc.Settings.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			slog.Warn("setting lookup failed", "key", key, "error", err)
		}
		return ""
	}
	if s.Value == nil {
		return ""
	}
	return *s.Value
}
