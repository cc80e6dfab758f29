package usecase

import (
	"context"

	"github.com/floobyte/site-api/internal/infra/integration/googleplaces"
	"github.com/floobyte/site-api/internal/infra/integration/trustpilot"
)

type GooglePlacesGateway interface {
	FetchPlaceReviews(ctx context.Context, placeID, apiKey string) ([]googleplaces.Review, error)
}

type TrustpilotGateway interface {
	FetchBusinessUnitReviews(ctx context.Context, businessUnitID, accessToken string) ([]trustpilot.Review, error)
}
