package gateway_api_client

import "caribcart-client/internal/core/domain"

// DTO for a listing as the gateway serves it. This structure must match the
// gateway's listing resource exactly.
type listingResponse struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Platform       string   `json:"platform"`
	Username       string   `json:"username"`
	FollowersCount int      `json:"followers_count"`
	EngagementRate float64  `json:"engagement_rate"`
	MonthlyViews   int      `json:"monthly_views"`
	Niche          string   `json:"niche"`
	Price          float64  `json:"price"`
	Description    string   `json:"description"`
	Verified       bool     `json:"verified"`
	Monetized      bool     `json:"monetized"`
	Country        string   `json:"country"`
	AgeRange       string   `json:"age_range"`
	Images         []string `json:"images"`
}

type balanceResponse struct {
	Earnings  float64 `json:"earnings"`
	Withdrawn float64 `json:"withdrawn"`
	Available float64 `json:"available"`
}

// DTO for the authenticated user-listing read.
type userListingsResponse struct {
	Listings []listingResponse `json:"listings"`
	Balance  balanceResponse   `json:"balance"`
}

// DTO for mutation responses.
type messageResponse struct {
	Message string `json:"message"`
}

// accountDetailsPayload is the JSON document sent as the `accountDetails`
// multipart field. Images is a pointer so the key can be omitted entirely
// on create, where no stored image exists yet.
type accountDetailsPayload struct {
	ID             string    `json:"id,omitempty"`
	Title          string    `json:"title"`
	Platform       string    `json:"platform"`
	Username       string    `json:"username"`
	FollowersCount int       `json:"followers_count"`
	EngagementRate float64   `json:"engagement_rate"`
	MonthlyViews   int       `json:"monthly_views"`
	Niche          string    `json:"niche"`
	Price          float64   `json:"price"`
	Description    string    `json:"description"`
	Verified       bool      `json:"verified"`
	Monetized      bool      `json:"monetized"`
	Country        string    `json:"country"`
	AgeRange       string    `json:"age_range"`
	Images         *[]string `json:"images,omitempty"`
}

// DTO for the credential submission request.
type credentialRequest struct {
	Credential []domain.FormField `json:"credential"`
	ListingID  string             `json:"listingId"`
}

// DTO for the withdrawal request.
type withdrawalRequest struct {
	Account []domain.FormField `json:"account"`
	Amount  int                `json:"amount"`
}

func mapListing(dto listingResponse) domain.Listing {
	return domain.Listing{
		ID:             dto.ID,
		Title:          dto.Title,
		Platform:       dto.Platform,
		Username:       dto.Username,
		FollowersCount: dto.FollowersCount,
		EngagementRate: dto.EngagementRate,
		MonthlyViews:   dto.MonthlyViews,
		Niche:          dto.Niche,
		Price:          dto.Price,
		Description:    dto.Description,
		Verified:       dto.Verified,
		Monetized:      dto.Monetized,
		Country:        dto.Country,
		AgeRange:       dto.AgeRange,
		Images:         dto.Images,
	}
}

func mapListings(dtos []listingResponse) []domain.Listing {
	result := make([]domain.Listing, len(dtos))
	for i, dto := range dtos {
		result[i] = mapListing(dto)
	}
	return result
}

func mapSubmission(sub domain.ListingSubmission, includeImages bool) accountDetailsPayload {
	payload := accountDetailsPayload{
		ID:             sub.ID,
		Title:          sub.Title,
		Platform:       sub.Platform,
		Username:       sub.Username,
		FollowersCount: sub.FollowersCount,
		EngagementRate: sub.EngagementRate,
		MonthlyViews:   sub.MonthlyViews,
		Niche:          sub.Niche,
		Price:          sub.Price,
		Description:    sub.Description,
		Verified:       sub.Verified,
		Monetized:      sub.Monetized,
		Country:        sub.Country,
		AgeRange:       sub.AgeRange,
	}
	if includeImages {
		stored := sub.StoredImages
		if stored == nil {
			stored = []string{}
		}
		payload.Images = &stored
	}
	return payload
}
