package domain

// Listing is a social-media account offered on the marketplace, as the
// gateway returns it. Price is denominated in the currency of Country.
type Listing struct {
	ID             string
	Title          string
	Platform       string
	Username       string
	FollowersCount int
	EngagementRate float64
	MonthlyViews   int
	Niche          string
	Price          float64
	Description    string
	Verified       bool
	Monetized      bool
	Country        string
	AgeRange       string
	Images         []string
}

// Balance holds the seller totals the gateway computes. It is never derived
// or mutated locally; each user-listing fetch overwrites it wholesale.
type Balance struct {
	Earnings  float64
	Withdrawn float64
	Available float64
}

// ListingImage is one entry of a listing's image sequence: either an image
// the gateway already stores (URL set) or a local file pending upload
// (Name and Data set).
type ListingImage struct {
	URL  string
	Name string
	Data []byte
}

// Stored reports whether the image already lives on the gateway.
func (i ListingImage) Stored() bool { return i.URL != "" }

// ListingSubmission is everything a create or update request carries.
// StoredImages travel inside the JSON account details, PendingImages as
// separate upload parts. ID is empty on create.
type ListingSubmission struct {
	ID             string
	Title          string
	Platform       string
	Username       string
	FollowersCount int
	EngagementRate float64
	MonthlyViews   int
	Niche          string
	Price          float64
	Description    string
	Verified       bool
	Monetized      bool
	Country        string
	AgeRange       string
	StoredImages   []string
	PendingImages  []ListingImage
}
