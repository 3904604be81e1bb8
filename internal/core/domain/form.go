package domain

import "fmt"

// MaxListingImages caps the image sequence of a single listing.
const MaxListingImages = 5

// ErrTooManyImages is returned when an addition would push a form past
// MaxListingImages. The addition is rejected as a whole.
var ErrTooManyImages = fmt.Errorf("you can only upload %d images", MaxListingImages)

// ValidationError marks a client-side rejection of a form, naming the field
// that failed. No request is sent when one of these is returned.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("please fill in the %s field", e.Field)
}

// ListingForm is the edit buffer behind the listing editor. All scalar
// fields hold raw user input; parsing happens on submit. A bound ID means
// the form edits an existing listing, which is fixed for the lifetime of
// the form.
type ListingForm struct {
	ID             string
	Title          string
	Platform       string
	Username       string
	FollowersCount string
	EngagementRate string
	MonthlyViews   string
	Niche          string
	Price          string
	Description    string
	Verified       bool
	Monetized      bool
	Country        string
	AgeRange       string
	Images         []ListingImage
}

// Editing reports whether the form is bound to an existing listing.
func (f *ListingForm) Editing() bool { return f.ID != "" }

// AddImages appends images to the form. If the total would exceed
// MaxListingImages the whole batch is rejected and the form is unchanged.
func (f *ListingForm) AddImages(images ...ListingImage) error {
	if len(images) == 0 {
		return nil
	}
	if len(f.Images)+len(images) > MaxListingImages {
		return ErrTooManyImages
	}
	f.Images = append(f.Images, images...)
	return nil
}

// RemoveImage drops the image at index i. Out-of-range indexes are ignored.
func (f *ListingForm) RemoveImage(i int) {
	if i < 0 || i >= len(f.Images) {
		return
	}
	f.Images = append(f.Images[:i], f.Images[i+1:]...)
}

// StoredImages returns the URLs of images the gateway already holds, in
// order.
func (f *ListingForm) StoredImages() []string {
	var urls []string
	for _, img := range f.Images {
		if img.Stored() {
			urls = append(urls, img.URL)
		}
	}
	return urls
}

// PendingImages returns the images still waiting to be uploaded, in order.
func (f *ListingForm) PendingImages() []ListingImage {
	var pending []ListingImage
	for _, img := range f.Images {
		if !img.Stored() {
			pending = append(pending, img)
		}
	}
	return pending
}
