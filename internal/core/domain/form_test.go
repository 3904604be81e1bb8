package domain

import (
	"errors"
	"testing"
)

func TestAddImagesCap(t *testing.T) {
	form := &ListingForm{}

	for i := 0; i < MaxListingImages; i++ {
		if err := form.AddImages(ListingImage{Name: "shot.png", Data: []byte{1}}); err != nil {
			t.Fatalf("image %d rejected: %v", i+1, err)
		}
	}

	if err := form.AddImages(ListingImage{Name: "one-too-many.png", Data: []byte{1}}); !errors.Is(err, ErrTooManyImages) {
		t.Fatalf("expected ErrTooManyImages got %v", err)
	}
	if len(form.Images) != MaxListingImages {
		t.Fatalf("expected %d images got %d", MaxListingImages, len(form.Images))
	}
}

func TestAddImagesRejectsWholeBatch(t *testing.T) {
	form := &ListingForm{
		Images: []ListingImage{{URL: "https://cdn/a.png"}, {URL: "https://cdn/b.png"}, {URL: "https://cdn/c.png"}, {URL: "https://cdn/d.png"}},
	}

	err := form.AddImages(
		ListingImage{Name: "e.png", Data: []byte{1}},
		ListingImage{Name: "f.png", Data: []byte{2}},
	)
	if !errors.Is(err, ErrTooManyImages) {
		t.Fatalf("expected ErrTooManyImages got %v", err)
	}
	// Nothing from the batch may land, not even the image that would fit.
	if len(form.Images) != 4 {
		t.Fatalf("expected 4 images got %d", len(form.Images))
	}
}

func TestRemoveImage(t *testing.T) {
	form := &ListingForm{
		Images: []ListingImage{{URL: "https://cdn/a.png"}, {Name: "b.png", Data: []byte{1}}, {URL: "https://cdn/c.png"}},
	}

	form.RemoveImage(1)
	if len(form.Images) != 2 {
		t.Fatalf("expected 2 images got %d", len(form.Images))
	}
	if form.Images[0].URL != "https://cdn/a.png" || form.Images[1].URL != "https://cdn/c.png" {
		t.Fatalf("wrong images survived: %+v", form.Images)
	}

	// Out-of-range indexes are ignored.
	form.RemoveImage(-1)
	form.RemoveImage(5)
	if len(form.Images) != 2 {
		t.Fatalf("expected 2 images got %d", len(form.Images))
	}
}

func TestStoredAndPendingSplit(t *testing.T) {
	form := &ListingForm{
		Images: []ListingImage{
			{URL: "https://cdn/a.png"},
			{Name: "new.png", Data: []byte{1, 2}},
			{URL: "https://cdn/b.png"},
		},
	}

	stored := form.StoredImages()
	if len(stored) != 2 || stored[0] != "https://cdn/a.png" || stored[1] != "https://cdn/b.png" {
		t.Fatalf("unexpected stored images: %v", stored)
	}

	pending := form.PendingImages()
	if len(pending) != 1 || pending[0].Name != "new.png" {
		t.Fatalf("unexpected pending images: %+v", pending)
	}
}

func TestEditing(t *testing.T) {
	if (&ListingForm{}).Editing() {
		t.Fatal("form without an ID must not be in edit mode")
	}
	if !(&ListingForm{ID: "lst-1"}).Editing() {
		t.Fatal("form with an ID must be in edit mode")
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "Followers Count"}
	if err.Error() != "please fill in the Followers Count field" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
