package po_test

import (
	"testing"

	"github.com/codeflix-tube/admin-catalog/internal/models/po"
	"github.com/google/uuid"
)

func TestAudioVideoMediaEqualsIgnoresIdentity(t *testing.T) {
	a := po.NewAudioVideoMedia("abc", "movie.mp4", "videos/raw/movie.mp4")
	b := po.NewAudioVideoMedia("abc", "copy.mp4", "videos/raw/movie.mp4")

	if a.ID == b.ID {
		t.Fatalf("expected distinct identities")
	}
	if !a.Equals(b) {
		t.Fatalf("same checksum+rawLocation must be equal")
	}

	c := po.NewAudioVideoMedia("abc", "movie.mp4", "videos/raw/other.mp4")
	if a.Equals(c) {
		t.Fatalf("different rawLocation must not be equal")
	}
}

func TestAudioVideoMediaWithStatusIsCopy(t *testing.T) {
	a := po.NewAudioVideoMedia("abc", "movie.mp4", "videos/raw/movie.mp4")
	if a.Status != po.MediaStatusPending {
		t.Fatalf("new media must start pending, got %s", a.Status)
	}

	b := a.WithStatus(po.MediaStatusCompleted, "videos/encoded/master.m3u8")
	if b.ID != a.ID || b.Checksum != a.Checksum || b.RawLocation != a.RawLocation {
		t.Fatalf("identity fields must carry over: %+v", b)
	}
	if b.Status != po.MediaStatusCompleted || b.EncodedLocation != "videos/encoded/master.m3u8" {
		t.Fatalf("status transition not applied: %+v", b)
	}
	if a.Status != po.MediaStatusPending || a.EncodedLocation != "" {
		t.Fatalf("original descriptor must stay immutable: %+v", a)
	}
}

func TestImageMediaEquals(t *testing.T) {
	a := po.NewImageMedia("abc", "banner.png", "videos/banner.png")
	b := po.NewImageMedia("abc", "other.png", "videos/banner.png")
	if !a.Equals(b) {
		t.Fatalf("same checksum+location must be equal")
	}
	c := po.NewImageMedia("zzz", "banner.png", "videos/banner.png")
	if a.Equals(c) {
		t.Fatalf("different checksum must not be equal")
	}
}

func TestMediaStatusOf(t *testing.T) {
	for _, label := range []string{"pending", "processing", "completed", "error"} {
		if _, ok := po.MediaStatusOf(label); !ok {
			t.Fatalf("expected %q to parse", label)
		}
	}
	if _, ok := po.MediaStatusOf("COMPLETED"); ok {
		t.Fatalf("status labels are case sensitive at this layer")
	}
	if !po.MediaStatusCompleted.Terminal() || !po.MediaStatusError.Terminal() {
		t.Fatalf("completed/error must be terminal")
	}
	if po.MediaStatusPending.Terminal() || po.MediaStatusProcessing.Terminal() {
		t.Fatalf("pending/processing must not be terminal")
	}
}

func TestRatingOf(t *testing.T) {
	for _, label := range []string{"ER", "L", "10", "12", "14", "16", "18"} {
		rating, ok := po.RatingOf(label)
		if !ok || string(rating) != label {
			t.Fatalf("expected %q to parse", label)
		}
	}
	if _, ok := po.RatingOf("PG-13"); ok {
		t.Fatalf("unknown label must not parse")
	}
	var zero po.Rating
	if zero.Defined() {
		t.Fatalf("zero rating must be undefined")
	}
}

func TestIDSetDeduplicates(t *testing.T) {
	id := uuid.New()
	set := po.NewIDSet(id, id, uuid.New())
	if set.Len() != 2 {
		t.Fatalf("expected duplicates removed, got %d", set.Len())
	}
	if !set.Contains(id) {
		t.Fatalf("expected membership for %s", id)
	}
	slice := set.Slice()
	if len(slice) != 2 {
		t.Fatalf("slice length mismatch")
	}
	if slice[0].String() > slice[1].String() {
		t.Fatalf("slice must be sorted for stable persistence")
	}
}
