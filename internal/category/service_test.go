package category

import (
	"context"
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Sarees & Lehengas": "sarees-lehengas",
		"Home Decor":        "home-decor",
		"  Electronics  ":   "electronics",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCreateCategory(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))
	ctx := context.Background()

	if _, err := svc.Create(ctx, Category{Name: "   "}); err != ErrInvalidName {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}

	created, err := svc.Create(ctx, Category{Name: "Sarees & Lehengas", NameBN: "শাড়ি ও লেহেঙ্গা"})
	if err != nil {
		t.Fatal(err)
	}
	if created.Slug != "sarees-lehengas" {
		t.Fatalf("unexpected slug %q", created.Slug)
	}

	if _, err := svc.Create(ctx, Category{Name: "Sarees & Lehengas"}); err != ErrSlugExists {
		t.Fatalf("expected ErrSlugExists, got %v", err)
	}

	got, err := svc.GetBySlug(ctx, "sarees-lehengas")
	if err != nil {
		t.Fatal(err)
	}
	if got.NameBN != created.NameBN {
		t.Fatalf("unexpected category: %+v", got)
	}
}
