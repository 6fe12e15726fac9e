package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assana/cms/models"
	"github.com/assana/cms/pkg"
	"github.com/assana/cms/ws"
)

func TestSectionService_GetCachesReads(t *testing.T) {
	repo := newFakeSectionRepo()
	repo.docs["home/banner"] = models.Document{"title": "Welcome"}

	svc := NewSectionService(repo, &fakePublisher{})

	doc, err := svc.Get(context.Background(), "home", "banner")
	require.NoError(t, err)
	assert.Equal(t, "Welcome", doc.String("title"))

	// İkinci okuma cache'ten gelir, repo'ya inilmez.
	_, err = svc.Get(context.Background(), "home", "banner")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.getCalls)

	// Cache'ten dönen kopyayı bozmak cache'i bozamaz.
	doc["title"] = "poisoned"
	again, _ := svc.Get(context.Background(), "home", "banner")
	assert.Equal(t, "Welcome", again.String("title"))
}

func TestSectionService_GetNotFound(t *testing.T) {
	svc := NewSectionService(newFakeSectionRepo(), &fakePublisher{})

	_, err := svc.Get(context.Background(), "home", "missing")
	assert.ErrorIs(t, err, pkg.ErrNotFound)
}

func TestSectionService_ReplaceInvalidatesCacheAndBroadcasts(t *testing.T) {
	repo := newFakeSectionRepo()
	repo.docs["home/banner"] = models.Document{"title": "Old"}
	pub := &fakePublisher{}

	svc := NewSectionService(repo, pub)

	// Cache'i doldur, sonra değiştir.
	_, err := svc.Get(context.Background(), "home", "banner")
	require.NoError(t, err)

	canonical, err := svc.Replace(context.Background(), "home", "banner",
		models.Document{"title": "New"})
	require.NoError(t, err)
	assert.Equal(t, "New", canonical.String("title"))

	// Replace sonrası okuma bayat cache'ten değil yeni dökümandan gelir.
	doc, err := svc.Get(context.Background(), "home", "banner")
	require.NoError(t, err)
	assert.Equal(t, "New", doc.String("title"))

	events := pub.all()
	require.Len(t, events, 1)
	assert.Equal(t, ws.OpSectionUpdate, events[0].Op)
	assert.Equal(t, ws.SectionUpdateData{PageKey: "home", SectionKey: "banner"}, events[0].Data)
}

func TestSectionService_ListByPage(t *testing.T) {
	repo := newFakeSectionRepo()
	repo.docs["home/banner"] = models.Document{"title": "A"}
	repo.docs["home/faq"] = models.Document{"title": "B"}
	repo.docs["about/hero"] = models.Document{"title": "C"}

	svc := NewSectionService(repo, &fakePublisher{})

	sections, err := svc.ListByPage(context.Background(), "home")
	require.NoError(t, err)
	assert.Len(t, sections, 2)
}
