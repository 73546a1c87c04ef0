package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"novelverse/internal/microservices/http-api/models"
)

func TestCreateClub_CreatorBecomesMember(t *testing.T) {
	mockClubRepo := new(MockBookClubRepository)
	svc := NewBookClubService(mockClubRepo, new(MockBookshelfRepository), new(MockPostService))

	full := &models.BookClub{ID: 1, Name: "Fantasy Readers", CreatedByID: "user-1", Members: []models.User{{ID: "user-1"}}}

	mockClubRepo.On("Create", context.Background(), mock.AnythingOfType("*models.BookClub")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.BookClub).ID = 1
		}).Return(nil)
	mockClubRepo.On("AddMember", context.Background(), int64(1), "user-1").Return(nil)
	mockClubRepo.On("FindByID", context.Background(), int64(1)).Return(full, nil)

	club, err := svc.Create(context.Background(), "user-1", "Fantasy Readers", "We read fantasy", "")

	assert.NoError(t, err)
	assert.Len(t, club.Members, 1)
	mockClubRepo.AssertExpectations(t)
}

func TestCreateClub_EmptyName(t *testing.T) {
	svc := NewBookClubService(new(MockBookClubRepository), new(MockBookshelfRepository), new(MockPostService))

	_, err := svc.Create(context.Background(), "user-1", "   ", "", "")

	assert.Equal(t, ErrEmptyContent, err)
}

func TestUpdateClub_NotOwner(t *testing.T) {
	mockClubRepo := new(MockBookClubRepository)
	svc := NewBookClubService(mockClubRepo, new(MockBookshelfRepository), new(MockPostService))

	club := &models.BookClub{ID: 1, CreatedByID: "owner"}
	mockClubRepo.On("FindByID", context.Background(), int64(1)).Return(club, nil)

	name := "New Name"
	_, err := svc.Update(context.Background(), "intruder", 1, UpdateClubInput{Name: &name})

	assert.Equal(t, ErrNotClubOwner, err)
	mockClubRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateClubPost_RequiresMembership(t *testing.T) {
	mockClubRepo := new(MockBookClubRepository)
	mockPosts := new(MockPostService)
	svc := NewBookClubService(mockClubRepo, new(MockBookshelfRepository), mockPosts)

	mockClubRepo.On("IsMember", context.Background(), int64(1), "user-1").Return(false, nil)

	_, err := svc.CreatePost(context.Background(), "user-1", 1, CreatePostInput{Content: "hi", PostType: models.PostTypeDiscussion})

	assert.Equal(t, ErrNotClubMember, err)
	mockPosts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateClubPost_LinksPostToClub(t *testing.T) {
	mockClubRepo := new(MockBookClubRepository)
	mockPosts := new(MockPostService)
	svc := NewBookClubService(mockClubRepo, new(MockBookshelfRepository), mockPosts)

	input := CreatePostInput{Content: "chapter 3 thoughts", PostType: models.PostTypeDiscussion}
	post := &models.Post{ID: 42, UserID: "user-1", Content: "chapter 3 thoughts"}

	mockClubRepo.On("IsMember", context.Background(), int64(1), "user-1").Return(true, nil)
	mockPosts.On("Create", context.Background(), "user-1", input).Return(post, nil)
	mockClubRepo.On("AddPost", context.Background(), int64(1), int64(42)).Return(nil)

	got, err := svc.CreatePost(context.Background(), "user-1", 1, input)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), got.ID)
	mockClubRepo.AssertExpectations(t)
}

func TestRecommendations_ScoresAndExcludesJoinedClubs(t *testing.T) {
	mockClubRepo := new(MockBookClubRepository)
	mockShelfRepo := new(MockBookshelfRepository)
	svc := NewBookClubService(mockClubRepo, mockShelfRepo, new(MockPostService))

	joined := models.BookClub{
		ID:      1,
		Name:    "Already In",
		Members: []models.User{{ID: "user-1"}},
	}
	// 2 members + 1 post + genre bonus for "fantasy" in the description.
	fantasyClub := models.BookClub{
		ID:          2,
		Name:        "Dragon Society",
		Description: "All things Fantasy and dragons",
		Members:     []models.User{{ID: "a"}, {ID: "b"}},
		Posts:       []models.Post{{ID: 1}},
	}
	// 1 member, no posts, no genre match.
	quietClub := models.BookClub{
		ID:      3,
		Name:    "True Crime Corner",
		Members: []models.User{{ID: "c"}},
	}

	mockClubRepo.On("ListAll", context.Background()).
		Return([]models.BookClub{joined, quietClub, fantasyClub}, nil)
	mockShelfRepo.On("ListByUser", context.Background(), "user-1").Return([]models.BookshelfItem{
		{NovelID: 1, Novel: &models.Novel{ID: 1, Categories: []string{"Fantasy"}}},
	}, nil)

	recs, err := svc.Recommendations(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Len(t, recs, 2)
	assert.Equal(t, int64(2), recs[0].ID)
	assert.Equal(t, 8, recs[0].Score)
	assert.Equal(t, int64(3), recs[1].ID)
	assert.Equal(t, 1, recs[1].Score)
}
