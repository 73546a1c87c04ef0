package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"novelverse/internal/microservices/http-api/models"
	"novelverse/internal/microservices/http-api/repository"
)

const clubGenreMatchWeight = 5

var (
	ErrClubNotFound  = errors.New("book club not found")
	ErrNotClubOwner  = errors.New("book club does not belong to user")
	ErrNotClubMember = errors.New("user is not a member of this club")
)

// ScoredClub is a recommendation entry: the club plus how strongly it
// matches the user's shelf.
type ScoredClub struct {
	models.BookClub
	Score int `json:"score"`
}

// UpdateClubInput carries the editable club fields, nil means unchanged.
type UpdateClubInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	CoverImage  *string `json:"cover_image"`
}

type BookClubService interface {
	Create(ctx context.Context, userID, name, description, coverImage string) (*models.BookClub, error)
	Get(ctx context.Context, id int64) (*models.BookClub, error)
	List(ctx context.Context) ([]models.BookClub, error)
	Update(ctx context.Context, userID string, id int64, input UpdateClubInput) (*models.BookClub, error)
	Delete(ctx context.Context, userID string, id int64) error
	Join(ctx context.Context, userID string, id int64) error
	Leave(ctx context.Context, userID string, id int64) error
	CreatePost(ctx context.Context, userID string, clubID int64, input CreatePostInput) (*models.Post, error)
	ListPosts(ctx context.Context, clubID int64) ([]models.Post, error)
	Recommendations(ctx context.Context, userID string) ([]ScoredClub, error)
}

type bookClubService struct {
	clubRepo      repository.BookClubRepository
	bookshelfRepo repository.BookshelfRepository
	posts         PostService
}

func NewBookClubService(
	clubRepo repository.BookClubRepository,
	bookshelfRepo repository.BookshelfRepository,
	posts PostService,
) BookClubService {
	return &bookClubService{
		clubRepo:      clubRepo,
		bookshelfRepo: bookshelfRepo,
		posts:         posts,
	}
}

// Create starts a club with the creator as its first member.
func (s *bookClubService) Create(ctx context.Context, userID, name, description, coverImage string) (*models.BookClub, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyContent
	}

	club := &models.BookClub{
		Name:        name,
		Description: description,
		CoverImage:  coverImage,
		CreatedByID: userID,
	}
	if err := s.clubRepo.Create(ctx, club); err != nil {
		return nil, err
	}
	if err := s.clubRepo.AddMember(ctx, club.ID, userID); err != nil {
		return nil, err
	}
	return s.clubRepo.FindByID(ctx, club.ID)
}

func (s *bookClubService) Get(ctx context.Context, id int64) (*models.BookClub, error) {
	club, err := s.clubRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrClubNotFound
	}
	return club, nil
}

func (s *bookClubService) List(ctx context.Context) ([]models.BookClub, error) {
	return s.clubRepo.ListAll(ctx)
}

func (s *bookClubService) Update(ctx context.Context, userID string, id int64, input UpdateClubInput) (*models.BookClub, error) {
	club, err := s.clubRepo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrClubNotFound
	}
	if club.CreatedByID != userID {
		return nil, ErrNotClubOwner
	}

	if input.Name != nil {
		club.Name = *input.Name
	}
	if input.Description != nil {
		club.Description = *input.Description
	}
	if input.CoverImage != nil {
		club.CoverImage = *input.CoverImage
	}

	if err := s.clubRepo.Save(ctx, club); err != nil {
		return nil, err
	}
	return club, nil
}

func (s *bookClubService) Delete(ctx context.Context, userID string, id int64) error {
	club, err := s.clubRepo.FindByID(ctx, id)
	if err != nil {
		return ErrClubNotFound
	}
	if club.CreatedByID != userID {
		return ErrNotClubOwner
	}
	return s.clubRepo.Delete(ctx, id)
}

func (s *bookClubService) Join(ctx context.Context, userID string, id int64) error {
	if _, err := s.clubRepo.FindByID(ctx, id); err != nil {
		return ErrClubNotFound
	}
	return s.clubRepo.AddMember(ctx, id, userID)
}

func (s *bookClubService) Leave(ctx context.Context, userID string, id int64) error {
	return s.clubRepo.RemoveMember(ctx, id, userID)
}

// CreatePost publishes a post inside the club. Only members can post.
func (s *bookClubService) CreatePost(ctx context.Context, userID string, clubID int64, input CreatePostInput) (*models.Post, error) {
	member, err := s.clubRepo.IsMember(ctx, clubID, userID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, ErrNotClubMember
	}

	post, err := s.posts.Create(ctx, userID, input)
	if err != nil {
		return nil, err
	}
	if err := s.clubRepo.AddPost(ctx, clubID, post.ID); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *bookClubService) ListPosts(ctx context.Context, clubID int64) ([]models.Post, error) {
	if _, err := s.clubRepo.FindByID(ctx, clubID); err != nil {
		return nil, ErrClubNotFound
	}
	return s.clubRepo.ListPosts(ctx, clubID)
}

// Recommendations ranks clubs the user has not joined. A club scores its
// member count plus its post count, plus a bonus for every shelf genre
// mentioned in the club description.
func (s *bookClubService) Recommendations(ctx context.Context, userID string) ([]ScoredClub, error) {
	clubs, err := s.clubRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	genres, err := s.userGenres(ctx, userID)
	if err != nil {
		return nil, err
	}

	scored := make([]ScoredClub, 0, len(clubs))
	for _, club := range clubs {
		if clubHasMember(&club, userID) {
			continue
		}
		scored = append(scored, ScoredClub{
			BookClub: club,
			Score:    scoreClub(&club, genres),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored, nil
}

func (s *bookClubService) userGenres(ctx context.Context, userID string) ([]string, error) {
	items, err := s.bookshelfRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var genres []string
	for _, item := range items {
		if item.Novel == nil {
			continue
		}
		for _, category := range item.Novel.Categories {
			lower := strings.ToLower(category)
			if !seen[lower] {
				seen[lower] = true
				genres = append(genres, lower)
			}
		}
	}
	return genres, nil
}

func clubHasMember(club *models.BookClub, userID string) bool {
	for _, member := range club.Members {
		if member.ID == userID {
			return true
		}
	}
	return false
}

func scoreClub(club *models.BookClub, genres []string) int {
	score := len(club.Members) + len(club.Posts)

	description := strings.ToLower(club.Description)
	for _, genre := range genres {
		if strings.Contains(description, genre) {
			score += clubGenreMatchWeight
		}
	}
	return score
}
