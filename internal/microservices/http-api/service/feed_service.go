package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"novelverse/internal/microservices/http-api/models"
	"novelverse/internal/microservices/http-api/repository"
)

// Feed scoring weights. A post scores the sum of every signal that applies
// plus its raw engagement counts.
const (
	feedWeightFollowed     = 5
	feedWeightLiked        = 3
	feedWeightGenreMatch   = 2
	feedWeightFresh        = 2
	feedWeightCommentCount = 2

	feedFreshWindow = 24 * time.Hour
)

// ScoredPost is a feed entry with its ranking score exposed for clients.
type ScoredPost struct {
	models.Post
	Score        int   `json:"score"`
	CommentCount int64 `json:"comment_count"`
}

type FeedService interface {
	Feed(ctx context.Context, userID string) ([]ScoredPost, error)
}

type feedService struct {
	postRepo      repository.PostRepository
	commentRepo   repository.CommentRepository
	userRepo      repository.UserRepository
	bookshelfRepo repository.BookshelfRepository
}

func NewFeedService(
	postRepo repository.PostRepository,
	commentRepo repository.CommentRepository,
	userRepo repository.UserRepository,
	bookshelfRepo repository.BookshelfRepository,
) FeedService {
	return &feedService{
		postRepo:      postRepo,
		commentRepo:   commentRepo,
		userRepo:      userRepo,
		bookshelfRepo: bookshelfRepo,
	}
}

// Feed ranks every visible post for the user. Candidates arrive newest
// first and the sort is stable, so equal scores keep chronological order.
func (s *feedService) Feed(ctx context.Context, userID string) ([]ScoredPost, error) {
	hidden, err := s.userRepo.FeedbackPostIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.FeedCandidates(ctx, userID, hidden)
	if err != nil {
		return nil, err
	}

	followingIDs, err := s.userRepo.FollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	following := make(map[string]bool, len(followingIDs))
	for _, id := range followingIDs {
		following[id] = true
	}

	genres, err := s.userGenres(ctx, userID)
	if err != nil {
		return nil, err
	}

	postIDs := make([]int64, len(posts))
	for i, post := range posts {
		postIDs[i] = post.ID
	}
	commentCounts, err := s.commentRepo.CountByPosts(ctx, postIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	scored := make([]ScoredPost, len(posts))
	for i, post := range posts {
		count := commentCounts[post.ID]
		scored[i] = ScoredPost{
			Post:         post,
			Score:        scorePost(&post, userID, following, genres, count, now),
			CommentCount: count,
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored, nil
}

// userGenres collects the categories of every book on the user's shelf,
// lowercased for matching.
func (s *feedService) userGenres(ctx context.Context, userID string) (map[string]bool, error) {
	items, err := s.bookshelfRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	genres := make(map[string]bool)
	for _, item := range items {
		if item.Novel == nil {
			continue
		}
		for _, category := range item.Novel.Categories {
			genres[strings.ToLower(category)] = true
		}
	}
	return genres, nil
}

func scorePost(post *models.Post, userID string, following map[string]bool, genres map[string]bool, commentCount int64, now time.Time) int {
	score := 0

	if following[post.UserID] {
		score += feedWeightFollowed
	}

	for _, liker := range post.Likes {
		if liker.ID == userID {
			score += feedWeightLiked
			break
		}
	}

	if post.Novel != nil {
		for _, category := range post.Novel.Categories {
			if genres[strings.ToLower(category)] {
				score += feedWeightGenreMatch
				break
			}
		}
	}

	if now.Sub(post.CreatedAt) < feedFreshWindow {
		score += feedWeightFresh
	}

	score += len(post.Likes)
	score += feedWeightCommentCount * int(commentCount)

	return score
}
