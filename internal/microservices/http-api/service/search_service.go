package service

import (
	"context"
	"sync"

	"novelverse/internal/ingestion/googlebooks"
	"novelverse/internal/microservices/http-api/models"
)

// SearchResults bundles the two halves of a global search.
type SearchResults struct {
	Users []models.User        `json:"users"`
	Books []googlebooks.Volume `json:"books"`
}

type SearchService interface {
	Search(ctx context.Context, term string) (*SearchResults, error)
}

type searchService struct {
	users  UserService
	novels NovelService
}

func NewSearchService(users UserService, novels NovelService) SearchService {
	return &searchService{users: users, novels: novels}
}

// Search runs the user lookup and the catalog lookup concurrently. A
// catalog failure degrades to user results only rather than failing the
// whole search.
func (s *searchService) Search(ctx context.Context, term string) (*SearchResults, error) {
	results := &SearchResults{
		Users: []models.User{},
		Books: []googlebooks.Volume{},
	}
	if term == "" {
		return results, nil
	}

	var wg sync.WaitGroup
	var userErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		users, err := s.users.Search(ctx, term)
		if err != nil {
			userErr = err
			return
		}
		results.Users = users
	}()
	go func() {
		defer wg.Done()
		books, err := s.novels.SearchCatalog(ctx, term, searchResultLimit)
		if err != nil {
			return
		}
		results.Books = books
	}()
	wg.Wait()

	if userErr != nil {
		return nil, userErr
	}
	return results, nil
}
