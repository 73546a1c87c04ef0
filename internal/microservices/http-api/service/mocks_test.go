package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"novelverse/internal/ingestion/googlebooks"
	"novelverse/internal/microservices/http-api/models"
)

// Shared testify mocks for the repository interfaces and cross-service
// dependencies used by the service tests.

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsernameWithGraph(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, userID string, fields map[string]any) (*models.User, error) {
	args := m.Called(ctx, userID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) SearchByUsername(ctx context.Context, term string, limit int) ([]models.User, error) {
	args := m.Called(ctx, term, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateLastSeen(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) FollowingIDs(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockUserRepository) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Follow(ctx context.Context, followerID, followeeID string) error {
	args := m.Called(ctx, followerID, followeeID)
	return args.Error(0)
}

func (m *MockUserRepository) Unfollow(ctx context.Context, followerID, followeeID string) error {
	args := m.Called(ctx, followerID, followeeID)
	return args.Error(0)
}

func (m *MockUserRepository) AddFeedback(ctx context.Context, fb *models.PostFeedback) error {
	args := m.Called(ctx, fb)
	return args.Error(0)
}

func (m *MockUserRepository) FeedbackPostIDs(ctx context.Context, userID string) ([]int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(token *models.RefreshToken) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindByToken(token string) (*models.RefreshToken, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) DeleteExpired() error {
	args := m.Called()
	return args.Error(0)
}

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) FindByID(ctx context.Context, id int64) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) ListByUser(ctx context.Context, userID string) ([]models.Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) ListByNovelAndTypes(ctx context.Context, novelID int64, types []string) ([]models.Post, error) {
	args := m.Called(ctx, novelID, types)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) FeedCandidates(ctx context.Context, excludeUserID string, excludedPostIDs []int64) ([]models.Post, error) {
	args := m.Called(ctx, excludeUserID, excludedPostIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) Like(ctx context.Context, postID int64, userID string) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

func (m *MockPostRepository) Unlike(ctx context.Context, postID int64, userID string) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

func (m *MockPostRepository) LikeUserIDs(ctx context.Context, postID int64) ([]string, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id int64) (*models.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentRepository) TopLevelByPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) RepliesOf(ctx context.Context, commentID int64) ([]models.Comment, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentRepository) CountByPost(ctx context.Context, postID int64) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentRepository) CountByPosts(ctx context.Context, postIDs []int64) (map[int64]int64, error) {
	args := m.Called(ctx, postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]int64), args.Error(1)
}

func (m *MockCommentRepository) Like(ctx context.Context, commentID int64, userID string) error {
	args := m.Called(ctx, commentID, userID)
	return args.Error(0)
}

func (m *MockCommentRepository) Unlike(ctx context.Context, commentID int64, userID string) error {
	args := m.Called(ctx, commentID, userID)
	return args.Error(0)
}

func (m *MockCommentRepository) LikeUserIDs(ctx context.Context, commentID int64) ([]string, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCommentRepository) DeleteTree(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBookshelfRepository struct {
	mock.Mock
}

func (m *MockBookshelfRepository) FindByID(ctx context.Context, id int64) (*models.BookshelfItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookshelfItem), args.Error(1)
}

func (m *MockBookshelfRepository) FindByUserAndNovel(ctx context.Context, userID string, novelID int64) (*models.BookshelfItem, error) {
	args := m.Called(ctx, userID, novelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookshelfItem), args.Error(1)
}

func (m *MockBookshelfRepository) UpsertStatus(ctx context.Context, userID string, novelID int64, status string) (*models.BookshelfItem, error) {
	args := m.Called(ctx, userID, novelID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookshelfItem), args.Error(1)
}

func (m *MockBookshelfRepository) Save(ctx context.Context, item *models.BookshelfItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockBookshelfRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookshelfRepository) ListByUser(ctx context.Context, userID string) ([]models.BookshelfItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookshelfItem), args.Error(1)
}

func (m *MockBookshelfRepository) ListByUserAndStatus(ctx context.Context, userID, status string) ([]models.BookshelfItem, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookshelfItem), args.Error(1)
}

type MockConversationRepository struct {
	mock.Mock
}

func (m *MockConversationRepository) Create(ctx context.Context, conv *models.Conversation) error {
	args := m.Called(ctx, conv)
	return args.Error(0)
}

func (m *MockConversationRepository) Save(ctx context.Context, conv *models.Conversation) error {
	args := m.Called(ctx, conv)
	return args.Error(0)
}

func (m *MockConversationRepository) FindByID(ctx context.Context, id int64) (*models.Conversation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Conversation), args.Error(1)
}

func (m *MockConversationRepository) FindBetween(ctx context.Context, userA, userB string) (*models.Conversation, error) {
	args := m.Called(ctx, userA, userB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Conversation), args.Error(1)
}

func (m *MockConversationRepository) ListForUser(ctx context.Context, userID string) ([]models.Conversation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Conversation), args.Error(1)
}

func (m *MockConversationRepository) ListRequestsForUser(ctx context.Context, userID string) ([]models.Conversation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Conversation), args.Error(1)
}

func (m *MockConversationRepository) IDsForUser(ctx context.Context, userID string) ([]int64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockConversationRepository) UpdateStatus(ctx context.Context, id int64, status string) (*models.Conversation, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Conversation), args.Error(1)
}

type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, msg *models.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMessageRepository) ListByConversation(ctx context.Context, conversationID int64) ([]models.Message, error) {
	args := m.Called(ctx, conversationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *MockMessageRepository) LastMessage(ctx context.Context, conversationID int64) (*models.Message, error) {
	args := m.Called(ctx, conversationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

func (m *MockMessageRepository) CountUnread(ctx context.Context, conversationID int64, notSenderID string) (int64, error) {
	args := m.Called(ctx, conversationID, notSenderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMessageRepository) MarkAllRead(ctx context.Context, conversationID int64, notSenderID string) error {
	args := m.Called(ctx, conversationID, notSenderID)
	return args.Error(0)
}

func (m *MockMessageRepository) UnreadConversationIDs(ctx context.Context, conversationIDs []int64, notSenderID string) ([]int64, error) {
	args := m.Called(ctx, conversationIDs, notSenderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, id int64) (*models.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) ListByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error) {
	args := m.Called(ctx, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, recipientID string) error {
	args := m.Called(ctx, recipientID)
	return args.Error(0)
}

func (m *MockNotificationRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) CreateBatch(ctx context.Context, events []models.ScheduleEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func (m *MockScheduleRepository) FindByID(ctx context.Context, id int64) (*models.ScheduleEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ScheduleEvent), args.Error(1)
}

func (m *MockScheduleRepository) Save(ctx context.Context, event *models.ScheduleEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockScheduleRepository) ListByUser(ctx context.Context, userID string) ([]models.ScheduleEvent, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ScheduleEvent), args.Error(1)
}

func (m *MockScheduleRepository) DeleteGroup(ctx context.Context, groupID, userID string) (int64, error) {
	args := m.Called(ctx, groupID, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockScheduleRepository) FindStartingBetween(ctx context.Context, from, to time.Time) ([]models.ScheduleEvent, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ScheduleEvent), args.Error(1)
}

func (m *MockScheduleRepository) FindEndedWithoutFollowUp(ctx context.Context, before time.Time) ([]models.ScheduleEvent, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ScheduleEvent), args.Error(1)
}

type MockBookClubRepository struct {
	mock.Mock
}

func (m *MockBookClubRepository) Create(ctx context.Context, club *models.BookClub) error {
	args := m.Called(ctx, club)
	return args.Error(0)
}

func (m *MockBookClubRepository) FindByID(ctx context.Context, id int64) (*models.BookClub, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookClub), args.Error(1)
}

func (m *MockBookClubRepository) ListAll(ctx context.Context) ([]models.BookClub, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookClub), args.Error(1)
}

func (m *MockBookClubRepository) Save(ctx context.Context, club *models.BookClub) error {
	args := m.Called(ctx, club)
	return args.Error(0)
}

func (m *MockBookClubRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookClubRepository) AddMember(ctx context.Context, clubID int64, userID string) error {
	args := m.Called(ctx, clubID, userID)
	return args.Error(0)
}

func (m *MockBookClubRepository) RemoveMember(ctx context.Context, clubID int64, userID string) error {
	args := m.Called(ctx, clubID, userID)
	return args.Error(0)
}

func (m *MockBookClubRepository) IsMember(ctx context.Context, clubID int64, userID string) (bool, error) {
	args := m.Called(ctx, clubID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookClubRepository) AddPost(ctx context.Context, clubID, postID int64) error {
	args := m.Called(ctx, clubID, postID)
	return args.Error(0)
}

func (m *MockBookClubRepository) ListPosts(ctx context.Context, clubID int64) ([]models.Post, error) {
	args := m.Called(ctx, clubID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

type MockNovelService struct {
	mock.Mock
}

func (m *MockNovelService) EnsureByGoogleID(ctx context.Context, googleID string) (*models.Novel, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Novel), args.Error(1)
}

func (m *MockNovelService) GetByID(ctx context.Context, id int64) (*models.Novel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Novel), args.Error(1)
}

func (m *MockNovelService) ListAll(ctx context.Context) ([]models.Novel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Novel), args.Error(1)
}

func (m *MockNovelService) Repair(ctx context.Context, novel *models.Novel) (*models.Novel, error) {
	args := m.Called(ctx, novel)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Novel), args.Error(1)
}

func (m *MockNovelService) SearchCatalog(ctx context.Context, query string, maxResults int) ([]googlebooks.Volume, error) {
	args := m.Called(ctx, query, maxResults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]googlebooks.Volume), args.Error(1)
}

func (m *MockNovelService) VolumeDetails(ctx context.Context, googleID string) (*googlebooks.Volume, error) {
	args := m.Called(ctx, googleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*googlebooks.Volume), args.Error(1)
}

type MockRealtime struct {
	mock.Mock
}

func (m *MockRealtime) EmitToUser(userID string, event string, payload any) {
	m.Called(userID, event, payload)
}

func (m *MockRealtime) EmitToPost(postID int64, event string, payload any) {
	m.Called(postID, event, payload)
}

type MockBookshelfService struct {
	mock.Mock
}

func (m *MockBookshelfService) SetStatus(ctx context.Context, userID, googleID, status string) (*models.BookshelfItem, error) {
	args := m.Called(ctx, userID, googleID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookshelfItem), args.Error(1)
}

func (m *MockBookshelfService) UpdateProgress(ctx context.Context, userID string, itemID int64, pagesRead int) (*models.BookshelfItem, error) {
	args := m.Called(ctx, userID, itemID, pagesRead)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookshelfItem), args.Error(1)
}

func (m *MockBookshelfService) AddPagesByGoogleID(ctx context.Context, userID, googleID string, pages int) error {
	args := m.Called(ctx, userID, googleID, pages)
	return args.Error(0)
}

func (m *MockBookshelfService) Rate(ctx context.Context, userID string, itemID int64, rating int) (*models.BookshelfItem, error) {
	args := m.Called(ctx, userID, itemID, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookshelfItem), args.Error(1)
}

func (m *MockBookshelfService) Remove(ctx context.Context, userID string, itemID int64) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}

func (m *MockBookshelfService) List(ctx context.Context, userID, status string) ([]models.BookshelfItem, error) {
	args := m.Called(ctx, userID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.BookshelfItem), args.Error(1)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Notify(ctx context.Context, recipientID, senderID, notifType, entityID, title string) (*models.Notification, error) {
	args := m.Called(ctx, recipientID, senderID, notifType, entityID, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}

func (m *MockNotificationService) NotifySystem(ctx context.Context, recipientID, notifType, entityID, title string) (*models.Notification, error) {
	args := m.Called(ctx, recipientID, notifType, entityID, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}

func (m *MockNotificationService) List(ctx context.Context, userID string) ([]models.Notification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationService) MarkAllAsRead(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockNotificationService) Delete(ctx context.Context, userID string, notificationID int64) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) Create(ctx context.Context, userID string, input CreatePostInput) (*models.Post, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) Get(ctx context.Context, id int64) (*models.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) ListAll(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostService) ListByUser(ctx context.Context, userID string) ([]models.Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostService) ListByBook(ctx context.Context, googleID string, types []string) ([]models.Post, error) {
	args := m.Called(ctx, googleID, types)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostService) Like(ctx context.Context, userID string, postID int64) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockPostService) Unlike(ctx context.Context, userID string, postID int64) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockPostService) Delete(ctx context.Context, userID string, postID int64) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

type MockNovelRepository struct {
	mock.Mock
}

func (m *MockNovelRepository) Create(ctx context.Context, novel *models.Novel) error {
	args := m.Called(ctx, novel)
	return args.Error(0)
}

func (m *MockNovelRepository) Save(ctx context.Context, novel *models.Novel) error {
	args := m.Called(ctx, novel)
	return args.Error(0)
}

func (m *MockNovelRepository) FindByID(ctx context.Context, id int64) (*models.Novel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Novel), args.Error(1)
}

func (m *MockNovelRepository) FindByGoogleID(ctx context.Context, googleBooksID string) (*models.Novel, error) {
	args := m.Called(ctx, googleBooksID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Novel), args.Error(1)
}

func (m *MockNovelRepository) ListAll(ctx context.Context) ([]models.Novel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Novel), args.Error(1)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetProfile(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*models.User, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Follow(ctx context.Context, followerID, followeeID string) error {
	args := m.Called(ctx, followerID, followeeID)
	return args.Error(0)
}

func (m *MockUserService) Unfollow(ctx context.Context, followerID, followeeID string) error {
	args := m.Called(ctx, followerID, followeeID)
	return args.Error(0)
}

func (m *MockUserService) Search(ctx context.Context, term string) ([]models.User, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserService) Heartbeat(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserService) HidePost(ctx context.Context, userID string, postID int64, reason string) error {
	args := m.Called(ctx, userID, postID, reason)
	return args.Error(0)
}
