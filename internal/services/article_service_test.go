package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blogapi/internal/models"
	"blogapi/internal/repositories"
	"blogapi/internal/services"
)

// MockArticleRepository is a mock implementation of repositories.ArticleRepository
type MockArticleRepository struct {
	mock.Mock
}

func (m *MockArticleRepository) GetAll() ([]models.Article, error) {
	args := m.Called()
	return args.Get(0).([]models.Article), args.Error(1)
}

func (m *MockArticleRepository) GetByID(id uint) (*models.Article, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Article), args.Error(1)
}

func (m *MockArticleRepository) ListByUser(userID uint) ([]models.Article, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Article), args.Error(1)
}

func (m *MockArticleRepository) Create(article *models.Article) error {
	args := m.Called(article)
	return args.Error(0)
}

func TestArticleService_GetAllArticles(t *testing.T) {
	mockRepo := new(MockArticleRepository)
	service := services.NewArticleService(mockRepo)

	expected := []models.Article{
		{ID: 1, Author: "alice", Title: "First"},
		{ID: 2, Author: "bob", Title: "Second"},
	}

	mockRepo.On("GetAll").Return(expected, nil).Once()

	articles, err := service.GetAllArticles()
	assert.NoError(t, err)
	assert.Len(t, articles, 2)
	assert.Equal(t, expected, articles)
	mockRepo.AssertExpectations(t)
}

func TestArticleService_GetArticleByID(t *testing.T) {
	mockRepo := new(MockArticleRepository)
	service := services.NewArticleService(mockRepo)

	expected := &models.Article{ID: 1, Author: "alice", Title: "First"}

	// Test successful retrieval
	mockRepo.On("GetByID", uint(1)).Return(expected, nil).Once()
	article, err := service.GetArticleByID(1)
	assert.NoError(t, err)
	assert.Equal(t, expected, article)
	mockRepo.AssertExpectations(t)

	// A missing id is not an error: (nil, nil) so the handler can
	// serialize it as null with a success status.
	mockRepo.On("GetByID", uint(99)).Return(nil, fmt.Errorf("article with ID 99: %w", repositories.ErrNotFound)).Once()
	article, err = service.GetArticleByID(99)
	assert.NoError(t, err)
	assert.Nil(t, article)
	mockRepo.AssertExpectations(t)

	// Other repository failures still surface as errors.
	mockRepo.On("GetByID", uint(2)).Return(nil, fmt.Errorf("database gone away")).Once()
	article, err = service.GetArticleByID(2)
	assert.Error(t, err)
	assert.Nil(t, article)
	mockRepo.AssertExpectations(t)
}

func TestArticleService_ListArticlesByUser(t *testing.T) {
	mockRepo := new(MockArticleRepository)
	service := services.NewArticleService(mockRepo)

	expected := []models.Article{
		{ID: 1, Author: "alice", Title: "First", UserID: 7},
	}

	mockRepo.On("ListByUser", uint(7)).Return(expected, nil).Once()

	articles, err := service.ListArticlesByUser(7)
	assert.NoError(t, err)
	assert.Equal(t, expected, articles)
	mockRepo.AssertExpectations(t)
}

func TestArticleService_CreateArticle(t *testing.T) {
	mockRepo := new(MockArticleRepository)
	service := services.NewArticleService(mockRepo)

	owner := &models.User{ID: 7, Username: "alice"}

	// Omitted tag and preview image take the defaults; the author is
	// forced to the owner's username.
	var created *models.Article
	mockRepo.On("Create", mock.AnythingOfType("*models.Article")).Return(nil).Run(func(args mock.Arguments) {
		created = args.Get(0).(*models.Article)
	}).Once()

	article, err := service.CreateArticle(owner, services.CreateArticleInput{
		Title:         "Go at the edge",
		Content:       "body",
		PreviewText:   "preview",
		MinutesToRead: 5,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.DefaultTag, created.Tag)
	assert.Equal(t, models.DefaultPreviewImage, created.PreviewImage)
	assert.Equal(t, "alice", created.Author)
	assert.Equal(t, uint(7), created.UserID)
	assert.Equal(t, article, created)
	mockRepo.AssertExpectations(t)

	// A supplied tag is kept as-is when valid.
	mockRepo.On("Create", mock.AnythingOfType("*models.Article")).Return(nil).Run(func(args mock.Arguments) {
		created = args.Get(0).(*models.Article)
	}).Once()
	_, err = service.CreateArticle(owner, services.CreateArticleInput{
		Title:         "Design systems",
		Content:       "body",
		PreviewText:   "preview",
		MinutesToRead: 3,
		Tag:           "Design",
		PreviewImage:  "https://example.com/custom.png",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Design", created.Tag)
	assert.Equal(t, "https://example.com/custom.png", created.PreviewImage)
	mockRepo.AssertExpectations(t)

	// An invalid tag is rejected before anything reaches the repository.
	_, err = service.CreateArticle(owner, services.CreateArticleInput{
		Title:         "Bad tag",
		Content:       "body",
		PreviewText:   "preview",
		MinutesToRead: 1,
		Tag:           "Invalid",
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid tag")
	mockRepo.AssertExpectations(t)

	// Repository failures pass through with their message intact.
	mockRepo.On("Create", mock.AnythingOfType("*models.Article")).Return(fmt.Errorf("UNIQUE constraint failed")).Once()
	_, err = service.CreateArticle(owner, services.CreateArticleInput{
		Title:         "Store failure",
		Content:       "body",
		PreviewText:   "preview",
		MinutesToRead: 1,
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE constraint failed")
	mockRepo.AssertExpectations(t)
}
