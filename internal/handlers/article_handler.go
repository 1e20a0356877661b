package handlers

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"blogapi/internal/middleware"
	"blogapi/internal/models"
	"blogapi/internal/services"
	"blogapi/internal/session"
)

// maxSessionPageViews is the number of gated article reads allowed per
// browser session before the counter must be cleared.
const maxSessionPageViews = 100

var requiredArticleFields = []string{"title", "content", "preview_text", "minutes_to_read"}

// ArticleHandler handles HTTP requests for articles.
type ArticleHandler struct {
	articleService *services.ArticleService
	authService    *services.AuthService
	sessions       *session.Manager
	validate       *validator.Validate
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleService *services.ArticleService, authService *services.AuthService, sessions *session.Manager) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		authService:    authService,
		sessions:       sessions,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the article routes with the Fiber app.
func (h *ArticleHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/articles", h.HandleIndexArticles)
	router.Get("/articles/:id", h.HandleShowArticle)
	router.Get("/my-articles", middleware.LoginRequired(h.sessions), h.HandleMyArticles)
	router.Post("/articles/create", middleware.RateLimit(100, time.Hour), middleware.LoginRequired(h.sessions), h.HandleCreateArticle)
}

// HandleIndexArticles returns every article. No auth, no pagination.
func (h *ArticleHandler) HandleIndexArticles(c *fiber.Ctx) error {
	articles, err := h.articleService.GetAllArticles()
	if err != nil {
		log.Printf("Error getting all articles: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve articles",
			"error":   err.Error(),
		})
	}
	return c.JSON(articles)
}

// HandleShowArticle returns a single article behind the pageview gate. The
// session-wide counter grows on every call to this endpoint, including
// refused ones, until /clear resets it.
func (h *ArticleHandler) HandleShowArticle(c *fiber.Ctx) error {
	sess := h.sessions.Load(c)
	sess.PageViews++
	if err := h.sessions.Save(c, sess); err != nil {
		log.Printf("Error saving session pageviews: %v", err)
	}

	if sess.PageViews > maxSessionPageViews {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Maximum pageview limit reached",
		})
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid article id",
		})
	}

	article, err := h.articleService.GetArticleByID(uint(id))
	if err != nil {
		log.Printf("Error getting article %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve article",
			"error":   err.Error(),
		})
	}

	// A missing id serializes as null with a success status, not a 404;
	// the frontend depends on this shape.
	return c.JSON(article)
}

// HandleMyArticles returns all articles owned by the session user.
func (h *ArticleHandler) HandleMyArticles(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	articles, err := h.articleService.ListArticlesByUser(userID)
	if err != nil {
		log.Printf("Error listing articles for user %d: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve articles",
			"error":   err.Error(),
		})
	}
	return c.JSON(articles)
}

// CreateArticleRequest represents the request body for article creation.
type CreateArticleRequest struct {
	Title         string `json:"title" validate:"required"`
	Content       string `json:"content" validate:"required"`
	PreviewText   string `json:"preview_text" validate:"required"`
	PreviewImage  string `json:"preview_image"`
	MinutesToRead int    `json:"minutes_to_read" validate:"required"`
	Tag           string `json:"tag" validate:"omitempty,oneof=Product Engineering Design"`
}

// HandleCreateArticle creates a new article owned by the session user.
func (h *ArticleHandler) HandleCreateArticle(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		log.Printf("Session user %d not found: %v", userID, err)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
		})
	}

	var req CreateArticleRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create article request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		for _, e := range validationErrors {
			if e.Tag() == "oneof" {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"message": fmt.Sprintf("Invalid tag. Allowed values: %v", models.AllowedTags),
				})
			}
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("Missing required fields: %v", requiredArticleFields),
		})
	}

	article, err := h.articleService.CreateArticle(user, services.CreateArticleInput{
		Title:         req.Title,
		Content:       req.Content,
		PreviewText:   req.PreviewText,
		PreviewImage:  req.PreviewImage,
		MinutesToRead: req.MinutesToRead,
		Tag:           req.Tag,
	})
	if err != nil {
		log.Printf("Error creating article for user %d: %v", userID, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Could not create article",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(article)
}
