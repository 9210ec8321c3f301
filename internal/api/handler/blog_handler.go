package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hazellab/catalog-api/internal/core/ports"
)

type BlogHandler struct {
	service ports.BlogService
}

func NewBlogHandler(service ports.BlogService) *BlogHandler {
	return &BlogHandler{service: service}
}

type blogPostRequest struct {
	Title   string `json:"title" validate:"required"`
	Body    string `json:"body"  validate:"required"`
	Summary string `json:"summary"`
	Author  string `json:"author"`
	Image   string `json:"image"`
}

func (r blogPostRequest) toInput() ports.BlogInput {
	return ports.BlogInput{
		Title:   r.Title,
		Body:    r.Body,
		Summary: r.Summary,
		Author:  r.Author,
		Image:   r.Image,
	}
}

// Create publishes a blog post.
//
// @Summary      Create a blog post
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        body  body      blogPostRequest  true  "Post content"
// @Success      201   {object}  domain.BlogPost
// @Failure      400   {object}  map[string]string
// @Router       /api/blogs [post]
func (h *BlogHandler) Create(c echo.Context) error {
	var req blogPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	post, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, post)
}

// List returns every blog post.
//
// @Summary      List blog posts
// @Tags         blog
// @Produce      json
// @Success      200  {array}  domain.BlogPost
// @Router       /api/blogs [get]
func (h *BlogHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Get returns a single blog post by id.
//
// @Summary      Get a blog post
// @Tags         blog
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  domain.BlogPost
// @Failure      404  {object}  map[string]string
// @Router       /api/blogs/{id} [get]
func (h *BlogHandler) Get(c echo.Context) error {
	post, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Update replaces a blog post's content.
//
// @Summary      Update a blog post
// @Tags         blog
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Post id"
// @Param        body  body      blogPostRequest  true  "New content"
// @Success      200   {object}  domain.BlogPost
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/blogs/{id} [put]
func (h *BlogHandler) Update(c echo.Context) error {
	var req blogPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	post, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

// Delete removes a blog post.
//
// @Summary      Delete a blog post
// @Tags         blog
// @Param        id  path  string  true  "Post id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /api/blogs/{id} [delete]
func (h *BlogHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
