package feed

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Get("/users", func(c *fiber.Ctx) error {
		users, err := svc.ListUsers(c.Context())
		if err != nil {
			return toHTTP(err)
		}
		return c.JSON(users)
	})

	r.Get("/users/:id", func(c *fiber.Ctx) error {
		user, err := svc.GetUser(c.Context(), c.Params("id"))
		if err != nil {
			return toHTTP(err)
		}
		return c.JSON(user)
	})

	r.Post("/users", func(c *fiber.Ctx) error {
		var req struct {
			Name   string `json:"name"`
			Avatar string `json:"avatar"`
			Bio    string `json:"bio"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		user, err := svc.CreateUser(c.Context(), req.Name, req.Avatar, req.Bio)
		if err != nil {
			return toHTTP(err)
		}
		return c.Status(fiber.StatusCreated).JSON(user)
	})

	r.Delete("/users/:id", func(c *fiber.Ctx) error {
		if err := svc.DeleteUser(c.Context(), c.Params("id")); err != nil {
			return toHTTP(err)
		}
		return c.JSON(fiber.Map{"ok": true})
	})

	r.Post("/users/:id/follow", func(c *fiber.Ctx) error {
		var req struct {
			FollowerID string `json:"followerId"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		target, follower, err := svc.ToggleFollow(c.Context(), c.Params("id"), req.FollowerID)
		if err != nil {
			return toHTTP(err)
		}
		return c.JSON(fiber.Map{"target": target, "follower": follower})
	})

	r.Get("/posts", func(c *fiber.Ctx) error {
		posts, err := svc.ListPosts(c.Context(), c.Query("userId"), c.Query("sort"))
		if err != nil {
			return toHTTP(err)
		}
		return c.JSON(posts)
	})

	r.Get("/posts/:id", func(c *fiber.Ctx) error {
		post, err := svc.GetPost(c.Context(), c.Params("id"))
		if err != nil {
			return toHTTP(err)
		}
		return c.JSON(post)
	})

	r.Post("/posts", func(c *fiber.Ctx) error {
		var req struct {
			UserID  string `json:"userId"`
			Content string `json:"content"`
			Image   string `json:"image"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		post, err := svc.CreatePost(c.Context(), req.UserID, req.Content, req.Image)
		if err != nil {
			return toHTTP(err)
		}
		return c.Status(fiber.StatusCreated).JSON(post)
	})

	r.Delete("/posts/:id", func(c *fiber.Ctx) error {
		if err := svc.DeletePost(c.Context(), c.Params("id")); err != nil {
			return toHTTP(err)
		}
		return c.JSON(fiber.Map{"ok": true})
	})

	r.Post("/posts/:id/like", func(c *fiber.Ctx) error {
		var req struct {
			UserID string `json:"userId"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		post, err := svc.ToggleLike(c.Context(), c.Params("id"), req.UserID)
		if err != nil {
			return toHTTP(err)
		}
		return c.JSON(post)
	})

	r.Get("/posts/:id/comments", func(c *fiber.Ctx) error {
		comments, err := svc.ListComments(c.Context(), c.Params("id"))
		if err != nil {
			return toHTTP(err)
		}
		return c.JSON(comments)
	})

	r.Post("/posts/:id/comments", func(c *fiber.Ctx) error {
		var req struct {
			UserID string `json:"userId"`
			Text   string `json:"text"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		comment, err := svc.CreateComment(c.Context(), c.Params("id"), req.UserID, req.Text)
		if err != nil {
			return toHTTP(err)
		}
		return c.Status(fiber.StatusCreated).JSON(comment)
	})
}

// toHTTP maps the core taxonomy onto status codes: NotFound 404,
// InvalidArgument 400, anything else is a storage failure.
func toHTTP(err error) error {
	switch {
	case IsNotFound(err):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case IsInvalid(err):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}
