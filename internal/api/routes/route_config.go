package routes

import (
	"Recipe-Share-Backend/internal/api/handlers"
	"Recipe-Share-Backend/internal/middleware"
	"Recipe-Share-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	RecipeHandler     handlers.RecipeHandler
	RecipeBookHandler handlers.RecipeBookHandler
	SearchHandler     handlers.SearchHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipes()
	c.RecipeBooks()
	c.Search()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
		user.Get("/:id/recipes", c.RecipeHandler.GetUserRecipes)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")

	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)

	auth := c.Middleware.AuthMiddleware(c.JWTService)
	recipes.Post("", auth, c.RecipeHandler.CreateRecipe)
	recipes.Put("/:id", auth, c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", auth, c.RecipeHandler.DeleteRecipe)
	recipes.Post("/:id/fork", auth, c.RecipeHandler.ForkRecipe)
	recipes.Post("/:id/like", auth, c.RecipeHandler.LikeRecipe)
	recipes.Post("/:id/unlike", auth, c.RecipeHandler.UnlikeRecipe)
	recipes.Post("/:id/image", auth, c.RecipeHandler.UploadRecipeImage)
}

func (c *Config) RecipeBooks() {
	books := c.App.Group("/api/v1/recipe-books")

	books.Get("/:id", c.RecipeBookHandler.GetBook)

	auth := c.Middleware.AuthMiddleware(c.JWTService)
	books.Get("", auth, c.RecipeBookHandler.GetUserBooks)
	books.Post("", auth, c.RecipeBookHandler.CreateBook)
	books.Put("/:id", auth, c.RecipeBookHandler.UpdateBook)
	books.Delete("/:id", auth, c.RecipeBookHandler.DeleteBook)
}

func (c *Config) Search() {
	c.App.Get("/api/v1/search", c.SearchHandler.Search)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}
