// Package router assembles the gin engine and the route table.
package router

import (
	"github.com/gin-gonic/gin"

	authhandler "notes_app/internal/feature/auth/transport/handler"
	"notes_app/internal/feature/auth/transport/middleware"
	noteshandler "notes_app/internal/feature/notes/transport/handler"
)

// NewRouter builds the gin engine with templates, public routes and the
// gated private routes. The authentication gate is applied uniformly to
// every route that touches private data; the shared note view stays
// outside the gate so link-based sharing works without a session.
func NewRouter(auth *authhandler.AuthHandler, notes *noteshandler.NotesHandler,
	sessions middleware.SessionResolver, templateGlob string) *gin.Engine {
	r := gin.Default()

	r.LoadHTMLGlob(templateGlob)
	r.Static("/static", "./web/static")

	// No session required
	r.GET("/login", auth.ShowLogin)
	r.POST("/login", auth.Login)
	r.GET("/register", auth.ShowRegister)
	r.POST("/register", auth.Register)
	// Public read-only shared view
	r.GET("/note/shared/:id", notes.Shared)

	// Session required
	private := r.Group("/")
	private.Use(middleware.AuthRequired(sessions))
	{
		private.GET("/", notes.Home)
		private.POST("/logout", auth.Logout)
		private.GET("/note/create", notes.ShowCreate)
		private.POST("/note/save", notes.Save)
		private.GET("/note/overview", notes.Overview)
		private.GET("/note/show/:id", notes.Show)
		private.GET("/note/edit/:id", notes.ShowEdit)
		private.POST("/note/edit/:id", notes.Edit)
		private.POST("/note/delete/:id", notes.Delete)
	}

	return r
}
