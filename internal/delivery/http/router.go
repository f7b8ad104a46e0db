package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"littlemaestros/internal/delivery/http/controllers"
	"littlemaestros/internal/delivery/http/middleware"
	"littlemaestros/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Everything under /api/admin (except login) requires a valid admin session
// cookie.
func NewRouter(
	authService domain.AuthService,
	authController *controllers.AuthController,
	catalogController *controllers.CatalogController,
	scheduleController *controllers.ScheduleController,
	contentController *controllers.ContentController,
	inquiryController *controllers.InquiryController,
	syncController *controllers.SyncController,
) *http.ServeMux {
	mux := http.NewServeMux()
	admin := middleware.RequireAdmin(authService)

	// Public site data
	mux.HandleFunc("GET /api/classes", catalogController.ListClasses)
	mux.HandleFunc("GET /api/locations", catalogController.ListLocations)
	mux.HandleFunc("GET /api/teachers", catalogController.ListTeachers)
	mux.HandleFunc("GET /api/sessions", scheduleController.ListSessionDetails)
	mux.HandleFunc("GET /api/sessions/calendar.ics", scheduleController.Calendar)
	mux.HandleFunc("GET /api/testimonials", contentController.ListTestimonials)
	mux.HandleFunc("GET /api/photos", contentController.ListPhotos)
	mux.HandleFunc("GET /api/content", contentController.ListPageContent)
	mux.HandleFunc("GET /api/content/{slug}", contentController.GetPageContent)
	mux.HandleFunc("GET /api/sync-status", syncController.Status)

	// Public submissions
	mux.HandleFunc("POST /api/registrations", inquiryController.CreateRegistration)
	mux.HandleFunc("POST /api/contact", inquiryController.SubmitContact)
	mux.HandleFunc("POST /api/newsletter", inquiryController.Subscribe)

	// Auth
	mux.HandleFunc("POST /api/auth/login", authController.Login)
	mux.HandleFunc("POST /api/auth/logout", authController.Logout)
	mux.HandleFunc("GET /api/auth/status", authController.Status)

	// Admin: catalog
	mux.HandleFunc("POST /api/admin/classes", admin(catalogController.CreateClass))
	mux.HandleFunc("PUT /api/admin/classes/{id}", admin(catalogController.UpdateClass))
	mux.HandleFunc("DELETE /api/admin/classes/{id}", admin(catalogController.DeleteClass))
	mux.HandleFunc("POST /api/admin/locations", admin(catalogController.CreateLocation))
	mux.HandleFunc("PUT /api/admin/locations/{id}", admin(catalogController.UpdateLocation))
	mux.HandleFunc("DELETE /api/admin/locations/{id}", admin(catalogController.DeleteLocation))
	mux.HandleFunc("POST /api/admin/teachers", admin(catalogController.CreateTeacher))
	mux.HandleFunc("PUT /api/admin/teachers/{id}", admin(catalogController.UpdateTeacher))
	mux.HandleFunc("DELETE /api/admin/teachers/{id}", admin(catalogController.DeleteTeacher))

	// Admin: schedule
	mux.HandleFunc("GET /api/admin/sessions", admin(scheduleController.ListSessions))
	mux.HandleFunc("POST /api/admin/sessions", admin(scheduleController.CreateSession))
	mux.HandleFunc("PUT /api/admin/sessions/{id}", admin(scheduleController.UpdateSession))
	mux.HandleFunc("DELETE /api/admin/sessions/{id}", admin(scheduleController.DeleteSession))

	// Admin: site content
	mux.HandleFunc("POST /api/admin/content", admin(contentController.CreatePageContent))
	mux.HandleFunc("PUT /api/admin/content/{id}", admin(contentController.UpdatePageContent))
	mux.HandleFunc("DELETE /api/admin/content/{id}", admin(contentController.DeletePageContent))
	mux.HandleFunc("POST /api/admin/testimonials", admin(contentController.CreateTestimonial))
	mux.HandleFunc("PUT /api/admin/testimonials/{id}", admin(contentController.UpdateTestimonial))
	mux.HandleFunc("DELETE /api/admin/testimonials/{id}", admin(contentController.DeleteTestimonial))
	mux.HandleFunc("GET /api/admin/photos", admin(contentController.ListAllPhotos))
	mux.HandleFunc("POST /api/admin/photos", admin(contentController.CreatePhoto))
	mux.HandleFunc("PUT /api/admin/photos/{id}", admin(contentController.UpdatePhoto))
	mux.HandleFunc("DELETE /api/admin/photos/{id}", admin(contentController.DeletePhoto))

	// Admin: inbound inquiries
	mux.HandleFunc("GET /api/admin/registrations", admin(inquiryController.ListRegistrations))
	mux.HandleFunc("GET /api/admin/contact-submissions", admin(inquiryController.ListContactSubmissions))
	mux.HandleFunc("GET /api/admin/newsletter", admin(inquiryController.ListSubscribers))

	// Admin: MainStreet sync
	mux.HandleFunc("POST /api/admin/sync-mainstreet", admin(syncController.Sync))
	mux.HandleFunc("GET /api/admin/debug-mainstreet", admin(syncController.Debug))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
