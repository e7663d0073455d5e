package app

import (
	"fmt"
	"net/http"

	"schoolops/internal/app/deps"
	"schoolops/internal/app/services"
	createschool "schoolops/internal/http/handlers/admin/create_school"
	createuser "schoolops/internal/http/handlers/admin/create_user"
	createworkbook "schoolops/internal/http/handlers/admin/create_workbook"
	deleteschool "schoolops/internal/http/handlers/admin/delete_school"
	deletesubmission "schoolops/internal/http/handlers/admin/delete_submission"
	deleteuser "schoolops/internal/http/handlers/admin/delete_user"
	deleteworkbook "schoolops/internal/http/handlers/admin/delete_workbook"
	listschools "schoolops/internal/http/handlers/admin/list_schools"
	listsubmissions "schoolops/internal/http/handlers/admin/list_submissions"
	listusers "schoolops/internal/http/handlers/admin/list_users"
	listworkbooks "schoolops/internal/http/handlers/admin/list_workbooks"
	markdelivered "schoolops/internal/http/handlers/admin/mark_delivered"
	submissionevents "schoolops/internal/http/handlers/admin/submission_events"
	updateschool "schoolops/internal/http/handlers/admin/update_school"
	updateuser "schoolops/internal/http/handlers/admin/update_user"
	updateworkbook "schoolops/internal/http/handlers/admin/update_workbook"
	forgotpassword "schoolops/internal/http/handlers/auth/forgot_password"
	login "schoolops/internal/http/handlers/auth/log_in"
	resetpassword "schoolops/internal/http/handlers/auth/reset_password"
	listgrades "schoolops/internal/http/handlers/form/list_grades"
	listlocations "schoolops/internal/http/handlers/form/list_locations"
	listschoolnames "schoolops/internal/http/handlers/form/list_school_names"
	listworkbooknames "schoolops/internal/http/handlers/form/list_workbook_names"
	submit "schoolops/internal/http/handlers/form/submit"
	userinfo "schoolops/internal/http/handlers/form/user_info"
	"schoolops/internal/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	adminRouter := chi.NewRouter()
	adminRouter.Method(http.MethodGet, "/users", listusers.New(s.ListUsers))
	adminRouter.Method(http.MethodPost, "/users", createuser.New(s.CreateUser))
	adminRouter.Method(http.MethodPut, "/users/{id:[0-9]+}", updateuser.New(s.UpdateUser))
	adminRouter.Method(http.MethodDelete, "/users/{id:[0-9]+}", deleteuser.New(s.DeleteUser))

	adminRouter.Method(http.MethodGet, "/form-submissions", listsubmissions.New(s.ListSubmissions))
	adminRouter.Method(
		http.MethodDelete,
		"/form-submissions/{id:[0-9]+}",
		deletesubmission.New(s.DeleteSubmission),
	)
	adminRouter.Method(http.MethodPut, "/mark-delivered", markdelivered.New(s.MarkSubmissionsDelivered))
	adminRouter.Method(
		http.MethodGet,
		"/form-submissions/events",
		submissionevents.New(deps.Logger, deps.SseServer),
	)

	adminRouter.Method(http.MethodGet, "/entries", listschools.New(s.ListSchools))
	adminRouter.Method(http.MethodPost, "/entries", createschool.New(s.CreateSchool))
	adminRouter.Method(http.MethodPut, "/update/{id:[0-9]+}", updateschool.New(s.UpdateSchool))
	adminRouter.Method(http.MethodDelete, "/delete/{id:[0-9]+}", deleteschool.New(s.DeleteSchool))

	adminRouter.Method(http.MethodGet, "/workbooks", listworkbooks.New(s.ListWorkbooks))
	adminRouter.Method(http.MethodPost, "/workbooks", createworkbook.New(s.CreateWorkbook))
	adminRouter.Method(http.MethodPut, "/workbooks/{id:[0-9]+}", updateworkbook.New(s.UpdateWorkbookQuantity))
	adminRouter.Method(http.MethodDelete, "/workbooks/{id:[0-9]+}", deleteworkbook.New(s.DeleteWorkbook))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Use(middleware.RequestID)
	router.Use(middleware.AccessLog(deps.Logger))

	router.Method(http.MethodPost, "/login", login.New(s.LogInWithEmail))
	router.Method(http.MethodPost, "/forgot-password", forgotpassword.New(s.SendPasswordResetToken))
	router.Method(http.MethodPost, "/reset-password", resetpassword.New(s.ResetPassword))

	router.Method(http.MethodGet, "/schools", listschoolnames.New(s.ListSchoolNames))
	router.Method(http.MethodGet, "/locations", listlocations.New(s.ListSchoolLocations))
	router.Method(http.MethodGet, "/grades", listgrades.New(s.ListGrades))
	router.Method(http.MethodGet, "/workbook_name", listworkbooknames.New(s.ListWorkbookNames))
	router.Method(http.MethodPost, "/submit", submit.New(s.CreateSubmission))
	router.Method(http.MethodGet, "/user-info", userinfo.New(s.GetUserInfo))

	router.Mount("/admin", adminRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
