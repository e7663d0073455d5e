package services

import (
	"schoolops/internal/app/deps"
	"schoolops/internal/core/services"
	createschool "schoolops/internal/core/services/create_school"
	createsubmission "schoolops/internal/core/services/create_submission"
	createuser "schoolops/internal/core/services/create_user"
	createworkbook "schoolops/internal/core/services/create_workbook"
	deleteschool "schoolops/internal/core/services/delete_school"
	deletesubmission "schoolops/internal/core/services/delete_submission"
	deleteuser "schoolops/internal/core/services/delete_user"
	deleteworkbook "schoolops/internal/core/services/delete_workbook"
	getuserinfo "schoolops/internal/core/services/get_user_info"
	listgrades "schoolops/internal/core/services/list_grades"
	listschoollocations "schoolops/internal/core/services/list_school_locations"
	listschoolnames "schoolops/internal/core/services/list_school_names"
	listschools "schoolops/internal/core/services/list_schools"
	listsubmissions "schoolops/internal/core/services/list_submissions"
	listusers "schoolops/internal/core/services/list_users"
	listworkbooknames "schoolops/internal/core/services/list_workbook_names"
	listworkbooks "schoolops/internal/core/services/list_workbooks"
	loginwithemail "schoolops/internal/core/services/log_in_with_email"
	marksubmissionsdelivered "schoolops/internal/core/services/mark_submissions_delivered"
	resetpassword "schoolops/internal/core/services/reset_password"
	sendpasswordresettoken "schoolops/internal/core/services/send_password_reset_token"
	updateschool "schoolops/internal/core/services/update_school"
	updateuser "schoolops/internal/core/services/update_user"
	updateworkbookquantity "schoolops/internal/core/services/update_workbook_quantity"
)

type Services struct {
	LogInWithEmail         services.Service[loginwithemail.Input, loginwithemail.Result]
	SendPasswordResetToken services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result]
	ResetPassword          services.Service[resetpassword.Input, resetpassword.Result]

	CreateUser  services.Service[createuser.Input, createuser.Result]
	ListUsers   services.Service[listusers.Input, listusers.Result]
	UpdateUser  services.Service[updateuser.Input, updateuser.Result]
	DeleteUser  services.Service[deleteuser.Input, deleteuser.Result]
	GetUserInfo services.Service[getuserinfo.Input, getuserinfo.Result]

	CreateSchool        services.Service[createschool.Input, createschool.Result]
	ListSchools         services.Service[listschools.Input, listschools.Result]
	UpdateSchool        services.Service[updateschool.Input, updateschool.Result]
	DeleteSchool        services.Service[deleteschool.Input, deleteschool.Result]
	ListSchoolNames     services.Service[listschoolnames.Input, listschoolnames.Result]
	ListSchoolLocations services.Service[listschoollocations.Input, listschoollocations.Result]

	CreateWorkbook         services.Service[createworkbook.Input, createworkbook.Result]
	ListWorkbooks          services.Service[listworkbooks.Input, listworkbooks.Result]
	UpdateWorkbookQuantity services.Service[updateworkbookquantity.Input, updateworkbookquantity.Result]
	DeleteWorkbook         services.Service[deleteworkbook.Input, deleteworkbook.Result]
	ListGrades             services.Service[listgrades.Input, listgrades.Result]
	ListWorkbookNames      services.Service[listworkbooknames.Input, listworkbooknames.Result]

	CreateSubmission         services.Service[createsubmission.Input, createsubmission.Result]
	ListSubmissions          services.Service[listsubmissions.Input, listsubmissions.Result]
	DeleteSubmission         services.Service[deletesubmission.Input, deletesubmission.Result]
	MarkSubmissionsDelivered services.Service[marksubmissionsdelivered.Input, marksubmissionsdelivered.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.LogInWithEmail = loginwithemail.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordHasher,
		deps.Config.AllowedEmailSuffix,
	)
	s.SendPasswordResetToken = sendpasswordresettoken.New(
		deps.Logger,
		deps.UserRepository,
		deps.ResetTokenRepository,
		deps.ResetTokenGenerator,
		deps.ResetTokenSender,
		deps.Config.PasswordResetValidDuration(),
		deps.Now,
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.ResetTokenRepository,
		deps.PasswordHasher,
		deps.Now,
	)

	s.CreateUser = createuser.New(deps.Logger, deps.UserRepository, deps.PasswordHasher)
	s.ListUsers = listusers.New(deps.Logger, deps.UserRepository)
	s.UpdateUser = updateuser.New(deps.Logger, deps.UserRepository, deps.PasswordHasher)
	s.DeleteUser = deleteuser.New(deps.Logger, deps.UserRepository)
	s.GetUserInfo = getuserinfo.New(deps.Logger, deps.UserRepository)

	s.CreateSchool = createschool.New(deps.Logger, deps.SchoolRepository)
	s.ListSchools = listschools.New(deps.Logger, deps.SchoolRepository)
	s.UpdateSchool = updateschool.New(deps.Logger, deps.SchoolRepository)
	s.DeleteSchool = deleteschool.New(deps.Logger, deps.SchoolRepository)
	s.ListSchoolNames = listschoolnames.New(deps.Logger, deps.SchoolRepository)
	s.ListSchoolLocations = listschoollocations.New(deps.Logger, deps.SchoolRepository)

	s.CreateWorkbook = createworkbook.New(deps.Logger, deps.WorkbookRepository)
	s.ListWorkbooks = listworkbooks.New(deps.Logger, deps.WorkbookRepository)
	s.UpdateWorkbookQuantity = updateworkbookquantity.New(deps.Logger, deps.WorkbookRepository)
	s.DeleteWorkbook = deleteworkbook.New(deps.Logger, deps.WorkbookRepository)
	s.ListGrades = listgrades.New(deps.Logger, deps.WorkbookRepository)
	s.ListWorkbookNames = listworkbooknames.New(deps.Logger, deps.WorkbookRepository)

	s.CreateSubmission = createsubmission.New(
		deps.Logger,
		deps.SubmissionRepository,
		deps.SubmissionEventPublisher,
		deps.Now,
	)
	s.ListSubmissions = listsubmissions.New(deps.Logger, deps.SubmissionRepository)
	s.DeleteSubmission = deletesubmission.New(deps.Logger, deps.SubmissionRepository)
	s.MarkSubmissionsDelivered = marksubmissionsdelivered.New(deps.Logger, deps.SubmissionRepository)

	return s
}
