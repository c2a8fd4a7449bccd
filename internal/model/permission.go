package model

// Permission represents a string code for a specific system action.
type Permission string

const (
	// PermissionMediaUpload allows uploading media files.
	PermissionMediaUpload Permission = "media:upload"

	// PermissionCoursesRead allows viewing courses and their content trees.
	PermissionCoursesRead Permission = "courses:read"

	// PermissionCoursesWrite allows creating and editing courses, modules,
	// and lessons.
	PermissionCoursesWrite Permission = "courses:write"

	// PermissionCoursesPublish allows publishing and unpublishing courses.
	PermissionCoursesPublish Permission = "courses:publish"

	// PermissionAssessmentsRead allows viewing quizzes, exams, and questions.
	PermissionAssessmentsRead Permission = "assessments:read"

	// PermissionAssessmentsWrite allows editing quizzes, exams, and questions.
	PermissionAssessmentsWrite Permission = "assessments:write"

	// PermissionEventsRead allows viewing events.
	PermissionEventsRead Permission = "events:read"

	// PermissionEventsWrite allows creating, updating, and deleting events.
	PermissionEventsWrite Permission = "events:write"

	// PermissionSermonsRead allows viewing sermons.
	PermissionSermonsRead Permission = "sermons:read"

	// PermissionSermonsWrite allows creating, updating, and deleting sermons.
	PermissionSermonsWrite Permission = "sermons:write"

	// PermissionUsersRead allows viewing admin accounts.
	PermissionUsersRead Permission = "users:read"

	// PermissionUsersWrite allows creating, updating, and deleting admin accounts.
	PermissionUsersWrite Permission = "users:write"

	// PermissionRolesRead allows viewing roles and permissions.
	PermissionRolesRead Permission = "roles:read"

	// PermissionRolesWrite allows creating, updating, and deleting roles.
	PermissionRolesWrite Permission = "roles:write"
)

// AllPermissions is a slice of all available permissions.
var AllPermissions = []Permission{
	PermissionMediaUpload,
	PermissionCoursesRead,
	PermissionCoursesWrite,
	PermissionCoursesPublish,
	PermissionAssessmentsRead,
	PermissionAssessmentsWrite,
	PermissionEventsRead,
	PermissionEventsWrite,
	PermissionSermonsRead,
	PermissionSermonsWrite,
	PermissionUsersRead,
	PermissionUsersWrite,
	PermissionRolesRead,
	PermissionRolesWrite,
}
