package rbac

// Roles are fixed at registration; there is no promotion flow.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Capabilities.
const (
	PermViewQuizzes   = "view_quizzes"
	PermTakeQuiz      = "take_quiz"
	PermViewResults   = "view_results"
	PermCreateQuiz    = "create_quiz"
	PermManageQuizzes = "manage_quizzes"
)

// RolePermissions is the single source of role semantics. Adding a role or
// a capability is a data change here, not a code change at call sites.
var RolePermissions = map[string][]string{
	RoleUser: {
		PermViewQuizzes,
		PermTakeQuiz,
		PermViewResults,
	},
	RoleAdmin: {
		PermViewQuizzes,
		PermTakeQuiz,
		PermViewResults,
		PermCreateQuiz,
		PermManageQuizzes,
	},
}
