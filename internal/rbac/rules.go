package rbac

// Default policy. Two roles cover this app: students take quizzes and ask
// the chatbot; admins additionally manage the question bank.
var RolePermissions = map[string][]string{
	"student": {
		"quiz:take",
		"chatbot:ask",
	},
	"admin": {
		"*", // everything
	},
}
