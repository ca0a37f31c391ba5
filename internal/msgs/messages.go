package msgs

const (
	MsgOperationFailed     = "Operation failed"
	MsgAPIRunning          = "Portfolio API is running"
	MsgAPIHealthy          = "Portfolio backend server is running!"
	MsgValidationFailed    = "Validation failed"
	MsgInvalidInputData    = "Invalid input data"
	MsgInvalidCredentials  = "Invalid credentials"
	MsgLoginSuccessful     = "Login successful"
	MsgMessageReceived     = "Thank you for your message! I will get back to you soon."
	MsgMessageSaveFailed   = "Failed to save message. Please try again."
	MsgMessagesFetchFailed = "Failed to fetch messages"
	MsgMessageMarkedRead   = "Message marked as read"
	MsgMessageUpdateFailed = "Failed to update message"
	MsgMessageDeleted      = "Message deleted successfully"
	MsgMessageDeleteFailed = "Failed to delete message"
	MsgMessageNotFound     = "Message not found"
	MsgStatsFetchFailed    = "Failed to fetch stats"
	MsgAccessDenied        = "Access denied. No token provided."
	MsgInvalidToken        = "Invalid token."
	MsgRouteNotFound       = "Route not found"
	MsgInternalServerError = "Internal server error"
	MsgTooManyRequests     = "Too many requests from this IP, please try again later."
	MsgTooManySubmissions  = "Too many contact form submissions, please try again later."
)
