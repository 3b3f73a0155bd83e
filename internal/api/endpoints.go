package api

// Gateway commands. Each maps to /sys/<command>.php.
const (
	// CommandSend sends a message, or prices it when cost=1.
	CommandSend = "send"
	// CommandStatus queries delivery status of sent messages or HLR requests.
	CommandStatus = "status"
	// CommandBalance queries the account balance.
	CommandBalance = "balance"
	// CommandGet serves message history (get_messages) and statistics (get_stat).
	CommandGet = "get"
)
