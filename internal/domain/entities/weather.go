package entities

// WeatherReport is the parsed slice of a provider response used to build the
// assistant's context block.
type WeatherReport struct {
	Location    string  `json:"location"`
	Temperature float64 `json:"temperature"`
	Humidity    int     `json:"humidity"`
	Description string  `json:"description"`
	WindSpeed   float64 `json:"wind"`
	Rainfall    float64 `json:"rainfall"`
}

// AssistantInput represents an assistant chat request. Location is optional;
// the caller's stored farm location, then a configured fallback, are used
// when it is empty.
type AssistantInput struct {
	Message  string `json:"message" binding:"required"`
	Location string `json:"location"`
}

// AssistantResponse represents the assistant's reply
type AssistantResponse struct {
	Response string `json:"response"`
}

// Conversation turn roles, matching the wire roles of the generation API
const (
	TurnRoleUser  = "user"
	TurnRoleModel = "model"
)

// ConversationTurn is one exchange stored in a user's conversation history
type ConversationTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}
